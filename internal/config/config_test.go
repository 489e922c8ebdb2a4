package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile_UsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, "./dist", cfg.Output.Directory)
	require.True(t, cfg.Output.Clean)
	require.Equal(t, "analytics.conf", cfg.Analytics)
}

func TestLoad_ReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blogstack.yaml")
	content := `site:
  title: Neural Networks Hub
  copyright: Jane Doe
output:
  directory: ./out
  clean: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Neural Networks Hub", cfg.Site.Title)
	require.Equal(t, "Jane Doe", cfg.Site.Copyright)
	require.Equal(t, "./out", cfg.Output.Directory)
}

func TestLoad_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("BLOGSTACK_TEST_OUT", "/tmp/blog-out")

	path := filepath.Join(t.TempDir(), "blogstack.yaml")
	content := "output:\n  directory: ${BLOGSTACK_TEST_OUT}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/blog-out", cfg.Output.Directory)
}

func TestInit_RefusesToOverwriteWithoutForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blogstack.yaml")
	require.NoError(t, Init(path, false))
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))
}

func TestLoadAnalytics_MissingFileIsEmpty(t *testing.T) {
	a, err := LoadAnalytics(filepath.Join(t.TempDir(), "analytics.conf"))
	require.NoError(t, err)
	require.Empty(t, a)
	require.Empty(t, a.TrackingID("anything"))
}

func TestLoadAnalytics_ReadsKeyValueLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analytics.conf")
	content := "# tracking IDs\nmy-blog=G-ABC123\nother-blog=UA-999\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	a, err := LoadAnalytics(path)
	require.NoError(t, err)
	require.Equal(t, "G-ABC123", a.TrackingID("my-blog"))
	require.Equal(t, "UA-999", a.TrackingID("other-blog"))
	require.Empty(t, a.TrackingID("unknown"))
}
