package blog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestBlogsDir_Missing(t *testing.T) {
	_, err := BlogsDir(t.TempDir())
	require.ErrorIs(t, err, ErrNoBlogsDir)
}

func TestBlogsDir_Found(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "blogs"), 0o750))

	dir, err := BlogsDir(root)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "blogs"), dir)
}

func TestDiscover_FindsMarkdownAndAssets(t *testing.T) {
	blogsDir := t.TempDir()
	writeFile(t, filepath.Join(blogsDir, "first.md"), "# First\n")
	writeFile(t, filepath.Join(blogsDir, "nested", "second.md"), "# Second\n")
	writeFile(t, filepath.Join(blogsDir, "nested", "diagram.png"), "png-bytes")
	writeFile(t, filepath.Join(blogsDir, "notes.txt"), "ignored")
	writeFile(t, filepath.Join(blogsDir, ".hidden.md"), "ignored")

	files, err := NewDiscovery(blogsDir).Discover()
	require.NoError(t, err)
	require.Len(t, files, 3)

	md := Markdown(files)
	require.Len(t, md, 2)
	for _, f := range md {
		require.Equal(t, ".md", f.Extension)
		require.False(t, f.IsAsset)
	}

	assets := Assets(files)
	require.Len(t, assets, 1)
	require.Equal(t, "diagram", assets[0].Name)
	require.True(t, assets[0].IsAsset)
	require.Equal(t, filepath.Join("nested", "diagram.png"), assets[0].RelativePath)
}

func TestDiscover_EmptyDirectory(t *testing.T) {
	files, err := NewDiscovery(t.TempDir()).Discover()
	require.NoError(t, err)
	require.Empty(t, files)
}
