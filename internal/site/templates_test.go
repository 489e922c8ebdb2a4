package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplates_LoadsBuiltins(t *testing.T) {
	tpl := NewTemplates("")
	for _, name := range []string{TemplateSimple, TemplatePost, TemplateHome} {
		body, err := tpl.Load(name)
		require.NoError(t, err)
		require.Contains(t, body, "<!DOCTYPE html>")
	}
}

func TestTemplates_UnknownName(t *testing.T) {
	_, err := NewTemplates("").Load("nope.html")
	require.Error(t, err)
}

func TestTemplates_OverrideDirWins(t *testing.T) {
	dir := t.TempDir()
	custom := "<!DOCTYPE html><title>{{TITLE}}</title>{{CONTENT}}"
	require.NoError(t, os.WriteFile(filepath.Join(dir, TemplateSimple), []byte(custom), 0o644))

	tpl := NewTemplates(dir)
	body, err := tpl.Load(TemplateSimple)
	require.NoError(t, err)
	require.Equal(t, custom, body)

	// names without an override still fall back to the embedded template
	body, err = tpl.Load(TemplateHome)
	require.NoError(t, err)
	require.Contains(t, body, "articles-grid")
}

func TestSubstitute(t *testing.T) {
	out := Substitute("<h1>{{TITLE}}</h1>{{CONTENT}}{{UNKNOWN}}", map[string]string{
		"TITLE":   "Hello",
		"CONTENT": "<p>Body</p>",
	})
	require.Equal(t, "<h1>Hello</h1><p>Body</p>{{UNKNOWN}}", out)
}

func TestAnalyticsSnippet(t *testing.T) {
	require.Empty(t, analyticsSnippet(""))
	snippet := analyticsSnippet("G-ABC")
	require.Contains(t, snippet, "gtag/js?id=G-ABC")
	require.Contains(t, snippet, "gtag('config', 'G-ABC')")
}
