package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_BasicElements(t *testing.T) {
	out, err := Render([]byte("# Heading\n\nSome **bold** text.\n"))
	require.NoError(t, err)

	html := string(out)
	require.Contains(t, html, "<h1")
	require.Contains(t, html, "Heading")
	require.Contains(t, html, "<strong>bold</strong>")
}

func TestRender_GFMTable(t *testing.T) {
	out, err := Render([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	require.NoError(t, err)
	require.Contains(t, string(out), "<table>")
}

func TestRewriteImageRefs_CopiedImage(t *testing.T) {
	body := []byte("Intro\n\n![diagram](assets/diagram.png)\n")
	copied := map[string]string{"diagram.png": "diagram_1.png"}

	out := RewriteImageRefs(body, copied)
	require.Equal(t, "Intro\n\n![diagram](../images/diagram_1.png)\n", string(out))
}

func TestRewriteImageRefs_UnknownImageFallsBack(t *testing.T) {
	out := RewriteImageRefs([]byte("![x](missing.png)"), nil)
	require.Equal(t, "![x](/images/missing.png)", string(out))
}

func TestRewriteImageRefs_LeavesLinksAlone(t *testing.T) {
	body := []byte("[a link](page.html) and text")
	require.Equal(t, body, RewriteImageRefs(body, nil))
}
