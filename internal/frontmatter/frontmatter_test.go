package frontmatter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, had, _, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: My Post\n---\n# Title\n")

	fm, body, had, _, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: My Post\n"), fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	input := []byte("---\ntitle: My Post\n# Title\n")

	_, _, had, _, err := Split(input)
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestSplit_CRLF_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\r\ntitle: My Post\r\n---\r\n# Title\r\n")

	fm, body, had, _, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: My Post\r\n"), fm)
	require.Equal(t, []byte("# Title\r\n"), body)
}

func TestJoin_RoundTrip(t *testing.T) {
	input := []byte("---\ntitle: My Post\ndate: 2024-01-15\n---\nBody text\n")

	fm, body, had, style, err := Split(input)
	require.NoError(t, err)
	require.Equal(t, input, Join(fm, body, had, style))
}

func TestParseYAML_EmptyInput_ReturnsEmptyMap(t *testing.T) {
	fields, err := ParseYAML(nil)
	require.NoError(t, err)
	require.Empty(t, fields)
}

func TestParseYAML_ResolvesScalarsAndSequences(t *testing.T) {
	fields, err := ParseYAML([]byte("title: Hello\ndate: 2024-01-15\ntags:\n  - go\n  - blog\n"))
	require.NoError(t, err)
	require.Equal(t, "Hello", fields["title"])
	// Unquoted dates resolve to time.Time under the YAML timestamp tag.
	date, ok := fields["date"].(time.Time)
	require.True(t, ok)
	require.Equal(t, "2024-01-15", date.Format("2006-01-02"))
	require.Equal(t, []any{"go", "blog"}, fields["tags"])
}

func TestSerializeYAML_PreferredKeyOrder(t *testing.T) {
	fields := map[string]any{
		"status": "published",
		"title":  "Hello",
		"extra":  "x",
		"date":   "2024-01-15",
	}

	out, err := SerializeYAML(fields, Style{})
	require.NoError(t, err)
	require.Equal(t, "title: Hello\ndate: 2024-01-15\nstatus: published\nextra: x\n", string(out))
}

func TestSerializeYAML_TagsSequence(t *testing.T) {
	out, err := SerializeYAML(map[string]any{"tags": []string{"go", "blog"}}, Style{})
	require.NoError(t, err)
	require.Equal(t, "tags:\n  - go\n  - blog\n", string(out))
}

func TestSerializeYAML_EmptyMap(t *testing.T) {
	out, err := SerializeYAML(map[string]any{}, Style{})
	require.NoError(t, err)
	require.Empty(t, out)
}
