package blog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseMetadata_FullFrontmatter(t *testing.T) {
	content := []byte(`---
title: Attention Is Not All You Need
date: 2024-03-01
status: published
author: Jane Doe
tags:
  - ml
  - transformers
---
Body text here.
`)

	post := ParseMetadata(content)
	require.Equal(t, "Attention Is Not All You Need", post.Title)
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), post.Date)
	require.Equal(t, StatusPublished, post.Status)
	require.True(t, post.Published())
	require.Equal(t, "Jane Doe", post.Author)
	require.Equal(t, []string{"ml", "transformers"}, post.Tags)
}

func TestParseMetadata_NoFrontmatter_Defaults(t *testing.T) {
	post := ParseMetadata([]byte("# Just a heading\n\nNo metadata.\n"))
	require.Equal(t, DefaultTitle, post.Title)
	require.Equal(t, StatusDraft, post.Status)
	require.False(t, post.Published())
	require.True(t, post.Date.IsZero())
	require.Empty(t, post.Author)
	require.Empty(t, post.Tags)
}

func TestParseMetadata_MalformedFrontmatter_Defaults(t *testing.T) {
	cases := [][]byte{
		[]byte("---\ntitle: Unclosed\n# Body\n"),               // missing closing delimiter
		[]byte("---\n: [bad yaml\n---\nBody\n"),                // invalid yaml
		[]byte("---\ntitle: X\ndate: not-a-date\n---\nBody\n"), // bad date
	}

	for _, content := range cases {
		post := ParseMetadata(content)
		require.Equal(t, StatusDraft, post.Status)
		require.True(t, post.Date.IsZero())
	}
}

func TestParseMetadata_BadDateKeepsOtherFields(t *testing.T) {
	post := ParseMetadata([]byte("---\ntitle: X\ndate: 2024-13-99\nstatus: published\n---\nBody\n"))
	require.Equal(t, "X", post.Title)
	require.True(t, post.Date.IsZero())
	require.Equal(t, StatusPublished, post.Status)
}

func TestDisplayDate(t *testing.T) {
	post := Post{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	require.Equal(t, "March 01, 2024", post.DisplayDate())

	require.Equal(t, "No date", (&Post{}).DisplayDate())
}

func TestOutputPathFor(t *testing.T) {
	published := Post{Status: StatusPublished}
	require.Equal(t, "published/hello.html", published.OutputPathFor("hello.md"))

	draft := Post{Status: "wip"}
	require.Equal(t, "draft/hello.html", draft.OutputPathFor("hello.md"))
}

func TestSortByDateDesc_ZeroDatesLast(t *testing.T) {
	posts := []Post{
		{Title: "undated"},
		{Title: "old", Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Title: "new", Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	SortByDateDesc(posts)
	require.Equal(t, "new", posts[0].Title)
	require.Equal(t, "old", posts[1].Title)
	require.Equal(t, "undated", posts[2].Title)
}

func TestExcerpt(t *testing.T) {
	require.Equal(t, "No preview available...", Excerpt("   "))

	short := Excerpt("# Heading with *emphasis* and `code`")
	require.Equal(t, "Heading with emphasis and code", short)

	long := Excerpt(strings.Repeat("a", 200))
	require.Len(t, long, 153) // 150 chars plus ellipsis
}
