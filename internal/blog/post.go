// Package blog carries the post model: metadata parsed from YAML frontmatter,
// discovery of markdown files and image assets under a blogs/ directory, and
// preview excerpt generation for the home page.
package blog

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"git.home.luguber.info/inful/blogstack/internal/frontmatter"
)

const (
	// StatusPublished marks a post for the published/ output tree and the
	// home page. Every other status value lands in draft/.
	StatusPublished = "published"
	StatusDraft     = "draft"

	// DefaultTitle is used when frontmatter is missing or carries no title.
	DefaultTitle = "Untitled"

	dateLayout        = "2006-01-02"
	displayDateLayout = "January 02, 2006"
)

// Post is a single blog entry derived from a Markdown file's frontmatter.
type Post struct {
	Title  string
	Date   time.Time // zero when absent or unparsable
	Status string
	Author string
	Tags   []string

	SourcePath   string // absolute path to the source .md file
	RelativePath string // path relative to the blogs directory
	OutputPath   string // output path relative to the site root
}

// ParseMetadata extracts post metadata from a Markdown document.
//
// Missing or malformed frontmatter never fails: every field falls back to its
// default (title "Untitled", status draft, no author, no tags, zero date).
func ParseMetadata(content []byte) Post {
	post := Post{Title: DefaultTitle, Status: StatusDraft}

	fm, _, had, _, err := frontmatter.Split(content)
	if err != nil || !had {
		return post
	}

	fields, err := frontmatter.ParseYAML(fm)
	if err != nil {
		return post
	}

	if title, ok := fields["title"].(string); ok && title != "" {
		post.Title = title
	}
	if status, ok := fields["status"].(string); ok && status != "" {
		post.Status = status
	}
	if author, ok := fields["author"].(string); ok {
		post.Author = author
	}
	// yaml.v3 resolves unquoted dates to time.Time; quoted ones stay strings.
	switch date := fields["date"].(type) {
	case time.Time:
		post.Date = date
	case string:
		if parsed, perr := time.Parse(dateLayout, date); perr == nil {
			post.Date = parsed
		}
	}
	if rawTags, ok := fields["tags"].([]any); ok {
		for _, raw := range rawTags {
			if tag, ok := raw.(string); ok {
				post.Tags = append(post.Tags, tag)
			}
		}
	}

	return post
}

// Published reports whether the post belongs in the published output tree.
func (p *Post) Published() bool {
	return p.Status == StatusPublished
}

// DisplayDate formats the post date for rendering, or "No date".
func (p *Post) DisplayDate() string {
	if p.Date.IsZero() {
		return "No date"
	}
	return p.Date.Format(displayDateLayout)
}

// OutputPathFor derives the site-relative output path for a source file name:
// published posts go under published/, everything else under draft/.
func (p *Post) OutputPathFor(sourceName string) string {
	subdir := StatusDraft
	if p.Published() {
		subdir = StatusPublished
	}
	htmlName := strings.TrimSuffix(sourceName, filepath.Ext(sourceName)) + ".html"
	return subdir + "/" + htmlName
}

// SortByDateDesc orders posts newest first; posts without a date sort last.
// The sort is stable so equal dates keep discovery order.
func SortByDateDesc(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
}
