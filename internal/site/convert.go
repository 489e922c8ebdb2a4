package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/blogstack/internal/blog"
	"git.home.luguber.info/inful/blogstack/internal/frontmatter"
	"git.home.luguber.info/inful/blogstack/internal/markdown"
)

// ConvertFile converts a single Markdown file to a standalone HTML page using
// the simple template. When outputPath is empty the input path with a .html
// extension is used. Returns the path of the written file.
func ConvertFile(inputPath, outputPath string, templates *Templates) (string, error) {
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".html"
	}

	content, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	post := blog.ParseMetadata(content)
	_, body, had, _, serr := frontmatter.Split(content)
	if serr != nil || !had {
		body = content
	}

	title := post.Title
	if title == blog.DefaultTitle {
		title = filepath.Base(inputPath)
	}

	rendered, err := markdown.Render(body)
	if err != nil {
		return "", err
	}

	tmpl, err := templates.Load(TemplateSimple)
	if err != nil {
		return "", err
	}

	doc := Substitute(tmpl, map[string]string{
		"TITLE":     title,
		"DATE_META": dateMeta(post),
		"CONTENT":   string(rendered),
	})

	if err := os.WriteFile(outputPath, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return outputPath, nil
}
