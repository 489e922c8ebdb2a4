// Package site turns discovered blog content into a static HTML tree:
// per-post pages split into published/ and draft/, a centralized images/
// directory, a home page of preview cards, and a build report.
package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"git.home.luguber.info/inful/blogstack/internal/blog"
	"git.home.luguber.info/inful/blogstack/internal/config"
	"git.home.luguber.info/inful/blogstack/internal/frontmatter"
	"git.home.luguber.info/inful/blogstack/internal/logfields"
	"git.home.luguber.info/inful/blogstack/internal/markdown"
)

// Generator handles static site generation for one content repository.
type Generator struct {
	cfg       *config.Config
	analytics config.Analytics
	outputDir string
	repoName  string
	templates *Templates
}

// page pairs a post with its Markdown body (frontmatter removed).
type page struct {
	post blog.Post
	body []byte
}

// NewGenerator creates a site generator writing to outputDir.
func NewGenerator(cfg *config.Config, analytics config.Analytics, outputDir, repoName string) *Generator {
	return &Generator{
		cfg:       cfg,
		analytics: analytics,
		outputDir: filepath.Clean(outputDir),
		repoName:  repoName,
		templates: NewTemplates(cfg.Templates),
	}
}

// GenerateSite builds the full site from a repository checkout.
//
// The repository must contain a blogs/ directory; its absence is an error
// surfaced to the user.
func (g *Generator) GenerateSite(repoRoot string) (*BuildReport, error) {
	report := NewBuildReport(g.repoName)

	blogsDir, err := blog.BlogsDir(repoRoot)
	if err != nil {
		return nil, err
	}

	if g.cfg.Output.Clean {
		if err := os.RemoveAll(g.outputDir); err != nil {
			return nil, fmt.Errorf("failed to clean output directory: %w", err)
		}
	}
	for _, dir := range []string{g.outputDir, filepath.Join(g.outputDir, blog.StatusPublished), filepath.Join(g.outputDir, blog.StatusDraft)} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	files, err := blog.NewDiscovery(blogsDir).Discover()
	if err != nil {
		return nil, err
	}

	copied, err := CopyAssets(blog.Assets(files), g.outputDir)
	if err != nil {
		return nil, err
	}
	report.Assets = len(copied)

	// First pass: read every post and collect metadata.
	var pages []page
	for _, file := range blog.Markdown(files) {
		content, err := os.ReadFile(file.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file.RelativePath, err)
		}

		post := blog.ParseMetadata(content)
		post.SourcePath = file.Path
		post.RelativePath = file.RelativePath
		post.OutputPath = post.OutputPathFor(file.Name + file.Extension)

		_, body, had, _, serr := frontmatter.Split(content)
		if serr != nil || !had {
			body = content
		}

		pages = append(pages, page{post: post, body: body})
	}

	// Second pass: render post pages newest first.
	sortPagesByDateDesc(pages)
	var published []page
	for _, p := range pages {
		if err := g.renderPost(p, copied); err != nil {
			return nil, err
		}
		if p.post.Published() {
			published = append(published, p)
		}
	}

	if err := g.renderHomePage(published); err != nil {
		return nil, err
	}

	report.Posts = len(pages)
	report.Published = len(published)
	report.Drafts = len(pages) - len(published)
	report.Finish()
	if err := report.Write(g.outputDir); err != nil {
		return nil, err
	}

	slog.Info("Generated blog site",
		logfields.Path(g.outputDir),
		logfields.Repository(g.repoName),
		slog.Int("published", report.Published),
		slog.Int("total", report.Posts))
	return report, nil
}

func (g *Generator) renderPost(p page, copied map[string]string) error {
	body := markdown.RewriteImageRefs(p.body, copied)
	content, err := markdown.Render(body)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", p.post.RelativePath, err)
	}

	tmpl, err := g.templates.Load(TemplatePost)
	if err != nil {
		return err
	}

	doc := Substitute(tmpl, map[string]string{
		"TITLE":      p.post.Title,
		"SITE_TITLE": g.siteTitle(),
		"META":       metaLine(p.post),
		"DATE_META":  dateMeta(p.post),
		"CONTENT":    string(content),
		"COPYRIGHT":  g.copyright(),
		"ANALYTICS":  analyticsSnippet(g.analytics.TrackingID(g.repoName)),
	})

	outPath := filepath.Join(g.outputDir, filepath.FromSlash(p.post.OutputPath))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o750); err != nil {
		return fmt.Errorf("failed to create post directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", p.post.OutputPath, err)
	}

	slog.Debug("Rendered post",
		logfields.File(p.post.OutputPath),
		logfields.Status(p.post.Status))
	return nil
}

func (g *Generator) siteTitle() string {
	if g.cfg.Site.Title != "" {
		return g.cfg.Site.Title
	}
	return g.repoName
}

func (g *Generator) copyright() string {
	holder := g.cfg.Site.Copyright
	if holder == "" {
		holder = g.repoName
	}
	return fmt.Sprintf("&copy; %d %s", time.Now().Year(), holder)
}

// metaLine builds the "By author | date | Status: status" line shown under a
// post title. The author segment is omitted when the post has none.
func metaLine(p blog.Post) string {
	line := ""
	if p.Author != "" {
		line = "By " + p.Author + " | "
	}
	return line + p.DisplayDate() + " | Status: " + p.Status
}

// dateMeta emits a date meta tag so converted pages keep their post date.
func dateMeta(p blog.Post) string {
	if p.Date.IsZero() {
		return ""
	}
	return fmt.Sprintf(`<meta name="date" content="%s">`, p.Date.Format("2006-01-02"))
}

// sortPagesByDateDesc orders pages newest first; undated pages sort last.
func sortPagesByDateDesc(pages []page) {
	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].post.Date.After(pages[j].post.Date)
	})
}
