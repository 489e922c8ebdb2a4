package site

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/blogstack/internal/blog"
)

// homePagePostLimit is how many published posts appear on the home page.
const homePagePostLimit = 10

// renderHomePage writes index.html with preview cards for the newest
// published posts. Callers pass pages already sorted newest first.
func (g *Generator) renderHomePage(published []page) error {
	if len(published) > homePagePostLimit {
		published = published[:homePagePostLimit]
	}

	var cards strings.Builder
	for _, p := range published {
		cards.WriteString(articleCard(p.post, blog.Excerpt(string(p.body))))
	}

	tmpl, err := g.templates.Load(TemplateHome)
	if err != nil {
		return err
	}

	doc := Substitute(tmpl, map[string]string{
		"SITE_TITLE": g.siteTitle(),
		"ARTICLES":   cards.String(),
		"COPYRIGHT":  g.copyright(),
		"ANALYTICS":  analyticsSnippet(g.analytics.TrackingID(g.repoName)),
	})

	indexPath := filepath.Join(g.outputDir, "index.html")
	if err := os.WriteFile(indexPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write home page: %w", err)
	}
	return nil
}

func articleCard(post blog.Post, excerpt string) string {
	return fmt.Sprintf(`        <article class="article-card" onclick="location.href='%s'">
            <div class="article-content">
                <h3 class="article-title">%s</h3>
                <div class="article-date">%s</div>
                <p class="article-excerpt">%s</p>
                <a href="%s" class="read-more">Read More &rarr;</a>
            </div>
        </article>
`, post.OutputPath, html.EscapeString(post.Title), post.DisplayDate(), html.EscapeString(excerpt), post.OutputPath)
}
