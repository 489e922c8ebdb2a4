// Package htmlmd converts saved HTML pages back into frontmattered Markdown.
// It is the reverse of site generation: title and date are recovered from the
// document head, the main content region is located, and its elements are
// re-emitted as Markdown.
package htmlmd

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/blogstack/internal/blog"
	"git.home.luguber.info/inful/blogstack/internal/frontmatter"
)

// Convert turns an HTML document into Markdown with YAML frontmatter.
//
// The title comes from <title> (default "Untitled"), the date from a
// <meta name="date"> tag when present (default today), and the status is
// always "published" since only generated pages are converted back.
func Convert(content []byte, now time.Time) ([]byte, error) {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := strings.TrimSpace(textOf(findElement(doc, "title")))
	if title == "" {
		title = blog.DefaultTitle
	}

	date := now.Format("2006-01-02")
	if meta := findMeta(doc, "date"); meta != "" {
		date = meta
	}

	fields := map[string]any{
		"title":  title,
		"date":   date,
		"status": blog.StatusPublished,
	}
	fm, err := frontmatter.SerializeYAML(fields, frontmatter.Style{})
	if err != nil {
		return nil, err
	}

	root := contentRoot(doc)
	var body strings.Builder
	renderBlocks(root, &body)

	markdown := strings.TrimRight(body.String(), "\n") + "\n"
	if strings.TrimSpace(markdown) == "" {
		markdown = "No content found.\n"
	}

	return frontmatter.Join(fm, []byte("\n"+markdown), true, frontmatter.Style{}), nil
}

// contentRoot picks the node holding the page's main content: <main>,
// <article>, a div with class "content", then <body> as a last resort.
func contentRoot(doc *html.Node) *html.Node {
	if n := findElement(doc, "main"); n != nil {
		return n
	}
	if n := findElement(doc, "article"); n != nil {
		return n
	}
	if n := findDivWithClass(doc, "content"); n != nil {
		return n
	}
	if n := findElement(doc, "body"); n != nil {
		return n
	}
	return doc
}

func renderBlocks(n *html.Node, out *strings.Builder) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "nav", "footer", "head":
			return
		case "h1", "h2", "h3", "h4", "h5", "h6":
			level := int(n.Data[1] - '0')
			text := strings.TrimSpace(renderInline(n))
			if text != "" {
				out.WriteString(strings.Repeat("#", level) + " " + text + "\n\n")
			}
			return
		case "p":
			text := strings.TrimSpace(renderInline(n))
			if text != "" {
				out.WriteString(text + "\n\n")
			}
			return
		case "ul":
			renderList(n, out, false)
			out.WriteString("\n")
			return
		case "ol":
			renderList(n, out, true)
			out.WriteString("\n")
			return
		case "pre":
			text := strings.TrimRight(textOf(n), "\n")
			if text != "" {
				out.WriteString("```\n" + text + "\n```\n\n")
			}
			return
		case "img":
			out.WriteString(fmt.Sprintf("![%s](%s)\n\n", attr(n, "alt"), attr(n, "src")))
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderBlocks(c, out)
	}
}

func renderList(n *html.Node, out *strings.Builder, ordered bool) {
	index := 1
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		text := strings.TrimSpace(renderInline(c))
		if text == "" {
			continue
		}
		if ordered {
			out.WriteString(fmt.Sprintf("%d. %s\n", index, text))
			index++
		} else {
			out.WriteString("- " + text + "\n")
		}
	}
}

// renderInline emits the Markdown inline form of an element's children.
func renderInline(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(inlineNode(c))
	}
	return b.String()
}

func inlineNode(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return collapseWhitespace(n.Data)
	case html.ElementNode:
		switch n.Data {
		case "script", "style":
			return ""
		case "strong", "b":
			return "**" + strings.TrimSpace(renderInline(n)) + "**"
		case "em", "i":
			return "*" + strings.TrimSpace(renderInline(n)) + "*"
		case "code":
			return "`" + textOf(n) + "`"
		case "a":
			return fmt.Sprintf("[%s](%s)", strings.TrimSpace(renderInline(n)), attr(n, "href"))
		case "img":
			return fmt.Sprintf("![%s](%s)", attr(n, "alt"), attr(n, "src"))
		case "br":
			return "\n"
		default:
			return renderInline(n)
		}
	}
	return ""
}

// collapseWhitespace folds runs of whitespace into single spaces while keeping
// one leading/trailing space, so adjacent inline elements do not glue together.
func collapseWhitespace(s string) string {
	if s == "" {
		return ""
	}
	trimmed := strings.Join(strings.Fields(s), " ")
	if trimmed == "" {
		return " "
	}
	if isSpace(s[0]) {
		trimmed = " " + trimmed
	}
	if isSpace(s[len(s)-1]) {
		trimmed += " "
	}
	return trimmed
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

func findDivWithClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && n.Data == "div" {
		for _, cls := range strings.Fields(attr(n, "class")) {
			if cls == class {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findDivWithClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func findMeta(doc *html.Node, name string) string {
	var result string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if result != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "meta" && attr(n, "name") == name {
			result = attr(n, "content")
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return result
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
