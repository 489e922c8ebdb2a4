package blog

import "strings"

// excerptLength is the number of characters shown on a home page preview card.
const excerptLength = 150

// Excerpt builds a preview snippet from a post body (frontmatter already
// removed): the first 150 characters, markdown markers stripped, with an
// ellipsis when the body was truncated.
func Excerpt(body string) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return "No preview available..."
	}

	runes := []rune(body)
	excerpt := body
	if len(runes) > excerptLength {
		excerpt = string(runes[:excerptLength]) + "..."
	}

	return strings.Map(func(r rune) rune {
		switch r {
		case '#', '*', '`':
			return -1
		}
		return r
	}, excerpt)
}
