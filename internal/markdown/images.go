package markdown

import (
	"fmt"
	"path"
	"regexp"
)

// imageRefPattern matches inline image references: ![alt](destination)
var imageRefPattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

// RewriteImageRefs redirects image references to the centralized images
// directory. copied maps original file names to their final (de-duplicated)
// names; images found there resolve relative to the post page (../images/),
// unknown images fall back to an absolute /images/ path.
func RewriteImageRefs(body []byte, copied map[string]string) []byte {
	return imageRefPattern.ReplaceAllFunc(body, func(match []byte) []byte {
		sub := imageRefPattern.FindSubmatch(match)
		alt := string(sub[1])
		name := path.Base(string(sub[2]))

		if final, ok := copied[name]; ok {
			return []byte(fmt.Sprintf("![%s](../images/%s)", alt, final))
		}
		return []byte(fmt.Sprintf("![%s](/images/%s)", alt, name))
	})
}
