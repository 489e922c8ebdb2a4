package site

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed templates/*.html
var builtinTemplates embed.FS

// Template names resolved by Templates.Load.
const (
	TemplateSimple = "simple.html"
	TemplatePost   = "post.html"
	TemplateHome   = "home.html"
)

// Templates loads page templates, preferring an on-disk override directory
// over the embedded defaults.
type Templates struct {
	overrideDir string
}

// NewTemplates creates a template loader. overrideDir may be empty, in which
// case only the embedded templates are used.
func NewTemplates(overrideDir string) *Templates {
	return &Templates{overrideDir: overrideDir}
}

// Load returns the template body for the given name.
func (t *Templates) Load(name string) (string, error) {
	if t.overrideDir != "" {
		path := filepath.Join(t.overrideDir, name)
		if data, err := os.ReadFile(path); err == nil {
			return string(data), nil
		}
	}

	data, err := builtinTemplates.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("template %q not found: %w", name, err)
	}
	return string(data), nil
}

// Substitute replaces {{TOKEN}} placeholders in a template body.
// Unknown placeholders are left untouched.
func Substitute(tmpl string, tokens map[string]string) string {
	pairs := make([]string, 0, len(tokens)*2)
	for k, v := range tokens {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
