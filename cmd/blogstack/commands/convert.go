package commands

import (
	"fmt"

	"git.home.luguber.info/inful/blogstack/internal/config"
	"git.home.luguber.info/inful/blogstack/internal/site"
)

// ConvertCmd implements single-file Markdown to HTML conversion.
type ConvertCmd struct {
	Input  string `arg:"" help:"Markdown file to convert"`
	Output string `arg:"" optional:"" help:"Output HTML file (defaults to the input path with .html)"`
}

func (c *ConvertCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	out, err := site.ConvertFile(c.Input, c.Output, site.NewTemplates(cfg.Templates))
	if err != nil {
		return err
	}

	fmt.Printf("Successfully converted '%s' to '%s'\n", c.Input, out)
	return nil
}
