package commands

import (
	"fmt"

	"git.home.luguber.info/inful/blogstack/internal/htmlmd"
)

// ExtractCmd implements the reverse conversion: HTML pages back to Markdown.
type ExtractCmd struct {
	Input  string `short:"i" default:"./pages" help:"Directory containing HTML files"`
	Output string `short:"o" default:"./extracted" help:"Output directory for Markdown files"`
}

func (e *ExtractCmd) Run(_ *Global, _ *CLI) error {
	n, err := htmlmd.ConvertDir(e.Input, e.Output)
	if err != nil {
		return err
	}

	fmt.Printf("Converted %d HTML files from '%s' to '%s'\n", n, e.Input, e.Output)
	return nil
}
