package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"git.home.luguber.info/inful/blogstack/internal/preview"
	"git.home.luguber.info/inful/blogstack/internal/site"
)

// PreviewCmd builds a site from a local directory and serves it, rebuilding
// whenever source files change.
type PreviewCmd struct {
	Source string `short:"s" default:"." help:"Content repository directory to watch"`
	Output string `short:"o" help:"Output directory for the generated site (defaults to temp)"`
	Port   int    `short:"p" default:"8080" help:"HTTP port to serve on"`
}

func (p *PreviewCmd) Run(_ *Global, root *CLI) error {
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, analytics, err := loadConfig(root)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	source, err := filepath.Abs(p.Source)
	if err != nil {
		return fmt.Errorf("resolve source directory: %w", err)
	}
	repoName := filepath.Base(source)

	outputDir := p.Output
	if outputDir == "" {
		tmp, terr := os.MkdirTemp("", "blogstack-preview-*")
		if terr != nil {
			return fmt.Errorf("create temp output: %w", terr)
		}
		defer func() { _ = os.RemoveAll(tmp) }()
		outputDir = tmp
		fmt.Println("Preview output directory:", outputDir)
	}

	rebuild := func() error {
		generator := site.NewGenerator(cfg, analytics, outputDir, repoName)
		_, buildErr := generator.GenerateSite(source)
		return buildErr
	}

	fmt.Printf("Previewing '%s' at http://localhost:%d/\n", source, p.Port)
	return preview.NewServer(source, outputDir, p.Port, rebuild).Run(sigctx)
}
