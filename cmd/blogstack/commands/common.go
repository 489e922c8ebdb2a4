package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/blogstack/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"blogstack.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Convert ConvertCmd `cmd:"" help:"Convert a single Markdown file to HTML"`
	Build   BuildCmd   `cmd:"" help:"Generate a blog site from a content repository"`
	Extract ExtractCmd `cmd:"" help:"Convert a directory of HTML pages back to Markdown"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
	Preview PreviewCmd `cmd:"" help:"Build from a local directory and serve with live rebuild"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig loads the application configuration and the analytics map it
// points at.
func loadConfig(root *CLI) (*config.Config, config.Analytics, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, nil, err
	}
	analytics, err := config.LoadAnalytics(cfg.Analytics)
	if err != nil {
		return nil, nil, err
	}
	return cfg, analytics, nil
}
