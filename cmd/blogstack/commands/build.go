package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/blogstack/internal/git"
	"git.home.luguber.info/inful/blogstack/internal/logfields"
	"git.home.luguber.info/inful/blogstack/internal/site"
	"git.home.luguber.info/inful/blogstack/internal/workspace"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Repo   string `short:"r" help:"Git URL of the content repository to clone"`
	Source string `short:"s" help:"Local content repository directory (skips cloning)"`
	Branch string `short:"b" help:"Branch to clone (defaults to the remote HEAD)"`
	Output string `short:"o" help:"Output root directory (site is written to <output>/<repo-name>)"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	if (b.Repo == "") == (b.Source == "") {
		return fmt.Errorf("exactly one of --repo or --source must be provided")
	}

	cfg, analytics, err := loadConfig(root)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	repoRoot, repoName, cleanup, err := b.resolveSource()
	if err != nil {
		return err
	}
	defer cleanup()

	outputRoot := b.Output
	if outputRoot == "" {
		outputRoot = cfg.Output.Directory
	}
	outputDir := filepath.Join(outputRoot, repoName)

	generator := site.NewGenerator(cfg, analytics, outputDir, repoName)
	report, err := generator.GenerateSite(repoRoot)
	if err != nil {
		return err
	}

	fmt.Printf("Generated blog site in '%s'\n", outputDir)
	fmt.Printf("Found %d published blogs and %d total blogs\n", report.Published, report.Posts)
	return nil
}

// resolveSource produces the repository root to build from: a fresh clone in
// an ephemeral workspace for --repo, or the local directory for --source.
func (b *BuildCmd) resolveSource() (repoRoot, repoName string, cleanup func(), err error) {
	if b.Source != "" {
		abs, aerr := filepath.Abs(b.Source)
		if aerr != nil {
			return "", "", nil, fmt.Errorf("resolve source directory: %w", aerr)
		}
		return abs, filepath.Base(abs), func() {}, nil
	}

	wsManager := workspace.NewManager("")
	if cerr := wsManager.Create(); cerr != nil {
		return "", "", nil, cerr
	}
	cleanup = func() {
		if werr := wsManager.Cleanup(); werr != nil {
			slog.Warn("Failed to cleanup workspace", logfields.Error(werr))
		}
	}

	repoName = git.RepoName(b.Repo)
	slog.Info("Cloning repository", logfields.URL(b.Repo), logfields.Name(repoName))

	gitClient := git.NewClient(wsManager.GetPath())
	repoRoot, err = gitClient.CloneRepository(b.Repo, repoName, b.Branch)
	if err != nil {
		cleanup()
		return "", "", nil, err
	}
	return repoRoot, repoName, cleanup, nil
}
