package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/blogstack/cmd/blogstack/commands"
	"git.home.luguber.info/inful/blogstack/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("blogstack"),
		kong.Description("Static blog site generator: Markdown with YAML frontmatter in, HTML out."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	err := ctx.Run(&commands.Global{}, cli)
	ctx.FatalIfErrorf(err)
}
