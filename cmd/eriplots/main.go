// Command eriplots shows the ERI palettes and colormaps, prints styles as
// TOML or YAML, and renders a demo figure.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/eriplots/eriplots"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("eriplots"),
		kong.Description("ERI branded palettes, colormaps and plot styles."),
		kong.UsageOnError(),
		kong.Vars{"version": eriplots.Version},
	)
	if cli.Verbose {
		eriplots.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	err := ctx.Run(&Context{Out: os.Stdout})
	ctx.FatalIfErrorf(err)
}
