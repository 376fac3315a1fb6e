// Package main is the entry point for the modeline tool.
//
// The tool runs the same engine a host editor embeds: it loads a file
// into a buffer, publishes the buffer-loaded event, and reports the
// settings the mode-line scan applied.
package main

import (
	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

// Version information (set via ldflags during build).
var version = "dev"

// Context carries global flags into command Run methods.
type Context struct {
	Config string
}

// CLI is the top-level command structure.
type CLI struct {
	Config  string           `help:"Path to configuration file (TOML or JSON)" short:"c" type:"path"`
	NoColor bool             `help:"Disable colored output"`
	Version kong.VersionFlag `help:"Print version and exit"`

	Scan    ScanCmd    `cmd:"" help:"Scan a file for Emacs mode lines and report the settings they map to"`
	Aliases AliasesCmd `cmd:"" help:"Print the effective mode alias table"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("modeline"),
		kong.Description("Translate Emacs mode-line directives into native editor settings."),
		kong.Vars{"version": version},
	)

	if cli.NoColor {
		color.NoColor = true
	}

	err := ctx.Run(&Context{Config: cli.Config})
	ctx.FatalIfErrorf(err)
}
