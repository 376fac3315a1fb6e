package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
)

// AliasesCmd prints the effective alias table after merging the user
// configuration over the built-ins.
type AliasesCmd struct{}

// Run executes the aliases command.
func (cmd *AliasesCmd) Run(ctx *Context) error {
	engine, err := buildEngine(ctx.Config)
	if err != nil {
		return err
	}

	aliases := engine.Aliases()
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s -> %s\n", color.CyanString(name), aliases[name])
	}
	return nil
}
