package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/tidwall/sjson"

	"github.com/dshills/modeline/internal/buffer"
	"github.com/dshills/modeline/internal/config"
	"github.com/dshills/modeline/internal/event"
	"github.com/dshills/modeline/internal/event/events"
	"github.com/dshills/modeline/internal/modeline"
	"github.com/dshills/modeline/internal/settings"
)

// ScanCmd scans one file and reports the applied settings.
type ScanCmd struct {
	File string `arg:"" help:"File to scan" type:"existingfile"`
	JSON bool   `help:"Emit the applied settings as JSON"`
}

// Run executes the scan command.
func (cmd *ScanCmd) Run(ctx *Context) error {
	engine, err := buildEngine(ctx.Config)
	if err != nil {
		return err
	}

	buf, err := buffer.Open(cmd.File)
	if err != nil {
		return fmt.Errorf("loading %s: %w", cmd.File, err)
	}

	store := settings.NewStore()
	bus := event.NewBus()
	bus.SubscribeFunc(events.TopicBufferLoaded, func(_ context.Context, ev any) error {
		if loaded, ok := ev.(events.BufferLoaded); ok {
			engine.Scan(loaded.Buffer, store)
		}
		return nil
	})

	err = bus.Publish(context.Background(), events.TopicBufferLoaded,
		events.BufferLoaded{Path: cmd.File, Buffer: buf})
	if err != nil {
		return err
	}

	if cmd.JSON {
		return printJSON(store.Changes())
	}
	printChanges(cmd.File, store.Changes())
	return nil
}

func printChanges(path string, changes []settings.Change) {
	if len(changes) == 0 {
		color.Yellow("%s: no mode-line directives found", path)
		return
	}

	for _, ch := range changes {
		fmt.Printf("%s = %s\n",
			color.CyanString(ch.Path),
			color.GreenString(fmt.Sprint(ch.Value)))
	}
}

// printJSON builds a nested document from the dotted option paths, so
// "editor.tabStop" lands under an "editor" object.
func printJSON(changes []settings.Change) error {
	doc := "{}"
	var err error
	for _, ch := range changes {
		doc, err = sjson.Set(doc, ch.Path, ch.Value)
		if err != nil {
			return err
		}
	}
	fmt.Println(doc)
	return nil
}

// buildEngine loads the optional user configuration and constructs the
// engine with its aliases merged ahead of the built-ins.
func buildEngine(configPath string) (*modeline.Engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	var opts []modeline.Option
	if cfg != nil && len(cfg.Aliases) > 0 {
		opts = append(opts, modeline.WithAliases(cfg.Aliases))
	}
	return modeline.New(opts...), nil
}
