package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kpango/glg"

	"github.com/gucio321/hsvwheel/pkg/preset"
)

type layoutsCommand struct {
	file string
}

func (*layoutsCommand) Name() string     { return "layouts" }
func (*layoutsCommand) Synopsis() string { return "List and validate picker layouts." }
func (*layoutsCommand) Usage() string {
	return `layouts [-f presets.json]:
	List built-in layouts, or layouts from a JSON file, and check they are valid.
`
}

func (cmd *layoutsCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.file, "f", "", "JSON file with layouts (default: built-in)")
}

func (cmd *layoutsCommand) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var (
		all []preset.Preset
		err error
	)

	if cmd.file == "" {
		all, err = preset.All()
	} else {
		var data []byte
		if data, err = os.ReadFile(cmd.file); err == nil {
			all, err = preset.Decode(data)
		}
	}

	if err != nil {
		glg.Error(err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	for i := range all {
		p := &all[i]
		cfg, err := p.Config()
		if err != nil {
			glg.Warnf("invalid layout: %v", err)
			status = subcommands.ExitFailure

			continue
		}

		fmt.Printf("%-10s %4gx%-4g ring %-3g inset %-3g segments %-4d marker %-2g  %s\n",
			p.Name, p.Width, p.Height,
			cfg.GetRingThickness(), cfg.GetTriangleInset(), cfg.GetSegments(), cfg.GetMarkerRadius(),
			p.Description)
	}

	return status
}
