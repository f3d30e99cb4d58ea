package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kpango/glg"

	"github.com/gucio321/hsvwheel/pkg/snapshot"
)

type inspectCommand struct{}

func (*inspectCommand) Name() string     { return "inspect" }
func (*inspectCommand) Synopsis() string { return "Count drawing instructions of SVG snapshots." }
func (*inspectCommand) Usage() string {
	return `inspect <file.svg>...:
	Parse snapshots back and print how many moves, lines, curves, closes and paints they hold.
`
}

func (*inspectCommand) SetFlags(*flag.FlagSet) {}

func (*inspectCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		glg.Error("missing snapshot argument")
		return subcommands.ExitUsageError
	}

	for _, path := range f.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			glg.Error(err)
			return subcommands.ExitFailure
		}

		stats, err := snapshot.Inspect(data)
		if err != nil {
			glg.Errorf("%s: %v", path, err)
			return subcommands.ExitFailure
		}

		fmt.Printf("%s: %+v\n", path, *stats)
	}

	return subcommands.ExitSuccess
}
