package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/kpango/glg"
)

func main() {
	cmds := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmds.Register(cmds.HelpCommand(), "")
	cmds.Register(cmds.FlagsCommand(), "")

	cmds.Register(&resolveCommand{}, "")
	cmds.Register(&layoutsCommand{}, "")
	cmds.Register(&inspectCommand{}, "")

	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	if !*debug {
		glg.Get().SetLevelMode(glg.DEBG, glg.NONE)
	}

	os.Exit(int(cmds.Execute(context.Background())))
}
