// Command miniclj compiles and runs the language from the command line.
// Each pipeline stage is its own subcommand so a user can stop at whichever
// stage they care about: check syntax only, print the parsed tree, compile
// to a bytecode file, or run a program end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"miniclj/internal/config"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&checkCmd{}, "")
	subcommands.Register(&astCmd{}, "")
	subcommands.Register(&buildCmd{}, "")
	subcommands.Register(&execCmd{}, "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&inspectCmd{}, "")

	verbose := flag.Bool("verbose", false, "enable debug-level logging")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	cfg := config.FromEnv(*verbose, *noColor)
	ctx := context.WithValue(context.Background(), configKey{}, cfg)

	os.Exit(int(subcommands.Execute(ctx)))
}

type configKey struct{}

func configFromContext(ctx context.Context) config.Config {
	cfg, ok := ctx.Value(configKey{}).(config.Config)
	if !ok {
		return config.FromEnv(false, false)
	}
	return cfg
}

func fail(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
