package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"miniclj/callables"
	"miniclj/vm"
)

// runCmd compiles a source file and runs it in memory, the common case for
// everyday use: no intermediate .mclj file is written.
type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "compile and run a source file" }
func (*runCmd) Usage() string    { return "run <file>\n" }
func (*runCmd) SetFlags(*flag.FlagSet) {}

func (*runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		return fail("run: no file given")
	}
	cfg := configFromContext(ctx)

	src, err := readSource(f.Arg(0))
	if err != nil {
		return fail("%v", err)
	}
	constants, instructions, err := compileSource(src, cfg)
	if err != nil {
		return fail("%v", err)
	}

	registry := callables.NewRegistry()
	machine := vm.New(registry, constants, instructions,
		vm.WithStdout(os.Stdout),
		vm.WithStdin(os.Stdin),
		vm.WithMaxDepth(cfg.MaxDepth),
		vm.WithLogger(cfg.Logger()))

	if err := machine.Run(); err != nil {
		return fail("runtime error: %v", err)
	}
	return subcommands.ExitSuccess
}
