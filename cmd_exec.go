package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"miniclj/bytecode"
	"miniclj/callables"
	"miniclj/vm"
)

// execCmd runs a previously built .mclj bytecode file.
type execCmd struct{}

func (*execCmd) Name() string     { return "exec" }
func (*execCmd) Synopsis() string { return "run a compiled bytecode file" }
func (*execCmd) Usage() string    { return "exec <file.mclj>\n" }
func (*execCmd) SetFlags(*flag.FlagSet) {}

func (*execCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		return fail("exec: no file given")
	}
	cfg := configFromContext(ctx)

	file, err := os.Open(f.Arg(0))
	if err != nil {
		return fail("opening %s: %v", f.Arg(0), err)
	}
	defer file.Close()

	constants, instructions, err := bytecode.Read(file)
	if err != nil {
		return fail("reading bytecode: %v", err)
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
