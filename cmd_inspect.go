package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"miniclj/repl"
)

// inspectCmd launches the read-only terminal inspector over a compiled
// program: its parsed forms, its constant pool, and its instruction stream.
type inspectCmd struct{}

func (*inspectCmd) Name() string     { return "inspect" }
func (*inspectCmd) Synopsis() string { return "browse a source file's AST and compiled bytecode" }
func (*inspectCmd) Usage() string    { return "inspect <file>\n" }
func (*inspectCmd) SetFlags(*flag.FlagSet) {}

func (*inspectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		return fail("inspect: no file given")
	}
	cfg := configFromContext(ctx)

	src, err := readSource(f.Arg(0))
	if err != nil {
		return fail("%v", err)
	}
	if err := repl.Inspect(f.Arg(0), src, cfg); err != nil {
		return fail("inspector error: %v", err)
	}
	return subcommands.ExitSuccess
}
