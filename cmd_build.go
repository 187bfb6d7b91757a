package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"miniclj/bytecode"
)

// buildCmd compiles a source file to a .mclj bytecode file without running
// it, for later execution with exec.
type buildCmd struct {
	out string
}

func (*buildCmd) Name() string     { return "build" }
func (*buildCmd) Synopsis() string { return "compile a source file to a bytecode file" }
func (*buildCmd) Usage() string    { return "build [-o out.mclj] <file>\n" }

func (c *buildCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "output bytecode file path (default: <file> with .mclj extension)")
}

func (c *buildCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		return fail("build: no file given")
	}
	path := f.Arg(0)
	cfg := configFromContext(ctx)

	src, err := readSource(path)
	if err != nil {
		return fail("%v", err)
	}
	constants, instructions, err := compileSource(src, cfg)
	if err != nil {
		return fail("%v", err)
	}

	out := c.out
	if out == "" {
		out = outputPathFor(path)
	}
	file, err := os.Create(out)
	if err != nil {
		return fail("creating %s: %v", out, err)
	}
	defer file.Close()

	if err := bytecode.Write(file, constants, instructions); err != nil {
		return fail("writing bytecode: %v", err)
	}
	return subcommands.ExitSuccess
}
