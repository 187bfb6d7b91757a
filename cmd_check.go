package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

// checkCmd parses a source file and reports syntax errors without
// compiling or running anything.
type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "parse a source file and report syntax errors" }
func (*checkCmd) Usage() string    { return "check <file>\n" }
func (*checkCmd) SetFlags(*flag.FlagSet) {}

func (*checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		return fail("check: no file given")
	}
	src, err := readSource(f.Arg(0))
	if err != nil {
		return fail("%v", err)
	}
	forms, errs := parseSource(src)
	if len(errs) > 0 {
		return fail("syntax errors:\n%s", strings.Join(errs, "\n"))
	}
	fmt.Printf("ok: %d top-level form(s)\n", len(forms))
	return subcommands.ExitSuccess
}
