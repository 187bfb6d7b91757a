package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

// astCmd parses a source file and prints its parsed form tree.
type astCmd struct{}

func (*astCmd) Name() string     { return "ast" }
func (*astCmd) Synopsis() string { return "parse a source file and print its form tree" }
func (*astCmd) Usage() string    { return "ast <file>\n" }
func (*astCmd) SetFlags(*flag.FlagSet) {}

func (*astCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		return fail("ast: no file given")
	}
	src, err := readSource(f.Arg(0))
	if err != nil {
		return fail("%v", err)
	}
	forms, errs := parseSource(src)
	if len(errs) > 0 {
		return fail("syntax errors:\n%s", strings.Join(errs, "\n"))
	}
	for _, form := range forms {
		fmt.Println(form.String())
	}
	return subcommands.ExitSuccess
}
