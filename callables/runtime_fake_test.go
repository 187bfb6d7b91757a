package callables

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"miniclj/value"
)

// fakeRuntime is a minimal RuntimeTarget for exercising Execute directly,
// without a real compiled program or VM behind it.
type fakeRuntime struct {
	out      bytes.Buffer
	in       *bufio.Reader
	registry *Registry
}

func newFakeRuntime(stdin string) *fakeRuntime {
	return &fakeRuntime{in: bufio.NewReader(strings.NewReader(stdin)), registry: NewRegistry()}
}

func (f *fakeRuntime) ExecuteLambda(int, int, []value.Value) (value.Value, error) {
	panic("fakeRuntime does not support executing a lambda entry")
}

func (f *fakeRuntime) LookupCallable(name string) (Callable, bool) {
	return f.registry.Lookup(name)
}

func (f *fakeRuntime) Stdout() io.Writer { return &f.out }

func (f *fakeRuntime) Stdin() *bufio.Reader { return f.in }
