package callables

import (
	"testing"

	"miniclj/value"
)

func TestPrintNoTrailingNewline(t *testing.T) {
	rt := newFakeRuntime("")
	if _, err := (Print{}).Execute(rt, []value.Value{value.NewInt(1), value.NewInt(2)}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got, want := rt.out.String(), "1 2"; got != want {
		t.Errorf("print output = %q, want %q", got, want)
	}
}

func TestPrintRejectsZeroArgs(t *testing.T) {
	if _, err := (Print{}).Execute(newFakeRuntime(""), nil); err == nil {
		t.Error("expected an error calling print with no arguments")
	}
}

func TestPrintlnAcceptsZeroArgs(t *testing.T) {
	rt := newFakeRuntime("")
	if _, err := (Println{}).Execute(rt, nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got, want := rt.out.String(), "\n"; got != want {
		t.Errorf("println() output = %q, want %q", got, want)
	}
}

func TestPrintlnRendersStringsUnquoted(t *testing.T) {
	rt := newFakeRuntime("")
	if _, err := (Println{}).Execute(rt, []value.Value{value.NewString("hi")}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got, want := rt.out.String(), "hi\n"; got != want {
		t.Errorf("println output = %q, want %q", got, want)
	}
}

func TestReadTrimsTrailingNewline(t *testing.T) {
	rt := newFakeRuntime("hello world\n")
	got, err := (Read{}).Execute(rt, nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	s, ok := got.Str()
	if !ok || s != "hello world" {
		t.Errorf("read result = %v, %v; want %q, true", s, ok, "hello world")
	}
}

func TestReadRejectsArguments(t *testing.T) {
	if _, err := (Read{}).Execute(newFakeRuntime(""), []value.Value{value.NewInt(1)}); err == nil {
		t.Error("expected an error calling read with an argument")
	}
}
