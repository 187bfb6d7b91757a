package vm_test

import (
	"bytes"
	"strings"
	"testing"

	"miniclj/callables"
	"miniclj/compiler"
	"miniclj/lexer"
	"miniclj/parser"
	"miniclj/vm"
)

func runSource(t *testing.T, src string) string {
	t.Helper()

	l := lexer.New(src)
	p := parser.New(l)
	forms := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}

	registry := callables.NewRegistry()
	comp := compiler.New(registry, nil)
	if err := comp.Compile(forms); err != nil {
		t.Fatalf("compile error: %v", err)
	}

	var out bytes.Buffer
	machine := vm.New(registry, comp.Constants(), comp.Instructions(),
		vm.WithStdout(&out), vm.WithStdin(strings.NewReader("")))
	if err := machine.Run(); err != nil {
		t.Fatalf("runtime error: %v", err)
	}
	return out.String()
}

func TestArithmeticAndPrintln(t *testing.T) {
	got := runSource(t, `(println (+ 1 2))`)
	if got != "3\n" {
		t.Errorf("got %q, want %q", got, "3\n")
	}
}

func TestDefAndReference(t *testing.T) {
	got := runSource(t, `
		(def x 5)
		(println (* x x))`)
	if got != "25\n" {
		t.Errorf("got %q, want %q", got, "25\n")
	}
}

func TestDefnAndCall(t *testing.T) {
	got := runSource(t, `
		(defn add [a b] (+ a b))
		(println (add 2 3))`)
	if got != "5\n" {
		t.Errorf("got %q, want %q", got, "5\n")
	}
}

func TestIfBranches(t *testing.T) {
	got := runSource(t, `
		(println (if (= 1 1) "yes" "no"))
		(println (if (= 1 2) "yes" "no"))`)
	if got != "yes\nno\n" {
		t.Errorf("got %q, want %q", got, "yes\nno\n")
	}
}

func TestAndOrTruthiness(t *testing.T) {
	got := runSource(t, `
		(println (and 1 2 3))
		(println (and 1 nil 3))
		(println (or nil nil 7))`)
	if got != "1\n0\n1\n" {
		t.Errorf("got %q, want %q", got, "1\n0\n1\n")
	}
}

func TestLoopRecurFactorial(t *testing.T) {
	got := runSource(t, `
		(defn fact [n]
			(loop [acc 1 i n]
				(if (= i 0) acc (recur (* acc i) (- i 1)))))
		(println (fact 5))`)
	if got != "120\n" {
		t.Errorf("got %q, want %q", got, "120\n")
	}
}

func TestRecursiveDefn(t *testing.T) {
	got := runSource(t, `
		(defn fact [n] (if (= n 0) 1 (* n (fact (- n 1)))))
		(println (fact 6))`)
	if got != "720\n" {
		t.Errorf("got %q, want %q", got, "720\n")
	}
}

func TestLetBindings(t *testing.T) {
	got := runSource(t, `(println (let [a 1 b 2] (+ a b)))`)
	if got != "3\n" {
		t.Errorf("got %q, want %q", got, "3\n")
	}
}

func TestCollectionBuiltins(t *testing.T) {
	got := runSource(t, `
		(println (first '(1 2 3)))
		(println (count [1 2 3]))
		(println (conj [1 2] 3))
		(println (get {1 "a" 2 "b"} 2))`)
	want := "1\n3\n[1 2 3]\nb\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMapFilterReduce(t *testing.T) {
	got := runSource(t, `
		(println (map #(* % 2) [1 2 3]))
		(println (filter #(> % 1) [1 2 3]))
		(println (reduce + [1 2 3 4]))`)
	want := "(2 4 6)\n(2 3)\n10\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNestedDefnRunsWithoutReferencingOuterLocals(t *testing.T) {
	got := runSource(t, `
		(defn outer [x]
			(do
				(defn inner [y] (+ y y))
				(inner x)))
		(println (outer 4))`)
	if got != "8\n" {
		t.Errorf("got %q, want %q", got, "8\n")
	}
}
