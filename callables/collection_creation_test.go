package callables

import (
	"testing"

	"miniclj/value"
)

func TestListBuiltinPreservesOrder(t *testing.T) {
	got, err := (ListBuiltin{}).Execute(nil, []value.Value{value.NewInt(1), value.NewInt(2)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	l, ok := got.List()
	if !ok || !l.First().Equal(value.NewInt(1)) {
		t.Errorf("(list 1 2) head = %v, want 1", l.First())
	}
}

func TestVectorBuiltinBuildsVector(t *testing.T) {
	got, err := (VectorBuiltin{}).Execute(nil, []value.Value{value.NewInt(1), value.NewInt(2)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	vec, ok := got.Vector()
	if !ok || len(vec) != 2 {
		t.Errorf("(vector 1 2) = %v, want a 2-element vector", vec)
	}
}

func TestSetBuiltinDeduplicates(t *testing.T) {
	got, err := (SetBuiltin{}).Execute(nil, []value.Value{value.NewInt(1), value.NewInt(1), value.NewInt(2)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	set, ok := got.Set()
	if !ok || len(set) != 2 {
		t.Errorf("(set 1 1 2) = %v, want a 2-element set", set)
	}
}

func TestHashMapBuiltinPairsUpArguments(t *testing.T) {
	got, err := (HashMapBuiltin{}).Execute(nil, []value.Value{value.NewInt(1), value.NewString("a"), value.NewInt(2), value.NewString("b")})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	v, ok := got.MapGet(value.NewInt(2))
	if !ok {
		t.Fatal("expected key 2 to be present")
	}
	if s, ok := v.Str(); !ok || s != "b" {
		t.Errorf("(hash-map 1 \"a\" 2 \"b\") get 2 = %v, %v; want \"b\", true", s, ok)
	}
}

func TestHashMapBuiltinRejectsOddArity(t *testing.T) {
	if _, err := (HashMapBuiltin{}).Execute(nil, []value.Value{value.NewInt(1)}); err == nil {
		t.Error("expected an error for an odd number of arguments")
	}
}
