package memaddress

import "testing"

func TestPackUnpackRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		lifetime Lifetime
		idx      int
	}{
		{"constant zero", Constant, 0},
		{"global mid", GlobalVar, 42},
		{"local large index", LocalVar, 1<<20 - 1},
		{"temporal", Temporal, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := New(tt.lifetime, tt.idx)
			packed := addr.Pack()
			got := Unpack(packed)
			if got.Lifetime() != tt.lifetime {
				t.Errorf("Lifetime() = %v, want %v", got.Lifetime(), tt.lifetime)
			}
			if got.Index() != tt.idx {
				t.Errorf("Index() = %d, want %d", got.Index(), tt.idx)
			}
		})
	}
}

func TestNewLocalVar(t *testing.T) {
	addr := NewLocalVar(3)
	if addr.Lifetime() != LocalVar {
		t.Errorf("Lifetime() = %v, want LocalVar", addr.Lifetime())
	}
	if addr.Index() != 3 {
		t.Errorf("Index() = %d, want 3", addr.Index())
	}
}

func TestLifetimeString(t *testing.T) {
	tests := []struct {
		lifetime Lifetime
		want     string
	}{
		{Constant, "const"},
		{GlobalVar, "global"},
		{LocalVar, "local"},
		{Temporal, "temp"},
	}
	for _, tt := range tests {
		if got := tt.lifetime.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.lifetime, got, tt.want)
		}
	}
}

func TestDistinctAddressesPackDistinctly(t *testing.T) {
	a := New(LocalVar, 2)
	b := New(GlobalVar, 2)
	if a.Pack() == b.Pack() {
		t.Errorf("addresses with different lifetimes but same index packed identically: %d", a.Pack())
	}
}
