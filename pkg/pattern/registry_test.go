package pattern

import (
	"testing"

	"github.com/partscout/partscout/pkg/component"
)

func TestOwnerScoping(t *testing.T) {
	r := New()
	if err := r.Register("vendor-a", component.OpAmp, "^LM[0-9]+"); err != nil {
		t.Fatal(err)
	}

	// Another owner registering the same generic type must not leak into
	// vendor-b's scoped query.
	if !r.MatchesAny("LM358", component.OpAmp) {
		t.Error("MatchesAny = false, want true")
	}
	if !r.MatchesOwner("vendor-a", "LM358", component.OpAmp) {
		t.Error("MatchesOwner(vendor-a) = false, want true")
	}
	if r.MatchesOwner("vendor-b", "LM358", component.OpAmp) {
		t.Error("MatchesOwner(vendor-b) = true, want false: satisfied by another owner's registration")
	}
}

func TestCaseInsensitiveMatching(t *testing.T) {
	r := New()
	if err := r.Register("vendor-a", component.Mosfet, "^irf[0-9]+"); err != nil {
		t.Fatal(err)
	}

	tests := []string{"IRF530", "irf530", "Irf530"}
	for _, mpn := range tests {
		t.Run(mpn, func(t *testing.T) {
			if !r.MatchesOwner("vendor-a", mpn, component.Mosfet) {
				t.Errorf("MatchesOwner(%q) = false, want true", mpn)
			}
		})
	}
}

func TestRegisterBadExpression(t *testing.T) {
	r := New()
	if err := r.Register("vendor-a", component.OpAmp, "^LM["); err == nil {
		t.Error("Register accepted a malformed expression")
	}
}

func TestTypesPreservesRegistrationOrder(t *testing.T) {
	r := New()
	for _, typ := range []component.Type{component.OpAmp, component.Comparator, component.VoltageRegulator} {
		if err := r.Register("vendor-a", typ, "^X"); err != nil {
			t.Fatal(err)
		}
	}
	// A second pattern for an already-registered type must not duplicate
	// the order entry.
	if err := r.Register("vendor-a", component.OpAmp, "^Y"); err != nil {
		t.Fatal(err)
	}

	got := r.Types("vendor-a")
	want := []component.Type{component.OpAmp, component.Comparator, component.VoltageRegulator}
	if len(got) != len(want) {
		t.Fatalf("Types() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Types()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNoRegistrationsNoMatch(t *testing.T) {
	r := New()
	if r.MatchesAny("LM358", component.OpAmp) {
		t.Error("empty registry matched")
	}
	if r.MatchesOwner("vendor-a", "LM358", component.OpAmp) {
		t.Error("empty registry matched owner query")
	}
}
