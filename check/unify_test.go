package check

import (
	"slices"
	"testing"

	. "github.com/garciat/negcoh/common"
)

func con(name string, args ...Type) *TypeCon {
	return &TypeCon{Name: NewIdentifier(name), Args: args}
}

func tvar(id int, name string) *TypeVar {
	return &TypeVar{ID: VarID(id), Name: NewIdentifier(name)}
}

func TestUnifyTypes(t *testing.T) {
	p0, q1 := tvar(0, "P"), tvar(1, "Q")

	tests := []struct {
		name      string
		left      Type
		right     Type
		wantSubst string
		wantErr   string
	}{
		{"same constructor", con("A"), con("A"), "{{  }}", ""},
		{"different constructors", con("A"), con("B"), "", "cannot unify A with B"},
		{"var left", p0, con("A"), "{{ ?0 -> A }}", ""},
		{"var right", con("A"), p0, "{{ ?0 -> A }}", ""},
		{"var var", p0, q1, "{{ ?0 -> ?1 }}", ""},
		{"same var", p0, p0, "{{  }}", ""},
		{"nested", con("Vec", p0), con("Vec", con("A")), "{{ ?0 -> A }}", ""},
		{"nested mismatch", con("Vec", con("A")), con("Vec", con("B")), "", "cannot unify A with B"},
		{"shorter args are compared pointwise", con("Pair", con("A"), con("B")), con("Pair", con("A")), "{{  }}", ""},
		{"cyclic", p0, con("Vec", p0), "{{ ?0 -> Vec<?0> }}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUnifier()
			m := u.UnifyTypes(tt.left, tt.right)
			if tt.wantErr != "" {
				if m == nil {
					t.Fatalf("UnifyTypes() succeeded with %v, want %q", u.Subst, tt.wantErr)
				}
				if got := m.String(); got != tt.wantErr {
					t.Errorf("mismatch = %q, want %q", got, tt.wantErr)
				}
				return
			}
			if m != nil {
				t.Fatalf("UnifyTypes() = %v", m)
			}
			if got := u.Subst.String(); got != tt.wantSubst {
				t.Errorf("subst = %v, want %v", got, tt.wantSubst)
			}
		})
	}
}

func TestUnifyFollowsBindings(t *testing.T) {
	p0, q1 := tvar(0, "P"), tvar(1, "Q")
	u := NewUnifier()

	if m := u.UnifyTypes(p0, q1); m != nil {
		t.Fatal(m)
	}
	if m := u.UnifyTypes(q1, con("A")); m != nil {
		t.Fatal(m)
	}
	if got := u.Resolve(p0).Key(); got != "A" {
		t.Errorf("Resolve(P) = %v, want A", got)
	}

	// P is already A, so it cannot also be B.
	if m := u.UnifyTypes(p0, con("B")); m == nil {
		t.Errorf("UnifyTypes(P, B) succeeded after P = A")
	}

	// With P = Vec<Q>, unifying Q with P binds Q to Vec<Q>.
	u = NewUnifier()
	if m := u.UnifyTypes(p0, con("Vec", q1)); m != nil {
		t.Fatal(m)
	}
	if m := u.UnifyTypes(q1, p0); m != nil {
		t.Fatalf("UnifyTypes(Q, P) = %v", m)
	}
	if got := u.Subst.String(); got != "{{ ?0 -> Vec<?1> ; ?1 -> Vec<?1> }}" {
		t.Errorf("subst = %v", got)
	}
}

func TestUnifyCyclicTypes(t *testing.T) {
	p0 := tvar(0, "P")
	u := NewUnifier()

	if m := u.UnifyTypes(p0, con("Vec", p0)); m != nil {
		t.Fatal(m)
	}
	if got := u.Resolve(p0).Key(); got != "Vec<?0>" {
		t.Errorf("Resolve(P) = %v, want Vec<?0>", got)
	}

	// P unfolds to Vec<Vec<P>> as well.
	if m := u.UnifyTypes(p0, con("Vec", con("Vec", p0))); m != nil {
		t.Errorf("UnifyTypes(P, Vec<Vec<P>>) = %v", m)
	}

	m := u.UnifyTypes(p0, con("Vec", con("Vec", con("A"))))
	if m == nil || m.String() != "cannot unify Vec<Vec<P>> with A" {
		t.Errorf("UnifyTypes(P, Vec<Vec<A>>) = %v", m)
	}
}

func TestIdentical(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same constructor", con("Vec", con("A")), con("Vec", con("A")), true},
		{"different names", con("A"), con("B"), false},
		{"different args", con("Vec", con("A")), con("Vec", con("B")), false},
		{"truncated args", con("Pair", con("A"), con("B")), con("Pair", con("A")), true},
		{"truncated nested args", con("Vec", con("Pair", con("A"))), con("Vec", con("Pair", con("A"), con("B"))), true},
		{"same var", tvar(0, "P"), tvar(0, "Q"), true},
		{"different vars", tvar(0, "P"), tvar(1, "P"), false},
		{"var and constructor", tvar(0, "P"), con("P"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Identical(tt.a, tt.b); got != tt.want {
				t.Errorf("Identical(%v, %v) = %v, want %v", tt.a.Key(), tt.b.Key(), got, tt.want)
			}
			if got := Identical(tt.b, tt.a); got != tt.want {
				t.Errorf("Identical(%v, %v) = %v, want %v", tt.b.Key(), tt.a.Key(), got, tt.want)
			}
		})
	}
}

func TestUnifyTraits(t *testing.T) {
	p0 := tvar(0, "P")

	u := NewUnifier()
	m := u.UnifyTraits(Trait{Name: NewIdentifier("TP"), Args: []Type{p0}}, Trait{Name: NewIdentifier("TQ"), Args: []Type{p0}})
	if m == nil || m.String() != "cannot unify TP<P> with TQ<P>" {
		t.Errorf("UnifyTraits() = %v", m)
	}

	u = NewUnifier()
	if m := u.UnifyTraits(Trait{Name: NewIdentifier("TP"), Args: []Type{p0}}, Trait{Name: NewIdentifier("TP"), Args: []Type{con("A")}}); m != nil {
		t.Fatalf("UnifyTraits() = %v", m)
	}
	if got := u.Resolve(p0).Key(); got != "A" {
		t.Errorf("Resolve(P) = %v, want A", got)
	}
}

func TestEquivalenceClasses(t *testing.T) {
	u := NewUnifier()
	u.Subst = Subst{
		0: tvar(1, "Q"),
		2: tvar(1, "Q"),
		3: con("A"),
		4: tvar(5, "S"),
		5: con("Vec", tvar(6, "U")),
		6: con("B"),
	}

	classes := u.EquivalenceClasses()

	type want struct {
		members []VarID
		anchor  string
	}
	wants := []want{
		{[]VarID{0, 1, 2}, ""},
		{[]VarID{3}, "A"},
		{[]VarID{4, 5}, "Vec<B>"},
		{[]VarID{6}, "B"},
	}

	if len(classes) != len(wants) {
		t.Fatalf("got %d classes %v, want %d", len(classes), classes, len(wants))
	}
	for i, w := range wants {
		if !slices.Equal(classes[i].Members, w.members) {
			t.Errorf("class %d members = %v, want %v", i, classes[i].Members, w.members)
		}
		var anchor string
		if classes[i].Anchor != nil {
			anchor = classes[i].Anchor.Key()
		}
		if anchor != w.anchor {
			t.Errorf("class %d anchor = %q, want %q", i, anchor, w.anchor)
		}
	}
}

func TestSubstResolve(t *testing.T) {
	s := Subst{0: tvar(1, "Q"), 1: con("Vec", tvar(2, "R")), 2: con("A")}

	if got := s.Resolve(tvar(0, "P")).Key(); got != "Vec<A>" {
		t.Errorf("Resolve(?0) = %v, want Vec<A>", got)
	}
	if got := s.Resolve(tvar(3, "S")).Key(); got != "?3" {
		t.Errorf("Resolve(?3) = %v, want ?3", got)
	}

	cyclic := Subst{0: tvar(1, "Q"), 1: con("Pair", tvar(0, "P"), con("A"))}
	if got := cyclic.Resolve(tvar(0, "P")).Key(); got != "Pair<?0, A>" {
		t.Errorf("Resolve(?0) = %v, want Pair<?0, A>", got)
	}
	if got := cyclic.Walk(tvar(0, "P")).Key(); got != "Pair<?0, A>" {
		t.Errorf("Walk(?0) = %v, want Pair<?0, A>", got)
	}
}
