package tree

import (
	"testing"

	. "github.com/garciat/negcoh/common"
)

func param(name string, bound *Bound) *Param {
	return &Param{Name: NewIdentifier(name), Bound: bound}
}

func TestDeclStrings(t *testing.T) {
	ta, tb, tc := NewTypeExpr("TA"), NewTypeExpr("TB"), NewTypeExpr("TC")

	tests := []struct {
		decl Decl
		want string
	}{
		{&StructDecl{Name: NewIdentifier("A")}, "struct A;"},
		{&StructDecl{Name: NewIdentifier("Vec"), Params: []*Param{param("T", nil)}}, "struct Vec<T>;"},
		{&TraitDecl{Name: NewIdentifier("TA")}, "trait TA {}"},
		{
			&TraitDecl{Name: NewIdentifier("TC"), Supertraits: &Bound{Positive: []*TypeExpr{ta, tb}}},
			"trait TC: TA + TB {}",
		},
		{
			&ImplDecl{
				Params: []*Param{param("P", &Bound{Positive: []*TypeExpr{ta, tb}, Negative: []*TypeExpr{tc}})},
				Trait:  NewTypeExpr("TP", NewTypeExpr("P")),
				Target: NewTypeExpr("A"),
			},
			"impl<P: TA + TB - TC> TP<P> for A {}",
		},
		{
			&ImplDecl{
				Params: []*Param{param("P", &Bound{Negative: []*TypeExpr{ta}}), param("Q", nil)},
				Trait:  NewTypeExpr("From", NewTypeExpr("Vec", NewTypeExpr("P"))),
				Target: NewTypeExpr("Q"),
			},
			"impl<P: -TA, Q> From<Vec<P>> for Q {}",
		},
		{&ImplDecl{Trait: NewTypeExpr("TF"), Target: NewTypeExpr("A")}, "impl TF for A {}"},
	}

	for _, tt := range tests {
		if got := tt.decl.(interface{ String() string }).String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestImplEqualIgnoresPosition(t *testing.T) {
	mk := func(line int) *ImplDecl {
		return &ImplDecl{
			DeclBase: DeclBase{Pos: Pos{Line: line, Col: 1}},
			Params:   []*Param{param("P", &Bound{Positive: []*TypeExpr{NewTypeExpr("TA")}})},
			Trait:    NewTypeExpr("T", NewTypeExpr("P")),
			Target:   NewTypeExpr("A"),
		}
	}
	if !mk(1).Equal(mk(9)) {
		t.Errorf("identical impls at different positions should be equal")
	}

	other := mk(1)
	other.Params[0].Bound = &Bound{Negative: []*TypeExpr{NewTypeExpr("TA")}}
	if mk(1).Equal(other) {
		t.Errorf("impls with different bounds should differ")
	}
}

func TestProgramImpls(t *testing.T) {
	impl := &ImplDecl{Trait: NewTypeExpr("T"), Target: NewTypeExpr("A")}
	prog := &Program{Decls: []Decl{
		&StructDecl{Name: NewIdentifier("A")},
		impl,
		&TraitDecl{Name: NewIdentifier("T")},
		impl,
	}}
	if got := prog.Impls(); len(got) != 2 || got[0] != impl || got[1] != impl {
		t.Errorf("Impls() = %v", got)
	}
}

func TestPosString(t *testing.T) {
	if got := (Pos{File: "a.trait", Line: 3, Col: 7}).String(); got != "a.trait:3:7" {
		t.Errorf("got %q", got)
	}
	if got := (Pos{}).String(); got != "-" {
		t.Errorf("got %q", got)
	}
}
