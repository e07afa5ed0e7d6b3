package tree

import (
	"fmt"
	"strings"

	. "github.com/garciat/negcoh/common"
)

type Node interface {
	_Node()
}

type NodeBase struct{}

func (NodeBase) _Node() {}

// ========================

type Pos struct {
	File string
	Line int
	Col  int
}

func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	switch {
	case !p.IsValid():
		return "-"
	case p.File == "":
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	default:
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
	}
}

// ========================

type Decl interface {
	Node
	_Decl()
	Position() Pos
}

type DeclBase struct {
	NodeBase
	Pos Pos
}

func (*DeclBase) _Decl() {}

func (d *DeclBase) Position() Pos {
	return d.Pos
}

type StructDecl struct {
	DeclBase
	Name   Identifier
	Params []*Param
}

func (d *StructDecl) Arity() int {
	return len(d.Params)
}

func (d *StructDecl) String() string {
	return fmt.Sprintf("struct %v%v;", d.Name, ParamList(d.Params))
}

type TraitDecl struct {
	DeclBase
	Name        Identifier
	Params      []*Param
	Supertraits *Bound
}

func (d *TraitDecl) String() string {
	sup := ""
	if d.Supertraits != nil && !d.Supertraits.IsEmpty() {
		sup = fmt.Sprintf(": %v", d.Supertraits)
	}
	return fmt.Sprintf("trait %v%v%v {}", d.Name, ParamList(d.Params), sup)
}

type ImplDecl struct {
	DeclBase
	Params []*Param
	Trait  *TypeExpr
	Target *TypeExpr
}

func (d *ImplDecl) String() string {
	return fmt.Sprintf("impl%v %v for %v {}", ParamList(d.Params), d.Trait, d.Target)
}

// Equal ignores positions.
func (d *ImplDecl) Equal(other *ImplDecl) bool {
	if len(d.Params) != len(other.Params) {
		return false
	}
	for i, p := range d.Params {
		if !p.Equal(other.Params[i]) {
			return false
		}
	}
	return d.Trait.Equal(other.Trait) && d.Target.Equal(other.Target)
}

// ========================

type Program struct {
	Decls []Decl
}

func (p *Program) Impls() []*ImplDecl {
	var impls []*ImplDecl
	for _, decl := range p.Decls {
		if impl, ok := decl.(*ImplDecl); ok {
			impls = append(impls, impl)
		}
	}
	return impls
}

func (p *Program) String() string {
	lines := make([]string, 0, len(p.Decls))
	for _, decl := range p.Decls {
		lines = append(lines, fmt.Sprintf("%v", decl))
	}
	return strings.Join(lines, "\n")
}
