package check

import (
	"slices"

	"github.com/davecgh/go-spew/spew"

	"github.com/garciat/negcoh/algos"
	. "github.com/garciat/negcoh/common"
	"github.com/garciat/negcoh/tree"
)

// DeclContext holds the declaration tables of a program. It is built once and
// only read afterwards.
type DeclContext struct {
	Structs Map[Identifier, *tree.StructDecl]
	Traits  Map[Identifier, *tree.TraitDecl]
	Impls   []*tree.ImplDecl
}

func NewDeclContext(program *tree.Program) (*DeclContext, error) {
	c := &DeclContext{
		Structs: NewMap[Identifier, *tree.StructDecl](),
		Traits:  NewMap[Identifier, *tree.TraitDecl](),
	}
	for _, decl := range program.Decls {
		switch decl := decl.(type) {
		case *tree.StructDecl:
			c.Structs.Add(decl.Name, decl)
		case *tree.TraitDecl:
			c.Traits.Add(decl.Name, decl)
		case *tree.ImplDecl:
			c.Impls = append(c.Impls, decl)
		default:
			spew.Dump(decl)
			panic("unreachable")
		}
	}

	GeneralPrintf("declarations: %d structs, %d traits, %d impls\n", len(c.Structs), len(c.Traits), len(c.Impls))

	if err := c.CheckSupertraitCycles(); err != nil {
		return nil, err
	}
	return c, nil
}

// CheckSupertraitCycles rejects trait declarations that reach themselves through
// their positive supertraits. Supertraits naming undeclared traits are left for
// the closure lookup to report.
func (c *DeclContext) CheckSupertraitCycles() error {
	names := c.Traits.Keys()
	slices.SortFunc(names, CompareIdentifiers)

	cycle := algos.FindCycle(names, func(name Identifier) []Identifier {
		decl := c.Traits[name]
		if decl.Supertraits == nil {
			return nil
		}
		var deps []Identifier
		for _, sup := range decl.Supertraits.Positive {
			if c.Traits.Contains(sup.Name) {
				deps = append(deps, sup.Name)
			}
		}
		return algos.Uniq(deps)
	})
	if cycle != nil {
		return &CyclicSupertraitError{Cycle: cycle}
	}
	return nil
}

// ========================

// Scope maps names to the types they stand for during elaboration.
type Scope struct {
	Parent *Scope
	Types  map[Identifier]Type
}

func NewScope() *Scope {
	return &Scope{Types: map[Identifier]Type{}}
}

func (s *Scope) Fork() *Scope {
	return &Scope{Parent: s, Types: map[Identifier]Type{}}
}

func (s *Scope) Lookup(name Identifier) (Type, bool) {
	if ty, ok := s.Types[name]; ok {
		return ty, true
	}
	if s.Parent != nil {
		return s.Parent.Lookup(name)
	}
	return nil, false
}

// Def shadows any earlier definition of name.
func (s *Scope) Def(name Identifier, ty Type) Type {
	s.Types[name] = ty
	return ty
}
