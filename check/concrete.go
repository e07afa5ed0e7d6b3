package check

import (
	"fmt"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-set/v3"

	. "github.com/garciat/negcoh/common"
)

type VarID int

// Type is an elaborated type: either a struct constructor or a type variable
// standing for an impl parameter.
type Type interface {
	_Type()
	String() string
	// Key is a canonical rendering where variables are named by id.
	Key() string
}

type TypeBase struct{}

func (*TypeBase) _Type() {}

type TypeCon struct {
	TypeBase
	Name Identifier
	Args []Type
}

func (t *TypeCon) String() string {
	return applicationString(t.Name, t.Args, Type.String)
}

func (t *TypeCon) Key() string {
	return applicationString(t.Name, t.Args, Type.Key)
}

type TypeVar struct {
	TypeBase
	ID   VarID
	Name Identifier
}

func (t *TypeVar) String() string {
	return t.Name.Value
}

func (t *TypeVar) Key() string {
	return fmt.Sprintf("?%d", t.ID)
}

func applicationString(name Identifier, args []Type, show func(Type) string) string {
	if len(args) == 0 {
		return name.Value
	}
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, show(arg))
	}
	return fmt.Sprintf("%v<%v>", name, strings.Join(parts, ", "))
}

// Identical compares constructors by name and then pointwise over the shorter
// argument list; variables compare by id.
func Identical(ty1, ty2 Type) bool {
	switch ty1 := ty1.(type) {
	case *TypeCon:
		ty2, ok := ty2.(*TypeCon)
		if !ok || ty1.Name != ty2.Name {
			return false
		}
		for i := 0; i < min(len(ty1.Args), len(ty2.Args)); i++ {
			if !Identical(ty1.Args[i], ty2.Args[i]) {
				return false
			}
		}
		return true
	case *TypeVar:
		ty2, ok := ty2.(*TypeVar)
		return ok && ty1.ID == ty2.ID
	default:
		spew.Dump(ty1, ty2)
		panic("unreachable")
	}
}

// ========================

type Trait struct {
	Name Identifier
	Args []Type
}

func (t Trait) String() string {
	return applicationString(t.Name, t.Args, Type.String)
}

func (t Trait) Hash() string {
	return applicationString(t.Name, t.Args, Type.Key)
}

// TraitIdentical is Identical lifted to trait applications.
func TraitIdentical(a, b Trait) bool {
	return Identical(&TypeCon{Name: a.Name, Args: a.Args}, &TypeCon{Name: b.Name, Args: b.Args})
}

type TraitSet = set.HashSet[Trait, string]

func NewTraitSet(traits ...Trait) *TraitSet {
	s := set.NewHashSet[Trait, string](len(traits))
	for _, t := range traits {
		s.Insert(t)
	}
	return s
}

func insertAll(dst, src *TraitSet) {
	for _, t := range src.Slice() {
		dst.Insert(t)
	}
}

// SortedTraits lists the set by canonical key so output does not depend on map order.
func SortedTraits(s *TraitSet) []Trait {
	traits := s.Slice()
	slices.SortFunc(traits, func(a, b Trait) int {
		return strings.Compare(a.Hash(), b.Hash())
	})
	return traits
}

// ========================

type Bound struct {
	Positive *TraitSet
	Negative *TraitSet
}

func NewBound() *Bound {
	return &Bound{Positive: NewTraitSet(), Negative: NewTraitSet()}
}

func (b *Bound) IsEmpty() bool {
	return b.Positive.Size() == 0 && b.Negative.Size() == 0
}

// Join is the pairwise union of the positive and negative parts.
func (b *Bound) Join(other *Bound) *Bound {
	joined := NewBound()
	for _, src := range []*Bound{b, other} {
		insertAll(joined.Positive, src.Positive)
		insertAll(joined.Negative, src.Negative)
	}
	return joined
}

func (b *Bound) String() string {
	var sb strings.Builder
	for i, t := range SortedTraits(b.Positive) {
		if i > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(t.String())
	}
	for _, t := range SortedTraits(b.Negative) {
		if sb.Len() == 0 {
			sb.WriteString("-")
		} else {
			sb.WriteString(" - ")
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}
