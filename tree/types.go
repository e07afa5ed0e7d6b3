package tree

import (
	"fmt"
	"strings"

	. "github.com/garciat/negcoh/common"
)

// TypeExpr is a struct instantiation, a generic parameter reference or a trait
// application; which one is decided by the checker from scope.
type TypeExpr struct {
	NodeBase
	Name Identifier
	Args []*TypeExpr
}

func NewTypeExpr(name string, args ...*TypeExpr) *TypeExpr {
	return &TypeExpr{Name: NewIdentifier(name), Args: args}
}

func (t *TypeExpr) String() string {
	if len(t.Args) == 0 {
		return t.Name.Value
	}
	parts := make([]string, 0, len(t.Args))
	for _, arg := range t.Args {
		parts = append(parts, arg.String())
	}
	return fmt.Sprintf("%v<%v>", t.Name, strings.Join(parts, ", "))
}

func (t *TypeExpr) Equal(other *TypeExpr) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Name != other.Name || len(t.Args) != len(other.Args) {
		return false
	}
	for i, arg := range t.Args {
		if !arg.Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

type Bound struct {
	NodeBase
	Positive []*TypeExpr
	Negative []*TypeExpr
}

func (b *Bound) IsEmpty() bool {
	return len(b.Positive) == 0 && len(b.Negative) == 0
}

func (b *Bound) String() string {
	var sb strings.Builder
	for i, t := range b.Positive {
		if i > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(t.String())
	}
	for _, t := range b.Negative {
		if sb.Len() == 0 {
			sb.WriteString("-")
		} else {
			sb.WriteString(" - ")
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}

func (b *Bound) Equal(other *Bound) bool {
	if b == nil || other == nil {
		return b == other
	}
	return equalExprs(b.Positive, other.Positive) && equalExprs(b.Negative, other.Negative)
}

func equalExprs(a, b []*TypeExpr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

type Param struct {
	NodeBase
	Name  Identifier
	Bound *Bound
}

func (p *Param) String() string {
	if p.Bound == nil || p.Bound.IsEmpty() {
		return p.Name.Value
	}
	return fmt.Sprintf("%v: %v", p.Name, p.Bound)
}

func (p *Param) Equal(other *Param) bool {
	return p.Name == other.Name && p.Bound.Equal(other.Bound)
}

type ParamList []*Param

func (l ParamList) String() string {
	if len(l) == 0 {
		return ""
	}
	parts := make([]string, 0, len(l))
	for _, p := range l {
		parts = append(parts, p.String())
	}
	return fmt.Sprintf("<%v>", strings.Join(parts, ", "))
}
