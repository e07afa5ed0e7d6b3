package check

import (
	"fmt"
	"strings"

	. "github.com/garciat/negcoh/common"
)

type UndefinedSymbolError struct {
	Name Identifier
}

func (e *UndefinedSymbolError) Error() string {
	return fmt.Sprintf("undefined symbol %v", e.Name)
}

type ArityError struct {
	Name Identifier
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%v expects %d type arguments, got %d", e.Name, e.Want, e.Got)
}

type UndeclaredTraitError struct {
	Name Identifier
}

func (e *UndeclaredTraitError) Error() string {
	return fmt.Sprintf("trait %v not declared", e.Name)
}

type CyclicSupertraitError struct {
	Cycle []Identifier
}

func (e *CyclicSupertraitError) Error() string {
	names := make([]string, 0, len(e.Cycle))
	for _, name := range e.Cycle {
		names = append(names, name.Value)
	}
	return fmt.Sprintf("cyclic supertraits: %v", strings.Join(names, " -> "))
}
