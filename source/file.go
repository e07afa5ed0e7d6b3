package source

import (
	"github.com/garciat/negcoh/tree"
)

type FileDef struct {
	Path  string
	Decls []tree.Decl
}
