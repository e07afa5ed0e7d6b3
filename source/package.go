package source

import (
	"github.com/garciat/negcoh/tree"
)

// Package is the set of files checked together as one program.
type Package struct {
	Name  string
	Files []*FileDef
}

func NewPackage(name string) *Package {
	return &Package{Name: name}
}

func (p *Package) AddFile(file *FileDef) {
	p.Files = append(p.Files, file)
}

// Program concatenates the declarations of all files in the order they were added.
func (p *Package) Program() *tree.Program {
	var decls []tree.Decl
	for _, file := range p.Files {
		decls = append(decls, file.Decls...)
	}
	return &tree.Program{Decls: decls}
}
