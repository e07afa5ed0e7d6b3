package compile

import (
	"context"

	"github.com/pkg/errors"

	"github.com/garciat/negcoh/check"
	"github.com/garciat/negcoh/files"
	"github.com/garciat/negcoh/parse"
	"github.com/garciat/negcoh/source"
)

// CompilationUnit collects source files into one program and checks it.
type CompilationUnit struct {
	finder  files.Finder
	parser  parse.Parser
	Package *source.Package
	Workers int
}

func NewCompilationUnit(name string) *CompilationUnit {
	return &CompilationUnit{
		finder:  files.NewFinder(),
		parser:  parse.NewParser(),
		Package: source.NewPackage(name),
		Workers: 1,
	}
}

// AddPath loads a single file, or every source file below a directory.
func (u *CompilationUnit) AddPath(path string) error {
	sources, err := u.finder.FindSources(path)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return errors.Errorf("no %v files in %v", files.SourceExt, path)
	}
	for _, src := range sources {
		if err := u.AddFile(src); err != nil {
			return err
		}
	}
	return nil
}

func (u *CompilationUnit) AddFile(path string) error {
	file, err := u.parser.ParseFile(path)
	if err != nil {
		return err
	}
	u.LoadFile(file)
	return nil
}

func (u *CompilationUnit) AddSource(path string, data []byte) error {
	file, err := u.parser.ParseSource(path, data)
	if err != nil {
		return err
	}
	u.LoadFile(file)
	return nil
}

func (u *CompilationUnit) LoadFile(file *source.FileDef) {
	check.GeneralPrintf("loading file %v (%d decls)\n", file.Path, len(file.Decls))
	u.Package.AddFile(file)
}

// Compile checks every pair of impls across all loaded files.
func (u *CompilationUnit) Compile(ctx context.Context) ([]check.Result, error) {
	check.GeneralPrintf("=== Compile %v ===\n", u.Package.Name)

	checker, err := check.NewChecker(u.Package.Program())
	if err != nil {
		return nil, errors.Wrapf(err, "package %v", u.Package.Name)
	}
	checker.Workers = u.Workers
	return checker.Check(ctx)
}
