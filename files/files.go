package files

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

const SourceExt = ".trait"

type Finder interface {
	// FindSources expands a path into the source files it names: a file stands
	// for itself, a directory for every source file below it.
	FindSources(path string) ([]string, error)
}

func NewFinder() Finder {
	return &finder{Ext: SourceExt}
}

type finder struct {
	Ext string
}

func (f *finder) FindSources(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "source not found: %v", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var sources []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), f.Ext) {
			sources = append(sources, p)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scan %v", path)
	}
	slices.Sort(sources)
	return sources, nil
}

// IsSource reports whether path names a source file by its extension.
func IsSource(path string) bool {
	return filepath.Ext(path) == SourceExt
}
