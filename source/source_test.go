package source

import (
	"testing"

	. "github.com/garciat/negcoh/common"
	"github.com/garciat/negcoh/tree"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain", []byte("struct A;"), "struct A;"},
		{"utf8 bom", []byte("\xef\xbb\xbfstruct A;"), "struct A;"},
		{"utf16 le bom", []byte{0xff, 0xfe, 'o', 0, 'k', 0}, "ok"},
		{"utf16 be bom", []byte{0xfe, 0xff, 0, 'o', 0, 'k'}, "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPackageProgramKeepsFileOrder(t *testing.T) {
	a := &tree.StructDecl{Name: NewIdentifier("A")}
	b := &tree.StructDecl{Name: NewIdentifier("B")}
	c := &tree.StructDecl{Name: NewIdentifier("C")}

	pkg := NewPackage("main")
	pkg.AddFile(&FileDef{Path: "one.trait", Decls: []tree.Decl{a, b}})
	pkg.AddFile(&FileDef{Path: "two.trait", Decls: []tree.Decl{c}})

	decls := pkg.Program().Decls
	if len(decls) != 3 || decls[0] != a || decls[1] != b || decls[2] != c {
		t.Errorf("Program().Decls = %v", decls)
	}
}
