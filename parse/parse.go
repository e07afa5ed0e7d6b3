package parse

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	. "github.com/garciat/negcoh/common"
	"github.com/garciat/negcoh/source"
	"github.com/garciat/negcoh/tree"
)

type Parser interface {
	ParseFile(path string) (*source.FileDef, error)
	ParseSource(path string, data []byte) (*source.FileDef, error)
}

func NewParser() Parser {
	return &parser{}
}

type parser struct{}

func (p *parser) ParseFile(path string) (*source.FileDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return p.ParseSource(path, data)
}

func (p *parser) ParseSource(path string, data []byte) (*source.FileDef, error) {
	text, err := source.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	decls, err := ReadDecls(path, text)
	if err != nil {
		return nil, err
	}
	return &source.FileDef{Path: path, Decls: decls}, nil
}

// ParseProgram parses a whole program from text.
func ParseProgram(text string) (*tree.Program, error) {
	decls, err := ReadDecls("", []byte(text))
	if err != nil {
		return nil, err
	}
	return &tree.Program{Decls: decls}, nil
}

func ReadDecls(path string, text []byte) ([]tree.Decl, error) {
	tokens, err := Tokenize(path, text)
	if err != nil {
		return nil, err
	}
	r := &reader{tokens: tokens}
	var decls []tree.Decl
	for r.peek().Kind != TokenEOF {
		decl, err := r.readDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

// ========================

type reader struct {
	tokens []Token
	pos    int
}

func (r *reader) peek() Token {
	return r.tokens[r.pos]
}

func (r *reader) next() Token {
	tok := r.tokens[r.pos]
	if tok.Kind != TokenEOF {
		r.pos++
	}
	return tok
}

func (r *reader) accept(kind TokenKind) bool {
	if r.peek().Kind == kind {
		r.next()
		return true
	}
	return false
}

func (r *reader) errorf(tok Token, format string, args ...interface{}) error {
	return &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf(format, args...), AtEOF: tok.Kind == TokenEOF}
}

// IsIncomplete reports whether err only says that more input was expected.
func IsIncomplete(err error) bool {
	var syntaxErr *SyntaxError
	return errors.As(err, &syntaxErr) && syntaxErr.AtEOF
}

func (r *reader) expect(kind TokenKind) (Token, error) {
	tok := r.next()
	if tok.Kind != kind {
		return tok, r.errorf(tok, "expected %v, found %v", kind, tok)
	}
	return tok, nil
}

func (r *reader) expectKeyword(word string) error {
	tok := r.next()
	if tok.Kind != TokenIdent || tok.Text != word {
		return r.errorf(tok, "expected %q, found %v", word, tok)
	}
	return nil
}

func (r *reader) readIdent() (Identifier, error) {
	tok, err := r.expect(TokenIdent)
	if err != nil {
		return Identifier{}, err
	}
	return NewIdentifier(tok.Text), nil
}

func (r *reader) readDecl() (tree.Decl, error) {
	tok := r.peek()
	if tok.Kind != TokenIdent {
		return nil, r.errorf(tok, "expected declaration, found %v", tok)
	}
	switch tok.Text {
	case "struct":
		return r.readStruct()
	case "trait":
		return r.readTrait()
	case "impl":
		return r.readImpl()
	default:
		return nil, r.errorf(tok, "expected struct, trait or impl, found %v", tok)
	}
}

func (r *reader) readStruct() (*tree.StructDecl, error) {
	start := r.next()
	name, err := r.readIdent()
	if err != nil {
		return nil, err
	}
	params, err := r.readOptionalParams()
	if err != nil {
		return nil, err
	}
	if _, err := r.expect(TokenSemi); err != nil {
		return nil, err
	}
	return &tree.StructDecl{
		DeclBase: tree.DeclBase{Pos: start.Pos},
		Name:     name,
		Params:   params,
	}, nil
}

func (r *reader) readTrait() (*tree.TraitDecl, error) {
	start := r.next()
	name, err := r.readIdent()
	if err != nil {
		return nil, err
	}
	params, err := r.readOptionalParams()
	if err != nil {
		return nil, err
	}
	var supertraits *tree.Bound
	if r.accept(TokenColon) {
		supertraits, err = r.readBound()
		if err != nil {
			return nil, err
		}
	}
	if err := r.readEmptyBody(); err != nil {
		return nil, err
	}
	return &tree.TraitDecl{
		DeclBase:    tree.DeclBase{Pos: start.Pos},
		Name:        name,
		Params:      params,
		Supertraits: supertraits,
	}, nil
}

func (r *reader) readImpl() (*tree.ImplDecl, error) {
	start := r.next()
	params, err := r.readOptionalParams()
	if err != nil {
		return nil, err
	}
	trait, err := r.readTypeExpr()
	if err != nil {
		return nil, err
	}
	if err := r.expectKeyword("for"); err != nil {
		return nil, err
	}
	target, err := r.readTypeExpr()
	if err != nil {
		return nil, err
	}
	if err := r.readEmptyBody(); err != nil {
		return nil, err
	}
	return &tree.ImplDecl{
		DeclBase: tree.DeclBase{Pos: start.Pos},
		Params:   params,
		Trait:    trait,
		Target:   target,
	}, nil
}

func (r *reader) readEmptyBody() error {
	if _, err := r.expect(TokenLBrace); err != nil {
		return err
	}
	_, err := r.expect(TokenRBrace)
	return err
}

func (r *reader) readOptionalParams() ([]*tree.Param, error) {
	if !r.accept(TokenLAngle) {
		return nil, nil
	}
	var params []*tree.Param
	for !r.accept(TokenRAngle) {
		param, err := r.readParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !r.accept(TokenComma) {
			if _, err := r.expect(TokenRAngle); err != nil {
				return nil, err
			}
			break
		}
	}
	return params, nil
}

func (r *reader) readParam() (*tree.Param, error) {
	name, err := r.readIdent()
	if err != nil {
		return nil, err
	}
	param := &tree.Param{Name: name}
	if r.accept(TokenColon) {
		param.Bound, err = r.readBound()
		if err != nil {
			return nil, err
		}
	}
	return param, nil
}

// readBound accepts "A + B - C", "-C", "!C" and "A + !C".
func (r *reader) readBound() (*tree.Bound, error) {
	bound := &tree.Bound{}
	negated := r.accept(TokenMinus) || r.accept(TokenBang)
	for {
		t, err := r.readTypeExpr()
		if err != nil {
			return nil, err
		}
		if negated {
			bound.Negative = append(bound.Negative, t)
		} else {
			bound.Positive = append(bound.Positive, t)
		}

		switch {
		case r.accept(TokenPlus):
			negated = r.accept(TokenBang)
		case r.accept(TokenMinus):
			negated = true
		default:
			return bound, nil
		}
	}
}

func (r *reader) readTypeExpr() (*tree.TypeExpr, error) {
	name, err := r.readIdent()
	if err != nil {
		return nil, err
	}
	texp := &tree.TypeExpr{Name: name}
	if !r.accept(TokenLAngle) {
		return texp, nil
	}
	for {
		arg, err := r.readTypeExpr()
		if err != nil {
			return nil, err
		}
		texp.Args = append(texp.Args, arg)
		if !r.accept(TokenComma) {
			break
		}
	}
	if _, err := r.expect(TokenRAngle); err != nil {
		return nil, err
	}
	return texp, nil
}
