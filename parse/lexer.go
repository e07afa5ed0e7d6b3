package parse

import (
	"fmt"

	"github.com/garciat/negcoh/tree"
)

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenLAngle
	TokenRAngle
	TokenComma
	TokenColon
	TokenSemi
	TokenLBrace
	TokenRBrace
	TokenPlus
	TokenMinus
	TokenBang
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier"
	case TokenLAngle:
		return "'<'"
	case TokenRAngle:
		return "'>'"
	case TokenComma:
		return "','"
	case TokenColon:
		return "':'"
	case TokenSemi:
		return "';'"
	case TokenLBrace:
		return "'{'"
	case TokenRBrace:
		return "'}'"
	case TokenPlus:
		return "'+'"
	case TokenMinus:
		return "'-'"
	case TokenBang:
		return "'!'"
	default:
		panic("unreachable")
	}
}

var punctuation = map[byte]TokenKind{
	'<': TokenLAngle,
	'>': TokenRAngle,
	',': TokenComma,
	':': TokenColon,
	';': TokenSemi,
	'{': TokenLBrace,
	'}': TokenRBrace,
	'+': TokenPlus,
	'-': TokenMinus,
	'!': TokenBang,
}

type Token struct {
	Kind TokenKind
	Text string
	Pos  tree.Pos
}

func (t Token) String() string {
	if t.Kind == TokenIdent {
		return fmt.Sprintf("identifier %q", t.Text)
	}
	return t.Kind.String()
}

type SyntaxError struct {
	Pos tree.Pos
	Msg string
	// AtEOF is set when the input ended before the declaration did.
	AtEOF bool
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: syntax error: %v", e.Pos, e.Msg)
}

type lexer struct {
	file string
	src  []byte
	off  int
	line int
	col  int
}

func newLexer(file string, src []byte) *lexer {
	return &lexer{file: file, src: src, line: 1, col: 1}
}

func (l *lexer) pos() tree.Pos {
	return tree.Pos{File: l.file, Line: l.line, Col: l.col}
}

func (l *lexer) advance() {
	if l.src[l.off] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.off++
}

func (l *lexer) skipSpaceAndComments() {
	for l.off < len(l.src) {
		c := l.src[l.off]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.advance()
		case c == '/' && l.off+1 < len(l.src) && l.src[l.off+1] == '/':
			for l.off < len(l.src) && l.src[l.off] != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func isIdentByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func (l *lexer) Next() (Token, error) {
	l.skipSpaceAndComments()
	pos := l.pos()
	if l.off >= len(l.src) {
		return Token{Kind: TokenEOF, Pos: pos}, nil
	}

	c := l.src[l.off]
	if kind, ok := punctuation[c]; ok {
		l.advance()
		return Token{Kind: kind, Text: string(c), Pos: pos}, nil
	}
	if isIdentByte(c) {
		start := l.off
		for l.off < len(l.src) && isIdentByte(l.src[l.off]) {
			l.advance()
		}
		return Token{Kind: TokenIdent, Text: string(l.src[start:l.off]), Pos: pos}, nil
	}
	return Token{}, &SyntaxError{Pos: pos, Msg: fmt.Sprintf("unexpected character %q", c)}
}

func Tokenize(file string, src []byte) ([]Token, error) {
	l := newLexer(file, src)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}
