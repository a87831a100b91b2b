package formula

import (
	"fmt"
	"io"
	"strings"
	"sync"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

type TokenKind string

const (
	TokenKindName     = TokenKind("name")
	TokenKindLiteral  = TokenKind("literal")
	TokenKindLParen   = TokenKind("(")
	TokenKindRParen   = TokenKind(")")
	TokenKindOperator = TokenKind("operator")
	TokenKindGlyph    = TokenKind("glyph")
	TokenKindEOF      = TokenKind("eof")
	TokenKindInvalid  = TokenKind("invalid")
)

// Token is a lexeme of a formula. Col is 1-based and counted in code points.
type Token struct {
	Kind TokenKind
	Text string
	Col  int
}

func (t *Token) String() string {
	switch t.Kind {
	case TokenKindEOF:
		return "<eof>"
	case TokenKindInvalid:
		return fmt.Sprintf("'%v' (<invalid>)", t.Text)
	}
	return fmt.Sprintf("'%v' (%v)", t.Text, t.Kind)
}

const lexSpecName = "formula"

const (
	lexKindWhiteSpace = "white_space"
	lexKindName       = "name"
	lexKindLiteral    = "literal"
	lexKindLParen     = "l_paren"
	lexKindRParen     = "r_paren"
	lexKindOperator   = "operator"
	lexKindGlyph      = "glyph"
)

var lexKindToTokenKind = map[string]TokenKind{
	lexKindName:     TokenKindName,
	lexKindLiteral:  TokenKindLiteral,
	lexKindLParen:   TokenKindLParen,
	lexKindRParen:   TokenKindRParen,
	lexKindOperator: TokenKindOperator,
	lexKindGlyph:    TokenKindGlyph,
}

// An operator is any pair of glyphs; which pairs are valid operators is decided by the parser,
// so that a bad pairing and a lone glyph produce different diagnostics.
func newLexSpec() *mlspec.LexSpec {
	entry := func(kind string, pattern string) *mlspec.LexEntry {
		return &mlspec.LexEntry{
			Kind:    mlspec.LexKindName(kind),
			Pattern: mlspec.LexPattern(pattern),
		}
	}
	return &mlspec.LexSpec{
		Name: lexSpecName,
		Entries: []*mlspec.LexEntry{
			entry(lexKindWhiteSpace, `[\u{0009}\u{0020}]+`),
			entry(lexKindName, `[A-Za-z]+`),
			entry(lexKindLiteral, `[01]`),
			entry(lexKindLParen, mlspec.EscapePattern("(")),
			entry(lexKindRParen, mlspec.EscapePattern(")")),
			entry(lexKindOperator, `[&|+!][&|+!]`),
			entry(lexKindGlyph, `[&|+!]`),
		},
	}
}

var (
	compiledLexSpecOnce sync.Once
	compiledLexSpec     *mlspec.CompiledLexSpec
	compiledLexSpecErr  error
)

func loadLexSpec() (*mlspec.CompiledLexSpec, error) {
	compiledLexSpecOnce.Do(func() {
		cspec, err, cErrs := mlcompiler.Compile(newLexSpec(), mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
		if err != nil {
			if len(cErrs) > 0 {
				var b strings.Builder
				fmt.Fprintf(&b, "%v: %v", cErrs[0].Kind, cErrs[0].Cause)
				if cErrs[0].Detail != "" {
					fmt.Fprintf(&b, ": %v", cErrs[0].Detail)
				}
				err = fmt.Errorf("cannot compile the formula lexer: %v", b.String())
			}
			compiledLexSpecErr = err
			return
		}
		compiledLexSpec = cspec
	})
	return compiledLexSpec, compiledLexSpecErr
}

type lexer struct {
	s *mlspec.CompiledLexSpec
	d *mldriver.Lexer
}

func newLexer(src io.Reader) (*lexer, error) {
	s, err := loadLexSpec()
	if err != nil {
		return nil, err
	}
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(s), src)
	if err != nil {
		return nil, err
	}
	return &lexer{
		s: s,
		d: d,
	}, nil
}

// next returns the next token skipping white spaces.
func (l *lexer) next() (*Token, error) {
	for {
		tok, err := l.d.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF {
			return &Token{
				Kind: TokenKindEOF,
				Col:  tok.Col + 1,
			}, nil
		}
		if tok.Invalid {
			return &Token{
				Kind: TokenKindInvalid,
				Text: string(tok.Lexeme),
				Col:  tok.Col + 1,
			}, nil
		}

		kindName := l.s.KindNames[tok.KindID].String()
		if kindName == lexKindWhiteSpace {
			continue
		}
		kind, ok := lexKindToTokenKind[kindName]
		if !ok {
			return nil, fmt.Errorf("unknown lexical kind: %v", kindName)
		}
		return &Token{
			Kind: kind,
			Text: string(tok.Lexeme),
			Col:  tok.Col + 1,
		}, nil
	}
}

// Tokenize returns all tokens of a formula including the trailing EOF token.
// An invalid token does not stop tokenization; it is returned like any other token.
func Tokenize(src string) ([]*Token, error) {
	l, err := newLexer(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	var toks []*Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokenKindEOF {
			return toks, nil
		}
	}
}
