package formula

import (
	"fmt"
	"strings"

	verr "github.com/nihei9/truthtable/error"
)

func raiseSyntaxError(tok *Token, synErr *SyntaxError) {
	var detail string
	if tok.Kind != TokenKindEOF {
		detail = fmt.Sprintf("'%v'", tok.Text)
	}
	panic(&verr.FormulaError{
		Cause:  synErr,
		Detail: detail,
		Col:    tok.Col,
	})
}

// Parse builds the AST of one formula and registers its variables in reg.
// entry is the 1-based position of the formula in the input and is used only in diagnostics.
func Parse(src string, entry int, reg *Registry) (*AST, error) {
	b, err := newBuilder(src, reg)
	if err != nil {
		return nil, err
	}
	ast, err := b.build()
	if err != nil {
		if fErr, ok := err.(*verr.FormulaError); ok {
			fErr.Entry = entry
			fErr.Formula = src
		}
		return nil, err
	}
	return ast, nil
}

// ParseAll parses every formula before it returns, so that reg holds all variables of the run.
// The first syntax error aborts the whole run.
func ParseAll(srcs []string, reg *Registry) ([]*AST, error) {
	asts := make([]*AST, len(srcs))
	for i, src := range srcs {
		ast, err := Parse(src, i+1, reg)
		if err != nil {
			return nil, err
		}
		asts[i] = ast
	}
	return asts, nil
}

// StripWhiteSpaces removes the white spaces a formula may contain.
func StripWhiteSpaces(src string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, src)
}

type builder struct {
	lex *lexer
	reg *Registry
	v   *validator
	ast *AST

	depth int

	// exprIdx[d] is the index of the expression being built at depth d.
	exprIdx []int
}

func newBuilder(src string, reg *Registry) (*builder, error) {
	lex, err := newLexer(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	return &builder{
		lex: lex,
		reg: reg,
		v:   newValidator(),
		ast: &AST{
			Source: src,
			Text:   StripWhiteSpaces(src),
		},
		exprIdx: []int{0},
	}, nil
}

func (b *builder) build() (ast *AST, retErr error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		err, ok := v.(error)
		if !ok {
			panic(v)
		}
		retErr = err
	}()

	for {
		tok, err := b.lex.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenKindEOF {
			b.expect(tok, categoryEnd)
			if b.depth != 0 {
				raiseSyntaxError(tok, SynErrUnclosedGroup)
			}
			return b.ast, nil
		}
		b.consume(tok)
	}
}

func (b *builder) consume(tok *Token) {
	switch tok.Kind {
	case TokenKindLParen:
		b.expect(tok, categoryLeftParen)
		b.openGroup()
	case TokenKindRParen:
		if b.depth < 1 {
			raiseSyntaxError(tok, SynErrUnopenedGroup)
		}
		b.expect(tok, categoryRightParen)
		b.exprIdx[b.depth]++
		b.depth--
	case TokenKindName:
		b.expect(tok, categoryStatement)
		b.append(VariableTerm(tok.Text, b.reg.Register(tok.Text)))
	case TokenKindLiteral:
		b.expect(tok, categoryStatement)
		b.append(LiteralTerm(tok.Text == "1"))
	case TokenKindOperator:
		if !isOperator(tok.Text) {
			raiseSyntaxError(tok, SynErrInvalidOperator)
		}
		op := Operator(tok.Text)
		if op == OpNot {
			b.expect(tok, categoryNegation)
		} else {
			b.expect(tok, categoryOperator)
		}
		b.append(OperatorTerm(op))
	case TokenKindGlyph:
		raiseSyntaxError(tok, SynErrMalformedOperatorLength)
	default:
		raiseSyntaxError(tok, SynErrUnrecognizedSymbol)
	}
}

func (b *builder) expect(tok *Token, c category) {
	if synErr := b.v.check(c); synErr != nil {
		raiseSyntaxError(tok, synErr)
	}
}

// openGroup enters depth+1 and leaves a reference to the group's expression in the
// enclosing expression, which picks up the group's result once the group is reduced.
func (b *builder) openGroup() {
	b.depth++
	if len(b.exprIdx) <= b.depth {
		b.exprIdx = append(b.exprIdx, 0)
	}
	parent := b.expression(b.depth - 1)
	parent.Terms = append(parent.Terms, ReferenceTerm(b.depth, b.exprIdx[b.depth]))
}

func (b *builder) append(t Term) {
	e := b.expression(b.depth)
	e.Terms = append(e.Terms, t)
}

// expression returns the expression being built at depth, allocating the scope and the
// expression when they do not exist yet.
func (b *builder) expression(depth int) *Expression {
	for len(b.ast.Scopes) <= depth {
		b.ast.Scopes = append(b.ast.Scopes, &Scope{})
	}
	s := b.ast.Scopes[depth]
	for len(s.Expressions) <= b.exprIdx[depth] {
		s.Expressions = append(s.Expressions, &Expression{})
	}
	return s.Expressions[b.exprIdx[depth]]
}
