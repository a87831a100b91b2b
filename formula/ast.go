package formula

import (
	"fmt"
	"strings"
)

type Operator string

const (
	OpNot  = Operator("!!")
	OpNand = Operator("!&")
	OpNor  = Operator("!|")
	OpXnor = Operator("!+")
	OpAnd  = Operator("&&")
	OpOr   = Operator("||")
	OpXor  = Operator("++")
)

// Priority lists the binary operators from the highest priority to the lowest.
var Priority = []Operator{OpNand, OpNor, OpXnor, OpAnd, OpOr, OpXor}

func isOperator(s string) bool {
	switch Operator(s) {
	case OpNot, OpNand, OpNor, OpXnor, OpAnd, OpOr, OpXor:
		return true
	}
	return false
}

type TermKind int

const (
	TermVariable TermKind = iota
	TermLiteral
	TermOperator
	TermReference
	TermMemo
)

// MemoID identifies a vector in a memo store.
type MemoID int

// Term is a tagged union; the fields in use depend on Kind.
type Term struct {
	Kind TermKind

	// TermVariable: the variable name and its index in the registry.
	Name     string
	Variable int

	// TermLiteral
	Value bool

	// TermOperator
	Op Operator

	// TermReference: the expression a parenthesized group reduces into.
	Scope      int
	Expression int

	// TermMemo
	Memo MemoID
}

func VariableTerm(name string, index int) Term {
	return Term{
		Kind:     TermVariable,
		Name:     name,
		Variable: index,
	}
}

func LiteralTerm(v bool) Term {
	return Term{
		Kind:  TermLiteral,
		Value: v,
	}
}

func OperatorTerm(op Operator) Term {
	return Term{
		Kind: TermOperator,
		Op:   op,
	}
}

func ReferenceTerm(scope, expr int) Term {
	return Term{
		Kind:       TermReference,
		Scope:      scope,
		Expression: expr,
	}
}

func MemoTerm(id MemoID) Term {
	return Term{
		Kind: TermMemo,
		Memo: id,
	}
}

func (t Term) IsOperator(op Operator) bool {
	return t.Kind == TermOperator && t.Op == op
}

func (t Term) String() string {
	switch t.Kind {
	case TermVariable:
		return t.Name
	case TermLiteral:
		if t.Value {
			return "1"
		}
		return "0"
	case TermOperator:
		return string(t.Op)
	case TermReference:
		return fmt.Sprintf("$%v.%v", t.Scope, t.Expression)
	case TermMemo:
		return fmt.Sprintf("#%v", t.Memo)
	}
	return "<unknown term>"
}

// Expression is an ordered sequence of terms that reduces into exactly one term.
type Expression struct {
	Terms []Term
}

func (e *Expression) Len() int {
	return len(e.Terms)
}

func (e *Expression) Contains(op Operator) bool {
	for _, t := range e.Terms {
		if t.IsOperator(op) {
			return true
		}
	}
	return false
}

// Replace replaces the terms in [from, to] with t.
func (e *Expression) Replace(from, to int, t Term) {
	e.Terms[from] = t
	e.Terms = append(e.Terms[:from+1], e.Terms[to+1:]...)
}

type Scope struct {
	Expressions []*Expression
}

// AST is the scoped syntax structure of one formula. Scopes[0] is the top level and
// Scopes[d] holds the groups nested at depth d in the order they were closed.
type AST struct {
	// Source is the formula as given, Text is the formula without white spaces.
	Source string
	Text   string

	Scopes []*Scope
}

// Expression returns the expression at (scope, expr), or nil when it does not exist.
func (a *AST) Expression(scope, expr int) *Expression {
	if scope < 0 || scope >= len(a.Scopes) {
		return nil
	}
	s := a.Scopes[scope]
	if expr < 0 || expr >= len(s.Expressions) {
		return nil
	}
	return s.Expressions[expr]
}

// Root returns the top-level expression.
func (a *AST) Root() *Expression {
	return a.Expression(0, 0)
}

func (a *AST) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v\n", a.Text)
	for i, s := range a.Scopes {
		fmt.Fprintf(&b, "  scope %v\n", i)
		for j, e := range s.Expressions {
			terms := make([]string, len(e.Terms))
			for k, t := range e.Terms {
				terms[k] = t.String()
			}
			fmt.Fprintf(&b, "    %v.%v: %v\n", i, j, strings.Join(terms, " "))
		}
	}
	return b.String()
}
