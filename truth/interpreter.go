package truth

import (
	"errors"
	"fmt"
	"sync"

	"github.com/nihei9/truthtable/formula"
)

// ErrInconsistent reports an AST the parser should never have produced.
var ErrInconsistent = errors.New("inconsistent syntax tree")

// Interpreter reduces ASTs into truth vectors. An Interpreter may reduce distinct ASTs
// concurrently; one AST must not be reduced by two goroutines at once.
type Interpreter struct {
	size      int
	variables []Vector
	memo      *Memo

	zerosOnce sync.Once
	zeros     Vector
	onesOnce  sync.Once
	ones      Vector
}

// NewInterpreter returns an interpreter over tables of size rows. variables[i] is the
// column of the i-th registered variable.
func NewInterpreter(size int, variables []Vector, memo *Memo) *Interpreter {
	return &Interpreter{
		size:      size,
		variables: variables,
		memo:      memo,
	}
}

// Evaluate reduces ast and returns the truth vector of the formula.
func (i *Interpreter) Evaluate(ast *formula.AST) (Vector, error) {
	id, err := i.Reduce(ast)
	if err != nil {
		return Vector{}, err
	}
	v, ok := i.memo.Load(id)
	if !ok {
		return Vector{}, fmt.Errorf("%w: %v: memo #%v is missing", ErrInconsistent, ast.Text, id)
	}
	return v, nil
}

// Reduce rewrites ast in place until its root holds a single memo reference and returns it.
// Scopes are reduced from the deepest one so that every group is reduced before the
// expression referencing it.
func (i *Interpreter) Reduce(ast *formula.AST) (formula.MemoID, error) {
	for s := len(ast.Scopes) - 1; s >= 0; s-- {
		for _, e := range ast.Scopes[s].Expressions {
			err := i.reduceExpression(ast, e)
			if err != nil {
				return 0, err
			}
		}
	}

	root := ast.Root()
	if root == nil || root.Len() != 1 {
		return 0, fmt.Errorf("%w: %v: the root expression was not reduced", ErrInconsistent, ast.Text)
	}
	if root.Terms[0].Kind == formula.TermMemo {
		return root.Terms[0].Memo, nil
	}

	// A bare statement or a pass-through group has no operator to produce a memo entry.
	v, err := i.resolve(ast, root, 0)
	if err != nil {
		return 0, err
	}
	id := i.memo.Store(v)
	root.Terms[0] = formula.MemoTerm(id)
	return id, nil
}

func (i *Interpreter) reduceExpression(ast *formula.AST, e *formula.Expression) error {
	// A negation applies to the term on its right. In a chain, the rightmost negation is
	// reduced first, then the scan steps back to the negation preceding it.
	for p := 0; p < e.Len(); {
		if !e.Terms[p].IsOperator(formula.OpNot) {
			p++
			continue
		}
		if p+1 >= e.Len() {
			return fmt.Errorf("%w: %v: a negation has no operand", ErrInconsistent, ast.Text)
		}
		if e.Terms[p+1].IsOperator(formula.OpNot) {
			p++
			continue
		}
		v, err := i.resolve(ast, e, p+1)
		if err != nil {
			return err
		}
		e.Replace(p, p+1, formula.MemoTerm(i.memo.Store(v.Not())))
		if p > 0 {
			p--
		}
	}

	for _, op := range formula.Priority {
		if e.Len() == 1 {
			break
		}
		for p := 1; p < e.Len()-1; {
			if !e.Terms[p].IsOperator(op) {
				p++
				continue
			}
			lhs, err := i.resolve(ast, e, p-1)
			if err != nil {
				return err
			}
			rhs, err := i.resolve(ast, e, p+1)
			if err != nil {
				return err
			}
			v, err := Apply(op, lhs, rhs)
			if err != nil {
				return err
			}
			// The next occurrence of op, if any, moves to p.
			e.Replace(p-1, p+1, formula.MemoTerm(i.memo.Store(v)))
		}
	}

	if e.Len() != 1 {
		return fmt.Errorf("%w: %v: an expression remains with %v terms", ErrInconsistent, ast.Text, e.Len())
	}
	return nil
}

// resolve returns the vector of the term at idx. A reference is replaced with the term
// it points to.
func (i *Interpreter) resolve(ast *formula.AST, e *formula.Expression, idx int) (Vector, error) {
	t := e.Terms[idx]
	for hops := 0; t.Kind == formula.TermReference; hops++ {
		if hops >= len(ast.Scopes) {
			return Vector{}, fmt.Errorf("%w: %v: a reference chain does not terminate", ErrInconsistent, ast.Text)
		}
		target := ast.Expression(t.Scope, t.Expression)
		if target == nil || target.Len() != 1 {
			return Vector{}, fmt.Errorf("%w: %v: reference %v does not point to a reduced expression", ErrInconsistent, ast.Text, t)
		}
		t = target.Terms[0]
	}
	e.Terms[idx] = t

	switch t.Kind {
	case formula.TermVariable:
		if t.Variable < 0 || t.Variable >= len(i.variables) {
			return Vector{}, fmt.Errorf("%w: %v: variable %v has no column", ErrInconsistent, ast.Text, t.Name)
		}
		return i.variables[t.Variable], nil
	case formula.TermLiteral:
		return i.literal(t.Value), nil
	case formula.TermMemo:
		v, ok := i.memo.Load(t.Memo)
		if !ok {
			return Vector{}, fmt.Errorf("%w: %v: memo %v is missing", ErrInconsistent, ast.Text, t)
		}
		return v, nil
	}
	return Vector{}, fmt.Errorf("%w: %v: %v is not an operand", ErrInconsistent, ast.Text, t)
}

func (i *Interpreter) literal(v bool) Vector {
	if v {
		i.onesOnce.Do(func() {
			i.ones = Constant(i.size, true)
		})
		return i.ones
	}
	i.zerosOnce.Do(func() {
		i.zeros = Constant(i.size, false)
	})
	return i.zeros
}
