package truth

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/nihei9/truthtable/formula"
)

const wordSize = 64

// Vector is a column of truth values, one per row, packed 64 rows per word.
// Vectors are immutable; every operation returns a new vector.
type Vector struct {
	size  int
	words []uint64
}

func newVector(size int) Vector {
	return Vector{
		size:  size,
		words: make([]uint64, (size+wordSize-1)/wordSize),
	}
}

// Constant returns a vector of size rows all holding v.
func Constant(size int, v bool) Vector {
	c := newVector(size)
	if v {
		for i := range c.words {
			c.words[i] = ^uint64(0)
		}
		c.clearTail()
	}
	return c
}

// ParseVector reads a string of 0s and 1s, e.g. "0011".
func ParseVector(s string) (Vector, error) {
	v := newVector(len(s))
	for i, c := range s {
		switch c {
		case '0':
		case '1':
			v.set(i)
		default:
			return Vector{}, fmt.Errorf("a truth vector can contain only 0 and 1: %q", s)
		}
	}
	return v, nil
}

func (v Vector) Len() int {
	return v.size
}

func (v Vector) At(row int) bool {
	return v.words[row/wordSize]&(1<<(uint(row)%wordSize)) != 0
}

func (v Vector) set(row int) {
	v.words[row/wordSize] |= 1 << (uint(row) % wordSize)
}

// clearTail zeroes the bits beyond size so that Equal and Count can compare whole words.
func (v Vector) clearTail() {
	if r := v.size % wordSize; r != 0 {
		v.words[len(v.words)-1] &= (1 << uint(r)) - 1
	}
}

// Count returns the number of rows holding 1.
func (v Vector) Count() int {
	n := 0
	for _, w := range v.words {
		n += bits.OnesCount64(w)
	}
	return n
}

func (v Vector) Equal(w Vector) bool {
	if v.size != w.size {
		return false
	}
	for i := range v.words {
		if v.words[i] != w.words[i] {
			return false
		}
	}
	return true
}

// Values returns the rows as 0s and 1s.
func (v Vector) Values() []int {
	vals := make([]int, v.size)
	for i := range vals {
		if v.At(i) {
			vals[i] = 1
		}
	}
	return vals
}

func (v Vector) String() string {
	var b strings.Builder
	for i := 0; i < v.size; i++ {
		if v.At(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func (v Vector) Not() Vector {
	r := newVector(v.size)
	for i, w := range v.words {
		r.words[i] = ^w
	}
	r.clearTail()
	return r
}

func (v Vector) And(w Vector) Vector {
	return v.zip(w, func(a, b uint64) uint64 { return a & b })
}

func (v Vector) Or(w Vector) Vector {
	return v.zip(w, func(a, b uint64) uint64 { return a | b })
}

func (v Vector) Xor(w Vector) Vector {
	return v.zip(w, func(a, b uint64) uint64 { return a ^ b })
}

func (v Vector) zip(w Vector, f func(a, b uint64) uint64) Vector {
	r := newVector(v.size)
	for i := range r.words {
		r.words[i] = f(v.words[i], w.words[i])
	}
	r.clearTail()
	return r
}

// Apply computes a binary operator row by row.
func Apply(op formula.Operator, a, b Vector) (Vector, error) {
	if a.size != b.size {
		return Vector{}, fmt.Errorf("%w: operands of %v have different sizes: %v and %v", ErrInconsistent, op, a.size, b.size)
	}
	switch op {
	case formula.OpAnd:
		return a.And(b), nil
	case formula.OpOr:
		return a.Or(b), nil
	case formula.OpXor:
		return a.Xor(b), nil
	case formula.OpNand:
		return a.And(b).Not(), nil
	case formula.OpNor:
		return a.Or(b).Not(), nil
	case formula.OpXnor:
		return a.Xor(b).Not(), nil
	}
	return Vector{}, fmt.Errorf("%w: %v is not a binary operator", ErrInconsistent, op)
}
