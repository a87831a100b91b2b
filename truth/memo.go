package truth

import (
	"sync"

	"github.com/nihei9/truthtable/formula"
)

// Memo stores intermediate vectors under ids that are unique within a run.
// It is safe for concurrent use so that formulas can be interpreted in parallel.
type Memo struct {
	mu      sync.Mutex
	next    formula.MemoID
	vectors map[formula.MemoID]Vector
}

func NewMemo() *Memo {
	return &Memo{
		vectors: map[formula.MemoID]Vector{},
	}
}

func (m *Memo) Store(v Vector) formula.MemoID {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.next
	m.next++
	m.vectors[id] = v
	return id
}

func (m *Memo) Load(id formula.MemoID) (Vector, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vectors[id]
	return v, ok
}

func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.vectors)
}
