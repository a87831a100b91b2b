package formula

// Registry holds the distinct variable names of a run in order of first appearance.
// Index i of a variable is the i-th discovered name; the row enumerator depends on it.
type Registry struct {
	names []string
	index map[string]int
}

func NewRegistry() *Registry {
	return &Registry{
		index: map[string]int{},
	}
}

// Register returns the index of name, registering it when it is new.
func (r *Registry) Register(name string) int {
	if i, ok := r.index[name]; ok {
		return i
	}
	i := len(r.names)
	r.names = append(r.names, name)
	r.index[name] = i
	return i
}

func (r *Registry) Lookup(name string) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

func (r *Registry) Len() int {
	return len(r.names)
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}
