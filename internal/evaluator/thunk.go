package evaluator

import "github.com/funvibe/gradual/internal/term"

// Thunk is the shared cell behind one binding. It starts out holding the
// suspended computation and is overwritten with the value once the machine
// reaches it, so every alias observes the same result.
//
// The machine refers to a thunk strongly from environments and weakly from
// update markers; a marker never keeps a thunk alive.
type Thunk struct {
	closure Closure
}

func NewThunk(c Closure) *Thunk {
	return &Thunk{closure: c}
}

// Closure returns the current content. Closures are values, so the caller
// gets its own copy and the cell stays intact for other aliases.
func (t *Thunk) Closure() Closure {
	return t.closure
}

// Evaluated reports whether the content is already in weak head normal form.
func (t *Thunk) Evaluated() bool {
	return term.IsValue(t.closure.Body)
}

func (t *Thunk) update(c Closure) {
	t.closure = c
}
