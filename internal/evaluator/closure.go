package evaluator

import "github.com/funvibe/gradual/internal/term"

// Closure pairs a term with the bindings needed to evaluate it.
type Closure struct {
	Body term.Term
	Env  *Environment
}

func NewClosure(body term.Term, env *Environment) Closure {
	if env == nil {
		env = EmptyEnvironment()
	}
	return Closure{Body: body, Env: env}
}

// AtomicClosure wraps a term with no free variables.
func AtomicClosure(body term.Term) Closure {
	return Closure{Body: body, Env: EmptyEnvironment()}
}
