// Package evaluator implements a call-by-need abstract machine that reduces
// terms to weak head normal form and reports contract violations as blame.
//
// The machine state is a closure and an explicit control stack. Each loop
// iteration applies exactly one transition, chosen in a fixed order: the
// structural rules for variables, applications, lets, primitives and
// contracts first, then updating shared thunks, then resolving operation
// continuations, then calling a function, and finally halting.
package evaluator

import (
	"github.com/funvibe/gradual/internal/label"
	"github.com/funvibe/gradual/internal/term"
)

// Stats counts what a single evaluation did.
type Stats struct {
	Steps          int // Loop iterations, including the final one
	Forces         int // Variable lookups
	ThunksCreated  int // Bindings introduced by let and calls
	UpdatesWritten int // Thunks overwritten with their value
	UpdatesSkipped int // Update markers whose thunk was already collected
	Continuations  int // Operation continuations resolved
	Calls          int // Arguments bound to function parameters
}

// Evaluator runs the machine. Its globals persist across evaluations.
type Evaluator struct {
	// Resolver completes primitive operations. Defaults to Primitives.
	Resolver Resolver
	// Globals is the initial environment. Bind extends it.
	Globals *Environment
	// Tracer, if set, logs every transition.
	Tracer *Tracer

	stats Stats
}

// New returns an evaluator with the built-in primitives and no globals.
func New() *Evaluator {
	return &Evaluator{
		Resolver: Primitives{},
		Globals:  EmptyEnvironment(),
	}
}

// Eval reduces t0 under an empty environment with the built-in primitives.
func Eval(t0 term.Term) (term.Term, error) {
	return New().Eval(t0)
}

// Bind makes name available to every later evaluation. The bound term is
// evaluated lazily, at most once, under the globals present before this call.
func (e *Evaluator) Bind(name term.Ident, t term.Term) {
	globals := e.globals()
	e.Globals = globals.Extend(name, NewThunk(NewClosure(t, globals)))
}

// Lookup returns the thunk bound to a global name.
func (e *Evaluator) Lookup(name term.Ident) (*Thunk, bool) {
	return e.globals().Lookup(name)
}

// Stats returns the counters of the most recent evaluation.
func (e *Evaluator) Stats() Stats {
	return e.stats
}

func (e *Evaluator) globals() *Environment {
	if e.Globals == nil {
		return EmptyEnvironment()
	}
	return e.Globals
}

// Eval reduces t0 to weak head normal form. It fails with *BlameError,
// *TypeError or *UnboundIdentifierError; any failure discards the whole
// machine state.
func (e *Evaluator) Eval(t0 term.Term) (term.Term, error) {
	return e.run(NewClosure(t0, e.globals()), NewStack())
}

func (e *Evaluator) run(clos Closure, stack *Stack) (term.Term, error) {
	resolver := e.Resolver
	if resolver == nil {
		resolver = Primitives{}
	}
	e.stats = Stats{}
	tr := e.Tracer.begin(clos.Body)

	for {
		e.stats.Steps++

		switch body := clos.Body.(type) {
		case *term.Var:
			tr.rule(e.stats.Steps, ruleVar, clos, stack)
			th, ok := clos.Env.Lookup(body.Name)
			if !ok {
				// A free variable ends this evaluation with a typed error; the
				// process and other evaluations are unaffected.
				err := NewUnboundIdentifierError(body.Name)
				tr.fail(e.stats.Steps, err)
				return nil, err
			}
			e.stats.Forces++
			if !th.Evaluated() {
				stack.PushThunk(th)
			}
			clos = th.Closure()
			continue

		case *term.App:
			tr.rule(e.stats.Steps, ruleApp, clos, stack)
			// Call-by-need: the argument is suspended, not evaluated.
			stack.PushArg(Closure{Body: body.Arg, Env: clos.Env})
			clos = Closure{Body: body.Fn, Env: clos.Env}
			continue

		case *term.Let:
			tr.rule(e.stats.Steps, ruleLet, clos, stack)
			// The bound term sees the environment from before the extension.
			th := e.newThunk(Closure{Body: body.Bound, Env: clos.Env})
			clos = Closure{Body: body.Body, Env: clos.Env.Extend(body.Name, th)}
			continue

		case *term.Op1:
			tr.rule(e.stats.Steps, ruleOp1, clos, stack)
			stack.PushCont(Op1Cont{Op: body.Op})
			clos = Closure{Body: body.Operand, Env: clos.Env}
			continue

		case *term.Op2:
			tr.rule(e.stats.Steps, ruleOp2, clos, stack)
			stack.PushCont(Op2FirstCont{Op: body.Op, Snd: Closure{Body: body.Snd, Env: clos.Env}})
			clos = Closure{Body: body.Fst, Env: clos.Env}
			continue

		case *term.Promise:
			tr.rule(e.stats.Steps, rulePromise, clos, stack)
			clos = attachContract(body.Type, body.Label, body.Term, clos.Env, stack)
			continue

		case *term.Assume:
			tr.rule(e.stats.Steps, ruleAssume, clos, stack)
			clos = attachContract(body.Type, body.Label, body.Term, clos.Env, stack)
			continue
		}

		switch {
		case stack.topIs(thunkFrame):
			tr.rule(e.stats.Steps, ruleUpdate, clos, stack)
			for {
				th, ok := stack.PopThunk()
				if !ok {
					break
				}
				if th == nil {
					e.stats.UpdatesSkipped++
					continue
				}
				th.update(clos)
				e.stats.UpdatesWritten++
			}

		case stack.topIs(contFrame):
			tr.rule(e.stats.Steps, ruleCont, clos, stack)
			cont, _ := stack.PopCont()
			e.stats.Continuations++
			next, err := resolver.Resolve(cont, clos, stack)
			if err != nil {
				tr.fail(e.stats.Steps, err)
				return nil, err
			}
			clos = next

		default:
			fun, ok := clos.Body.(*term.Fun)
			if !ok || !stack.topIs(argFrame) {
				tr.done(e.stats.Steps, clos)
				return clos.Body, nil
			}
			tr.rule(e.stats.Steps, ruleCall, clos, stack)
			arg, _ := stack.PopArg()
			e.stats.Calls++
			// Parameters extend the function's own environment, never the caller's.
			th := e.newThunk(arg)
			clos = Closure{Body: fun.Body, Env: clos.Env.Extend(fun.Param, th)}
		}
	}
}

func (e *Evaluator) newThunk(c Closure) *Thunk {
	e.stats.ThunksCreated++
	return NewThunk(c)
}

// attachContract turns promise/assume into an ordinary call of the type's
// contract: first to the label, then to the checked term.
func attachContract(ty term.Type, l label.Label, t term.Term, env *Environment, stack *Stack) Closure {
	stack.PushArg(Closure{Body: t, Env: env})
	stack.PushArg(AtomicClosure(term.NewLbl(l)))
	return Closure{Body: ty.Contract(), Env: env}
}
