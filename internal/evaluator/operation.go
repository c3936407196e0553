package evaluator

import (
	"fmt"

	"github.com/funvibe/gradual/internal/term"
)

// OperationCont records what to do with a value once it is in weak head
// normal form.
type OperationCont interface {
	String() string
	contNode()
}

// Op1Cont applies a unary operator to the value.
type Op1Cont struct {
	Op term.UnaryOp
}

// Op2FirstCont holds the unevaluated second operand of a binary operator
// while the first one is reduced.
type Op2FirstCont struct {
	Op  term.BinaryOp
	Snd Closure
}

// Op2SecondCont holds the evaluated first operand while the second one is
// reduced.
type Op2SecondCont struct {
	Op  term.BinaryOp
	Fst Closure
}

func (Op1Cont) contNode()       {}
func (Op2FirstCont) contNode()  {}
func (Op2SecondCont) contNode() {}

func (c Op1Cont) String() string { return c.Op.String() }
func (c Op2FirstCont) String() string {
	return fmt.Sprintf("%s [_ %s]", c.Op.String(), c.Snd.Body.String())
}
func (c Op2SecondCont) String() string {
	return fmt.Sprintf("%s [%s _]", c.Op.String(), c.Fst.Body.String())
}

// Resolver completes a popped continuation with the value that triggered it
// and returns the closure to continue with. It may push frames on the stack
// to sequence further work.
type Resolver interface {
	Resolve(cont OperationCont, value Closure, stack *Stack) (Closure, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(cont OperationCont, value Closure, stack *Stack) (Closure, error)

func (f ResolverFunc) Resolve(cont OperationCont, value Closure, stack *Stack) (Closure, error) {
	return f(cont, value, stack)
}

// Primitives is the built-in resolver covering every term.UnaryOp and
// term.BinaryOp.
type Primitives struct{}

func (p Primitives) Resolve(cont OperationCont, value Closure, stack *Stack) (Closure, error) {
	switch c := cont.(type) {
	case Op1Cont:
		return p.unary(c.Op, value, stack)
	case Op2FirstCont:
		stack.PushCont(Op2SecondCont{Op: c.Op, Fst: value})
		return c.Snd, nil
	case Op2SecondCont:
		return p.binary(c.Op, c.Fst, value)
	}
	return Closure{}, NewTypeError("unknown continuation %T", cont)
}

func (p Primitives) unary(op term.UnaryOp, value Closure, stack *Stack) (Closure, error) {
	switch op.Kind {
	case term.Ite:
		b, ok := value.Body.(*term.Bool)
		if !ok {
			return Closure{}, NewTypeError("%s: expected Bool, got %s", op, value.Body)
		}
		if stack.CountArgs() < 2 {
			return Closure{}, NewTypeError("%s: expected two branches, got %d", op, stack.CountArgs())
		}
		then, _ := stack.PopArg()
		els, _ := stack.PopArg()
		if b.Value {
			return then, nil
		}
		return els, nil

	case term.IsZero:
		n, ok := value.Body.(*term.Num)
		if !ok {
			return Closure{}, NewTypeError("%s: expected Num, got %s", op, value.Body)
		}
		return boolClosure(n.Value == 0), nil

	case term.IsNum:
		_, ok := value.Body.(*term.Num)
		return boolClosure(ok), nil

	case term.IsBool:
		_, ok := value.Body.(*term.Bool)
		return boolClosure(ok), nil

	case term.IsFun:
		_, ok := value.Body.(*term.Fun)
		return boolClosure(ok), nil

	case term.Blame:
		l, ok := value.Body.(*term.Lbl)
		if !ok {
			return Closure{}, NewTypeError("%s: expected Label, got %s", op, value.Body)
		}
		return Closure{}, NewBlameError(l.Label)

	case term.ChangePolarity, term.GoDom, term.GoCodom, term.Tag:
		l, ok := value.Body.(*term.Lbl)
		if !ok {
			return Closure{}, NewTypeError("%s: expected Label, got %s", op, value.Body)
		}
		next := l.Label
		switch op.Kind {
		case term.ChangePolarity:
			next = next.WithPolarityFlipped()
		case term.GoDom:
			next = next.InDomain()
		case term.GoCodom:
			next = next.InCodomain()
		case term.Tag:
			next = next.WithTag(op.Text)
		}
		return AtomicClosure(term.NewLbl(next)), nil
	}
	return Closure{}, NewTypeError("unknown unary operator %s", op)
}

func (p Primitives) binary(op term.BinaryOp, fst, snd Closure) (Closure, error) {
	switch op {
	case term.Plus:
		a, ok := fst.Body.(*term.Num)
		if !ok {
			return Closure{}, NewTypeError("%s: expected Num, got %s", op, fst.Body)
		}
		b, ok := snd.Body.(*term.Num)
		if !ok {
			return Closure{}, NewTypeError("%s: expected Num, got %s", op, snd.Body)
		}
		return AtomicClosure(term.NewNum(a.Value + b.Value)), nil
	}
	return Closure{}, NewTypeError("unknown binary operator %s", op)
}

func boolClosure(b bool) Closure {
	return AtomicClosure(term.NewBool(b))
}
