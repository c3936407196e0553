package term

import "github.com/funvibe/gradual/internal/label"

// Builders for the shapes contract code and tests construct most often.

func NewNum(v float64) *Num     { return &Num{Value: v} }
func NewBool(v bool) *Bool      { return &Bool{Value: v} }
func NewVar(name Ident) *Var    { return &Var{Name: name} }
func NewLbl(l label.Label) *Lbl { return &Lbl{Label: l} }

func NewFun(param Ident, body Term) *Fun {
	return &Fun{Param: param, Body: body}
}

func NewLet(name Ident, bound, body Term) *Let {
	return &Let{Name: name, Bound: bound, Body: body}
}

// NewApp applies fn to each argument in turn: NewApp(f, a, b) is ((f a) b).
func NewApp(fn Term, args ...Term) Term {
	result := fn
	for _, arg := range args {
		result = &App{Fn: result, Arg: arg}
	}
	return result
}

func NewOp1(op UnaryKind, operand Term) *Op1 {
	return &Op1{Op: Unary(op), Operand: operand}
}

func NewOp2(op BinaryOp, fst, snd Term) *Op2 {
	return &Op2{Op: op, Fst: fst, Snd: snd}
}

// NewIte builds if-then-else out of the Ite primitive: the condition is the
// operand and both branches are pending arguments.
func NewIte(cond, then, els Term) Term {
	return NewApp(NewOp1(Ite, cond), then, els)
}

func NewPlus(fst, snd Term) *Op2 {
	return NewOp2(Plus, fst, snd)
}

func NewBlame(l Term) *Op1 {
	return NewOp1(Blame, l)
}

func NewPromise(ty Type, l label.Label, t Term) *Promise {
	return &Promise{Type: ty, Label: l, Term: t}
}

func NewAssume(ty Type, l label.Label, t Term) *Assume {
	return &Assume{Type: ty, Label: l, Term: t}
}
