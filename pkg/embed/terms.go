package gradual

import (
	"github.com/funvibe/gradual/internal/config"
	"github.com/funvibe/gradual/internal/evaluator"
	"github.com/funvibe/gradual/internal/label"
	"github.com/funvibe/gradual/internal/term"
	"github.com/funvibe/gradual/internal/types"
)

// Term aliases
type Term = term.Term
type Ident = term.Ident
type Num = term.Num
type Bool = term.Bool
type Lbl = term.Lbl
type Var = term.Var
type Fun = term.Fun
type Let = term.Let
type App = term.App
type Op1 = term.Op1
type Op2 = term.Op2
type Promise = term.Promise
type Assume = term.Assume
type UnaryKind = term.UnaryKind

// Label aliases
type Label = label.Label

// Type aliases
type Type = types.Types
type Dyn = types.Dyn
type NumType = types.Num
type BoolType = types.Bool
type Arrow = types.Arrow

// Error aliases
type BlameError = evaluator.BlameError
type TypeError = evaluator.TypeError
type UnboundIdentifierError = evaluator.UnboundIdentifierError

// Stats is the set of counters from the latest evaluation.
type Stats = evaluator.Stats

// TraceConfig configures VM.SetTracer.
type TraceConfig = config.TraceConfig

// Unary operators
const (
	Ite            = term.Ite
	IsZero         = term.IsZero
	IsNum          = term.IsNum
	IsBool         = term.IsBool
	IsFun          = term.IsFun
	Blame          = term.Blame
	ChangePolarity = term.ChangePolarity
	GoDom          = term.GoDom
	GoCodom        = term.GoCodom
)

// Helpers for building terms

func NewLabel(tag string, l, r int) Label { return label.New(tag, l, r) }

func NewNum(v float64) *Num      { return term.NewNum(v) }
func NewBool(v bool) *Bool       { return term.NewBool(v) }
func NewVar(name string) *Var    { return term.NewVar(Ident(name)) }
func NewLbl(l Label) *Lbl        { return term.NewLbl(l) }
func NewPlus(fst, snd Term) Term { return term.NewPlus(fst, snd) }

func NewFun(param string, body Term) *Fun {
	return term.NewFun(Ident(param), body)
}

func NewLet(name string, bound, body Term) *Let {
	return term.NewLet(Ident(name), bound, body)
}

// NewApp applies fn to args from left to right.
func NewApp(fn Term, args ...Term) Term {
	return term.NewApp(fn, args...)
}

func NewOp1(op UnaryKind, operand Term) *Op1 {
	return term.NewOp1(op, operand)
}

func NewIte(cond, then, els Term) Term {
	return term.NewIte(cond, then, els)
}

// NewTag appends text to the tag of the label operand evaluates to.
func NewTag(text string, operand Term) *Op1 {
	return &term.Op1{Op: term.TagWith(text), Operand: operand}
}

func NewPromise(ty Type, l Label, t Term) *Promise {
	return term.NewPromise(ty, l, t)
}

func NewAssume(ty Type, l Label, t Term) *Assume {
	return term.NewAssume(ty, l, t)
}

// ArrowOf builds dom -> cod.
func ArrowOf(dom, cod Type) Arrow {
	return types.Arrow{Domain: dom, Codomain: cod}
}
