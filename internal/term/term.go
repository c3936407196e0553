// Package term defines the expression tree the abstract machine reduces.
package term

import (
	"fmt"
	"strconv"

	"github.com/funvibe/gradual/internal/label"
)

// Ident names a binding.
type Ident string

// Term is the interface for all expression forms.
type Term interface {
	String() string
	termNode()
}

// Type is a static type annotation that can be expanded into a contract.
// Contract must return a closed term taking a label and then a value.
type Type interface {
	Contract() Term
	String() string
	// EqualType reports whether other is structurally the same type.
	EqualType(other Type) bool
}

// Num is a numeric literal.
type Num struct {
	Value float64
}

func (n *Num) termNode()      {}
func (n *Num) String() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }

// Bool is a boolean literal.
type Bool struct {
	Value bool
}

func (b *Bool) termNode()      {}
func (b *Bool) String() string { return strconv.FormatBool(b.Value) }

// Lbl is a label used as a first class value by contract code.
type Lbl struct {
	Label label.Label
}

func (l *Lbl) termNode()      {}
func (l *Lbl) String() string { return fmt.Sprintf("<%s>", l.Label.String()) }

// Var references a binding introduced by Let or Fun.
type Var struct {
	Name Ident
}

func (v *Var) termNode()      {}
func (v *Var) String() string { return string(v.Name) }

// Fun is a one argument function literal.
type Fun struct {
	Param Ident
	Body  Term
}

func (f *Fun) termNode() {}
func (f *Fun) String() string {
	return fmt.Sprintf("fun %s -> %s", f.Param, f.Body.String())
}

// Let binds Name to Bound (lazily) inside Body. Bound does not see Name.
type Let struct {
	Name  Ident
	Bound Term
	Body  Term
}

func (l *Let) termNode() {}
func (l *Let) String() string {
	return fmt.Sprintf("let %s = %s in %s", l.Name, l.Bound.String(), l.Body.String())
}

// App applies Fn to Arg.
type App struct {
	Fn  Term
	Arg Term
}

func (a *App) termNode() {}
func (a *App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fn.String(), a.Arg.String())
}

// Op1 applies a unary primitive.
type Op1 struct {
	Op      UnaryOp
	Operand Term
}

func (o *Op1) termNode() {}
func (o *Op1) String() string {
	return fmt.Sprintf("%s(%s)", o.Op.String(), o.Operand.String())
}

// Op2 applies a binary primitive. Fst is evaluated before Snd.
type Op2 struct {
	Op  BinaryOp
	Fst Term
	Snd Term
}

func (o *Op2) termNode() {}
func (o *Op2) String() string {
	return fmt.Sprintf("(%s %s %s)", o.Fst.String(), o.Op.String(), o.Snd.String())
}

// Promise checks that Term satisfies Type, blaming Label otherwise.
type Promise struct {
	Type  Type
	Label label.Label
	Term  Term
}

func (p *Promise) termNode() {}
func (p *Promise) String() string {
	return fmt.Sprintf("promise(%s, %s)", p.Type.String(), p.Term.String())
}

// Assume coerces Term to Type through the same contract machinery as Promise.
type Assume struct {
	Type  Type
	Label label.Label
	Term  Term
}

func (a *Assume) termNode() {}
func (a *Assume) String() string {
	return fmt.Sprintf("assume(%s, %s)", a.Type.String(), a.Term.String())
}

// IsValue reports whether t is already in weak head normal form and needs no
// further reduction to be shared.
func IsValue(t Term) bool {
	switch t.(type) {
	case *Num, *Bool, *Lbl, *Fun:
		return true
	}
	return false
}
