// Package types holds the static type annotations attached by Promise and
// Assume, and their expansion into executable contracts.
package types

import (
	"fmt"

	"github.com/funvibe/gradual/internal/config"
	"github.com/funvibe/gradual/internal/term"
)

// Types is a static type. It satisfies term.Type.
type Types interface {
	term.Type
	typeNode()
}

// Dyn accepts every value.
type Dyn struct{}

// Num accepts numbers.
type Num struct{}

// Bool accepts booleans.
type Bool struct{}

// Arrow accepts functions whose arguments satisfy Domain and whose results
// satisfy Codomain. Both sides are checked lazily, at each call.
type Arrow struct {
	Domain   Types
	Codomain Types
}

func (Dyn) typeNode()   {}
func (Num) typeNode()   {}
func (Bool) typeNode()  {}
func (Arrow) typeNode() {}

func (Dyn) String() string  { return config.DynTypeName }
func (Num) String() string  { return config.NumTypeName }
func (Bool) String() string { return config.BoolTypeName }
func (a Arrow) String() string {
	if _, ok := a.Domain.(Arrow); ok {
		return fmt.Sprintf("(%s) -> %s", a.Domain.String(), a.Codomain.String())
	}
	return fmt.Sprintf("%s -> %s", a.Domain.String(), a.Codomain.String())
}

const (
	lParam = term.Ident(config.ContractLabelParam)
	tParam = term.Ident(config.ContractValueParam)
	fParam = term.Ident(config.ContractFuncParam)
	xParam = term.Ident(config.ContractArgParam)
)

// Contract returns fun l -> fun t -> t.
func (Dyn) Contract() term.Term {
	return term.NewFun(lParam, term.NewFun(tParam, term.NewVar(tParam)))
}

// Contract returns fun l -> fun t -> if isNum t then t else blame l.
func (Num) Contract() term.Term {
	return flatContract(term.IsNum)
}

// Contract returns fun l -> fun t -> if isBool t then t else blame l.
func (Bool) Contract() term.Term {
	return flatContract(term.IsBool)
}

// Contract wraps the function so that its argument is checked against the
// domain with the polarity flipped and its result against the codomain:
//
//	fun l -> fun f -> fun x -> cod (goCodom l) (f (dom (chngPol (goDom l)) x))
func (a Arrow) Contract() term.Term {
	l := term.NewVar(lParam)
	domLabel := term.NewOp1(term.ChangePolarity, term.NewOp1(term.GoDom, l))
	codLabel := term.NewOp1(term.GoCodom, l)

	checkedArg := term.NewApp(a.Domain.Contract(), domLabel, term.NewVar(xParam))
	result := term.NewApp(term.NewVar(fParam), checkedArg)
	body := term.NewApp(a.Codomain.Contract(), codLabel, result)

	return term.NewFun(lParam, term.NewFun(fParam, term.NewFun(xParam, body)))
}

func flatContract(pred term.UnaryKind) term.Term {
	t := term.NewVar(tParam)
	check := term.NewIte(
		term.NewOp1(pred, t),
		t,
		term.NewBlame(term.NewVar(lParam)),
	)
	return term.NewFun(lParam, term.NewFun(tParam, check))
}

func (d Dyn) EqualType(other term.Type) bool   { return equalTo(d, other) }
func (n Num) EqualType(other term.Type) bool   { return equalTo(n, other) }
func (b Bool) EqualType(other term.Type) bool  { return equalTo(b, other) }
func (a Arrow) EqualType(other term.Type) bool { return equalTo(a, other) }

func equalTo(a Types, other term.Type) bool {
	b, ok := other.(Types)
	return ok && Equal(a, b)
}

// Equal compares two types structurally.
func Equal(a, b Types) bool {
	switch av := a.(type) {
	case Dyn:
		_, ok := b.(Dyn)
		return ok
	case Num:
		_, ok := b.(Num)
		return ok
	case Bool:
		_, ok := b.(Bool)
		return ok
	case Arrow:
		bv, ok := b.(Arrow)
		return ok && Equal(av.Domain, bv.Domain) && Equal(av.Codomain, bv.Codomain)
	}
	return false
}
