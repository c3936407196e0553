package term

import "github.com/funvibe/gradual/internal/label"

// Equal compares two terms structurally. Bound names must match exactly;
// there is no alpha-equivalence.
func Equal(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case *Num:
		bv, ok := b.(*Num)
		return ok && av.Value == bv.Value
	case *Bool:
		bv, ok := b.(*Bool)
		return ok && av.Value == bv.Value
	case *Lbl:
		bv, ok := b.(*Lbl)
		return ok && label.Equal(av.Label, bv.Label)
	case *Var:
		bv, ok := b.(*Var)
		return ok && av.Name == bv.Name
	case *Fun:
		bv, ok := b.(*Fun)
		return ok && av.Param == bv.Param && Equal(av.Body, bv.Body)
	case *Let:
		bv, ok := b.(*Let)
		return ok && av.Name == bv.Name && Equal(av.Bound, bv.Bound) && Equal(av.Body, bv.Body)
	case *App:
		bv, ok := b.(*App)
		return ok && Equal(av.Fn, bv.Fn) && Equal(av.Arg, bv.Arg)
	case *Op1:
		bv, ok := b.(*Op1)
		return ok && av.Op == bv.Op && Equal(av.Operand, bv.Operand)
	case *Op2:
		bv, ok := b.(*Op2)
		return ok && av.Op == bv.Op && Equal(av.Fst, bv.Fst) && Equal(av.Snd, bv.Snd)
	case *Promise:
		bv, ok := b.(*Promise)
		return ok && typesEqual(av.Type, bv.Type) && label.Equal(av.Label, bv.Label) && Equal(av.Term, bv.Term)
	case *Assume:
		bv, ok := b.(*Assume)
		return ok && typesEqual(av.Type, bv.Type) && label.Equal(av.Label, bv.Label) && Equal(av.Term, bv.Term)
	}
	return false
}

func typesEqual(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.EqualType(b)
}
