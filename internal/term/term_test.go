package term

import (
	"testing"

	"github.com/funvibe/gradual/internal/label"
)

func TestString(t *testing.T) {
	tests := []struct {
		term Term
		want string
	}{
		{NewNum(45.3), "45.3"},
		{NewNum(5), "5"},
		{NewBool(true), "true"},
		{NewFun("x", NewApp(NewVar("x"), NewVar("x"))), "fun x -> (x x)"},
		{NewLet("x", NewNum(5), NewVar("x")), "let x = 5 in x"},
		{NewPlus(NewNum(5), NewNum(7.5)), "(5 + 7.5)"},
		{NewOp1(IsZero, NewNum(7)), "isZero(7)"},
		{&Op1{Op: TagWith("ctx"), Operand: NewVar("l")}, `tag["ctx"](l)`},
	}
	for _, tt := range tests {
		if got := tt.term.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	lbl := label.New("testing", 0, 1)
	tests := []struct {
		name string
		a, b Term
		want bool
	}{
		{"same number", NewNum(1), NewNum(1), true},
		{"different number", NewNum(1), NewNum(2), false},
		{"number vs bool", NewNum(1), NewBool(true), false},
		{"same lambda", NewFun("x", NewVar("x")), NewFun("x", NewVar("x")), true},
		{"renamed lambda", NewFun("x", NewVar("x")), NewFun("y", NewVar("y")), false},
		{"same label", NewLbl(lbl), NewLbl(label.New("testing", 0, 1)), true},
		{"flipped label", NewLbl(lbl), NewLbl(lbl.WithPolarityFlipped()), false},
		{"tag text matters",
			&Op1{Op: TagWith("a"), Operand: NewVar("l")},
			&Op1{Op: TagWith("b"), Operand: NewVar("l")},
			false},
		{"ite", NewIte(NewBool(true), NewNum(5), NewBool(false)), NewIte(NewBool(true), NewNum(5), NewBool(false)), true},
		{"nil vs term", nil, NewNum(1), false},
		{"nil vs nil", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsValue(t *testing.T) {
	values := []Term{NewNum(0), NewBool(false), NewLbl(label.New("", 0, 0)), NewFun("x", NewVar("x"))}
	for _, v := range values {
		if !IsValue(v) {
			t.Errorf("IsValue(%s) = false, want true", v)
		}
	}
	nonValues := []Term{NewVar("x"), NewApp(NewVar("f"), NewNum(1)), NewLet("x", NewNum(1), NewVar("x")), NewPlus(NewNum(1), NewNum(2))}
	for _, v := range nonValues {
		if IsValue(v) {
			t.Errorf("IsValue(%s) = true, want false", v)
		}
	}
}

func TestNewAppIsLeftNested(t *testing.T) {
	got := NewApp(NewVar("f"), NewNum(1), NewNum(2))
	want := &App{Fn: &App{Fn: NewVar("f"), Arg: NewNum(1)}, Arg: NewNum(2)}
	if !Equal(got, want) {
		t.Errorf("NewApp = %s, want %s", got, want)
	}
}
