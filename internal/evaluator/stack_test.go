package evaluator

import (
	"testing"
	"weak"

	"github.com/funvibe/gradual/internal/term"
)

func TestStackPopsOnlyFromTheTop(t *testing.T) {
	s := NewStack()
	th := thunkOf(1)

	s.PushArg(AtomicClosure(term.NewNum(1)))
	s.PushArg(AtomicClosure(term.NewNum(2)))
	s.PushCont(Op1Cont{Op: term.Unary(term.IsZero)})
	s.PushThunk(th)

	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
	if n := s.CountArgs(); n != 0 {
		t.Errorf("CountArgs() = %d with an update marker on top, want 0", n)
	}
	if _, ok := s.PopArg(); ok {
		t.Error("PopArg reached below the top frame")
	}
	if _, ok := s.PopCont(); ok {
		t.Error("PopCont reached below the top frame")
	}

	got, ok := s.PopThunk()
	if !ok || got != th {
		t.Fatalf("PopThunk() = %v, %v", got, ok)
	}
	cont, ok := s.PopCont()
	if !ok {
		t.Fatal("expected a continuation")
	}
	if c, isOp1 := cont.(Op1Cont); !isOp1 || c.Op.Kind != term.IsZero {
		t.Errorf("popped %v", cont)
	}

	if n := s.CountArgs(); n != 2 {
		t.Errorf("CountArgs() = %d, want 2", n)
	}
	second, _ := s.PopArg()
	first, _ := s.PopArg()
	if !term.Equal(second.Body, term.NewNum(2)) || !term.Equal(first.Body, term.NewNum(1)) {
		t.Errorf("arguments popped out of order: %s then %s", second.Body, first.Body)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after draining, want 0", s.Len())
	}
	if _, ok := s.PopArg(); ok {
		t.Error("PopArg on an empty stack succeeded")
	}
}

func TestStackCountsRuns(t *testing.T) {
	s := NewStack()
	s.PushThunk(thunkOf(1))
	s.PushArg(AtomicClosure(term.NewNum(1)))
	s.PushThunk(thunkOf(2))
	s.PushThunk(thunkOf(3))

	if n := s.CountThunks(); n != 2 {
		t.Errorf("CountThunks() = %d, want 2 (run at the top)", n)
	}
	if n := s.CountConts(); n != 0 {
		t.Errorf("CountConts() = %d, want 0", n)
	}
}

func TestStackCollectedMarker(t *testing.T) {
	s := NewStack()
	s.pushMarker(weak.Pointer[Thunk]{})

	th, ok := s.PopThunk()
	if !ok {
		t.Fatal("expected an update marker")
	}
	if th != nil {
		t.Errorf("collected marker returned %v, want nil", th)
	}
}
