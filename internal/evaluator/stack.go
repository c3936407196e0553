package evaluator

import "weak"

type frameKind uint8

const (
	argFrame frameKind = iota
	contFrame
	thunkFrame
)

func (k frameKind) String() string {
	switch k {
	case argFrame:
		return "arg"
	case contFrame:
		return "cont"
	case thunkFrame:
		return "update"
	}
	return "?"
}

type frame struct {
	kind  frameKind
	arg   Closure
	cont  OperationCont
	thunk weak.Pointer[Thunk]
}

// Stack is the machine's control stack. It holds three kinds of frames in a
// single ordered sequence: pending call arguments, operation continuations
// and update markers. A frame is only actionable while it sits on top, so
// counts and pops look at the run of same-kind frames at the top and never
// reach past a frame of another kind.
type Stack struct {
	frames []frame
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Len returns the total number of frames of every kind.
func (s *Stack) Len() int {
	return len(s.frames)
}

func (s *Stack) PushArg(c Closure) {
	s.frames = append(s.frames, frame{kind: argFrame, arg: c})
}

func (s *Stack) PushCont(c OperationCont) {
	s.frames = append(s.frames, frame{kind: contFrame, cont: c})
}

// PushThunk records an update marker for th without retaining it.
func (s *Stack) PushThunk(th *Thunk) {
	s.pushMarker(weak.Make(th))
}

func (s *Stack) pushMarker(wp weak.Pointer[Thunk]) {
	s.frames = append(s.frames, frame{kind: thunkFrame, thunk: wp})
}

// PopArg removes the top frame if it is an argument.
func (s *Stack) PopArg() (Closure, bool) {
	f, ok := s.pop(argFrame)
	return f.arg, ok
}

// PopCont removes the top frame if it is an operation continuation.
func (s *Stack) PopCont() (OperationCont, bool) {
	f, ok := s.pop(contFrame)
	return f.cont, ok
}

// PopThunk removes the top frame if it is an update marker. The returned
// thunk is nil when it has already been collected.
func (s *Stack) PopThunk() (*Thunk, bool) {
	f, ok := s.pop(thunkFrame)
	if !ok {
		return nil, false
	}
	return f.thunk.Value(), true
}

func (s *Stack) CountArgs() int   { return s.count(argFrame) }
func (s *Stack) CountConts() int  { return s.count(contFrame) }
func (s *Stack) CountThunks() int { return s.count(thunkFrame) }

func (s *Stack) top() (frameKind, bool) {
	if len(s.frames) == 0 {
		return 0, false
	}
	return s.frames[len(s.frames)-1].kind, true
}

func (s *Stack) topIs(kind frameKind) bool {
	k, ok := s.top()
	return ok && k == kind
}

func (s *Stack) count(kind frameKind) int {
	n := 0
	for i := len(s.frames) - 1; i >= 0 && s.frames[i].kind == kind; i-- {
		n++
	}
	return n
}

func (s *Stack) pop(kind frameKind) (frame, bool) {
	if !s.topIs(kind) {
		return frame{}, false
	}
	last := len(s.frames) - 1
	f := s.frames[last]
	s.frames[last] = frame{}
	s.frames = s.frames[:last]
	return f, true
}
