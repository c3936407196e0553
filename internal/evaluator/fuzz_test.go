package evaluator

import (
	"errors"
	"testing"

	"github.com/funvibe/gradual/internal/term"
)

// FuzzEval checks that arbitrary terms either reduce or fail with one of the
// machine's typed errors, and never panic.
func FuzzEval(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("let x = 1 in x"))
	f.Add([]byte{5, 0, 4, 9, 1, 3, 2, 7, 7, 7})
	f.Add([]byte{2, 4, 0, 3, 1, 1, 6, 2, 5})

	f.Fuzz(func(t *testing.T, data []byte) {
		t0 := newTermGeneratorFromData(data).Any(maxGenDepth)

		got, err := Eval(t0)
		if err != nil {
			var blame *BlameError
			var typeErr *TypeError
			var unbound *UnboundIdentifierError
			if !errors.As(err, &blame) && !errors.As(err, &typeErr) && !errors.As(err, &unbound) {
				t.Fatalf("Eval(%s) returned an unexpected error %T: %v", t0, err, err)
			}
			return
		}
		if !term.IsValue(got) {
			t.Fatalf("Eval(%s) = %s, which is not a value", t0, got)
		}
	})
}
