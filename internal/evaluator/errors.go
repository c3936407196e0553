package evaluator

import (
	"fmt"

	"github.com/funvibe/gradual/internal/label"
	"github.com/funvibe/gradual/internal/term"
)

// BlameError reports a violated contract. Label identifies the contract and
// the party at fault.
type BlameError struct {
	Label label.Label
}

func (e *BlameError) Error() string {
	return fmt.Sprintf("contract violation: %s", e.Label.String())
}

func NewBlameError(l label.Label) *BlameError {
	return &BlameError{Label: l}
}

// TypeError reports a primitive applied to an operand of the wrong shape.
type TypeError struct {
	Message string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error: %s", e.Message)
}

func NewTypeError(format string, args ...interface{}) *TypeError {
	return &TypeError{Message: fmt.Sprintf(format, args...)}
}

// UnboundIdentifierError reports a variable with no binding in scope.
type UnboundIdentifierError struct {
	Ident term.Ident
}

func (e *UnboundIdentifierError) Error() string {
	return fmt.Sprintf("unbound identifier: %s", e.Ident)
}

func NewUnboundIdentifierError(ident term.Ident) *UnboundIdentifierError {
	return &UnboundIdentifierError{Ident: ident}
}
