package horn

import (
	"errors"
	"fmt"

	"github.com/ichiban/horn/term"
)

var (
	// ErrClosed is an error that signifies the solutions are already closed.
	ErrClosed = errors.New("solutions closed")

	// ErrNoSolutions is an error that signifies a query has no solutions.
	ErrNoSolutions = errors.New("no solutions")
)

// MalformedQueryError is an error that signifies a query which isn't a non-empty conjunction of compounds.
type MalformedQueryError struct {
	Goal term.Term
}

func (e *MalformedQueryError) Error() string {
	if e.Goal == nil {
		return "malformed query: no goals"
	}
	return fmt.Sprintf("malformed query: not a compound: %s", e.Goal)
}

// TypeError is an error that signifies an incorrect type.
type TypeError struct {
	ValidType string
	Culprit   term.Term
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("invalid type: expected %s, got %v", e.ValidType, e.Culprit)
}
