package model

import "fmt"

// MalformedGraphError is fatal (§7): an expression has a nil functor, its
// args disagree with the functor's declared arity, an arg is neither an
// entity nor an expression, or the expression set contains a cycle.
type MalformedGraphError struct {
	Reason       string
	ExpressionID string
}

func (e *MalformedGraphError) Error() string {
	return fmt.Sprintf("malformed graph: %s (expression %s)", e.Reason, e.ExpressionID)
}
