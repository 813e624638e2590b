package engine

import "errors"

// Sentinel errors. Callers match with errors.Is; none of them leaves a
// component in a changed state.
var (
	ErrInvalidIndex      = errors.New("invalid draw index")
	ErrInvalidIdentifier = errors.New("invalid card identifier")
	ErrDeckExhausted     = errors.New("deck exhausted")
	ErrInvalidMove       = errors.New("invalid peg move")
	ErrHandFull          = errors.New("hand is full")
	ErrCardNotHeld       = errors.New("card not in hand")
)
