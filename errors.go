package pokercore

import "fmt"

// Error is a sentinel, comparable error.
type Error string

// Error satisfies the [error] interface.
func (err Error) Error() string {
	return string(err)
}

// Sentinel errors returned by the core.
const (
	// ErrInvalidCard is returned when a card string is not exactly two
	// characters long, and when marshaling [InvalidCard].
	ErrInvalidCard Error = "invalid card"
	// ErrInvalidValue is returned for an unrecognized card value rune.
	ErrInvalidValue Error = "invalid value"
	// ErrInvalidSuit is returned for an unrecognized card suit rune.
	ErrInvalidSuit Error = "invalid suit"
	// ErrEmptyDeck is returned when drawing from an empty deck.
	ErrEmptyDeck Error = "deck is empty"
	// ErrCardAbsent is returned when removing a card not present in a deck.
	ErrCardAbsent Error = "card not in deck"
	// ErrDuplicateCard names the condition of the same card appearing
	// twice. No function in this package returns it: [Hand.Push] does not
	// check for duplicates.
	ErrDuplicateCard Error = "duplicate card"
	// ErrUnknownToken is returned for an unrecognized range token.
	ErrUnknownToken Error = "unknown range token"
	// ErrBadSuffix is returned for a range token with an invalid suited/
	// offsuit suffix.
	ErrBadSuffix Error = "invalid suited/offsuit suffix"
	// ErrInconsistentRange is returned when a dash-range's endpoints do
	// not share the same kind (pair, suited, offsuit) or kicker structure.
	ErrInconsistentRange Error = "inconsistent range endpoints"
	// ErrOverlap is returned when an explicit hole-card set references
	// the same card twice.
	ErrOverlap Error = "overlapping card reference"
)

// CardParseError is a position-aware card parse error.
type CardParseError struct {
	S   string
	N   int
	I   int
	Err error
}

// Error satisfies the [error] interface.
func (err *CardParseError) Error() string {
	return fmt.Sprintf("parse card %q (token %d, pos %d): %v", err.S, err.N, err.I, err.Err)
}

// Unwrap satisfies the [errors.Unwrap] interface.
func (err *CardParseError) Unwrap() error {
	return err.Err
}

// RangeParseError is a range grammar parse error.
type RangeParseError struct {
	Token string
	Err   error
}

// Error satisfies the [error] interface.
func (err *RangeParseError) Error() string {
	return fmt.Sprintf("parse range token %q: %v", err.Token, err.Err)
}

// Unwrap satisfies the [errors.Unwrap] interface.
func (err *RangeParseError) Unwrap() error {
	return err.Err
}

// ArityError is returned by the validated evaluator entry points when a
// hand does not have the expected number of cards.
type ArityError struct {
	Want int
	Got  int
}

// Error satisfies the [error] interface.
func (err *ArityError) Error() string {
	return fmt.Sprintf("wrong arity: want %d cards, got %d", err.Want, err.Got)
}
