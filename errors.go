package stepseries

import "errors"

// ErrInvalidInput is returned when an operation's input violates a
// precondition: an unsorted series, a non-positive max delta, or a window
// whose start is after its end. Returned errors wrap this sentinel, match
// with errors.Is.
var ErrInvalidInput = errors.New("invalid input")
