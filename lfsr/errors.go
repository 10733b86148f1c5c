package lfsr

import (
	"fmt"
	"math/big"
)

// ConfigError indicates an unusable configuration input: a width
// below MinWidth, a polynomial or initial value too wide for the
// register, or unparsable numeric input.
type ConfigError struct {
	Reason string
}

func (e ConfigError) Error() string { return e.Reason }

// InvalidPolynomialError indicates a polynomial that fails the
// structural checks of ValidatePolynomial.
type InvalidPolynomialError struct {
	Reason string
}

func (e InvalidPolynomialError) Error() string { return e.Reason }

// ProhibitedStateError indicates an initial state that is the fixed
// point of the given feedback mode and so can never cycle.
type ProhibitedStateError struct {
	Mode   FeedbackMode
	Reason string
}

func (e ProhibitedStateError) Error() string { return e.Reason }

// NotMaxLengthError indicates a configuration whose cycle is provably
// shorter than the full period 2^width - 1. Divisor is the sub-period
// that reproduced the initial state, or nil if the state failed to
// reproduce itself after the full period.
type NotMaxLengthError struct {
	Divisor *big.Int
}

func (e NotMaxLengthError) Error() string {
	if e.Divisor != nil {
		return fmt.Sprintf("value after sub-period %v matches initial value, not max length", e.Divisor)
	}
	return "value after full period doesn't match initial value, not max length"
}

// NotImplementedError indicates a requested Galois-mode operation.
// The error is fatal to the attempt and must never be downgraded to a
// no-op.
type NotImplementedError struct {
	Op string
}

func (e NotImplementedError) Error() string {
	return fmt.Sprintf("%s is not implemented for Galois mode", e.Op)
}
