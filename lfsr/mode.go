package lfsr

import "fmt"

// FeedbackMode selects how the feedback taps are applied to the shift
// register.
type FeedbackMode int

const (
	// Fibonacci mode XORs the tapped register bits together and
	// shifts the result in as the new input bit.
	Fibonacci FeedbackMode = iota
	// Galois mode XORs the output bit into each tapped position
	// during the shift. The mode is declared but its transition
	// construction is not implemented: every Galois operation fails
	// with NotImplementedError.
	Galois
)

func (m FeedbackMode) String() string {
	switch m {
	case Fibonacci:
		return "Fibonacci"
	case Galois:
		return "Galois"
	default:
		return fmt.Sprintf("FeedbackMode(%d)", int(m))
	}
}
