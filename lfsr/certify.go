package lfsr

import (
	"math/big"

	"github.com/pshatov/lfsr-template/gf2"
	"github.com/pshatov/lfsr-template/ntutil"
)

// CertifyDelegate holds methods that are called during a
// certification run. ok reports whether the check kept the
// configuration in the running: for the full-period check, that the
// state reproduced itself; for a sub-period check, that it did not.
type CertifyDelegate interface {
	OnFullPeriodCheck(period *big.Int, ok bool)
	OnPeriodPrime(period *big.Int)
	OnSubPeriodCheck(divisor *big.Int, ok bool)
}

// DoNothingCertifyDelegate is a CertifyDelegate that does nothing.
type DoNothingCertifyDelegate struct{}

// OnFullPeriodCheck does nothing.
func (DoNothingCertifyDelegate) OnFullPeriodCheck(period *big.Int, ok bool) {}

// OnPeriodPrime does nothing.
func (DoNothingCertifyDelegate) OnPeriodPrime(period *big.Int) {}

// OnSubPeriodCheck does nothing.
func (DoNothingCertifyDelegate) OnSubPeriodCheck(divisor *big.Int, ok bool) {}

// CertifyMaxLength determines whether the given configuration visits
// all 2^width - 1 admissible states before repeating, starting from
// the given 1 x width initial state. It returns nil on success and a
// NotMaxLengthError otherwise.
//
// The state is first fast-forwarded by the full period; if it does
// not reproduce itself the configuration cannot be maximum length. A
// match alone proves only that the true cycle length divides the
// period, so unless the period is a Mersenne prime every proper
// divisor of the period is checked the same way, and the first
// divisor that reproduces the initial state disproves maximum length.
// delegate may be nil.
func CertifyMaxLength(mode FeedbackMode, poly gf2.Matrix, width int, init gf2.Matrix, delegate CertifyDelegate) error {
	if delegate == nil {
		delegate = DoNothingCertifyDelegate{}
	}

	matrix, err := TransitionMatrix(mode, poly, width)
	if err != nil {
		return err
	}

	period := Period(width)
	last := Advance(matrix, init, period)
	ok := last.Equals(init)
	delegate.OnFullPeriodCheck(period, ok)
	if !ok {
		return NotMaxLengthError{}
	}

	if ntutil.IsMersennePrime(width) {
		// The period's only divisors are 1 and itself.
		delegate.OnPeriodPrime(period)
		return nil
	}

	for _, divisor := range ntutil.ProperDivisors(period) {
		last := Advance(matrix, init, divisor)
		matched := last.Equals(init)
		delegate.OnSubPeriodCheck(divisor, !matched)
		if matched {
			return NotMaxLengthError{Divisor: divisor}
		}
	}

	return nil
}
