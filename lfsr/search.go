package lfsr

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/pshatov/lfsr-template/gf2"
)

// RNGSeed is the fixed seed for the search PRNG. Runs with identical
// inputs draw identical candidate sequences; the search is
// reproducible, not random.
const RNGSeed = 1

// DefaultMaxAttempts is the attempt cap used when a Searcher is
// created with maxAttempts 0. Primitive polynomials get sparser as
// width grows, so very wide searches legitimately take many draws.
const DefaultMaxAttempts = 1 << 20

// SearchExhaustedError indicates that a search hit its attempt cap
// without finding an acceptable candidate.
type SearchExhaustedError struct {
	Attempts int
}

func (e SearchExhaustedError) Error() string {
	return fmt.Sprintf("no acceptable candidate found after %d attempts", e.Attempts)
}

// SearchDelegate holds methods that are called for every random draw
// during a search.
type SearchDelegate interface {
	OnInitialStateDraw(value *big.Int)
	OnPolynomialDraw(value *big.Int)
}

// DoNothingSearchDelegate is a SearchDelegate that does nothing.
type DoNothingSearchDelegate struct{}

// OnInitialStateDraw does nothing.
func (DoNothingSearchDelegate) OnInitialStateDraw(value *big.Int) {}

// OnPolynomialDraw does nothing.
func (DoNothingSearchDelegate) OnPolynomialDraw(value *big.Int) {}

// A Searcher draws random LFSR configurations and certifies them
// until one is acceptable. Each search is bounded by an explicit
// attempt cap so worst-case latency stays under caller control.
type Searcher struct {
	rng         *rand.Rand
	maxAttempts int
	delegate    SearchDelegate
}

// NewSearcher returns a Searcher seeded with RNGSeed. maxAttempts
// caps each search; pass 0 for DefaultMaxAttempts. delegate may be
// nil.
func NewSearcher(maxAttempts int, delegate SearchDelegate) *Searcher {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if delegate == nil {
		delegate = DoNothingSearchDelegate{}
	}
	return &Searcher{rand.New(rand.NewSource(RNGSeed)), maxAttempts, delegate}
}

func (s *Searcher) randomBits(width int) *big.Int {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(width))
	return new(big.Int).Rand(s.rng, limit)
}

// RandomInitialState draws uniformly random width-bit values until
// one passes ValidateInitialState. At most one bit pattern is
// excluded per mode, so prohibited draws are retried silently and the
// first draw almost always succeeds.
func (s *Searcher) RandomInitialState(mode FeedbackMode, width int) (*big.Int, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		init := s.randomBits(width)
		s.delegate.OnInitialStateDraw(init)
		if ValidateInitialState(mode, init, width) == nil {
			return init, nil
		}
	}
	return nil, SearchExhaustedError{Attempts: s.maxAttempts}
}

// SearchPolynomial draws uniformly random width-bit polynomials until
// one both passes ValidatePolynomial and is certified maximum length
// with the given 1 x width initial state. The expected number of
// draws is inversely proportional to the density of primitive
// polynomials of that width.
func (s *Searcher) SearchPolynomial(mode FeedbackMode, width int, init gf2.Matrix) (gf2.Matrix, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		value := s.randomBits(width)
		s.delegate.OnPolynomialDraw(value)

		poly := RowFromInt(value, width)
		if ValidatePolynomial(poly, width) != nil {
			continue
		}

		err := CertifyMaxLength(mode, poly, width, init, nil)
		if err == nil {
			return poly, nil
		}
		var notImplemented NotImplementedError
		if errors.As(err, &notImplemented) {
			// Retrying cannot help.
			return gf2.Matrix{}, err
		}
	}
	return gf2.Matrix{}, SearchExhaustedError{Attempts: s.maxAttempts}
}
