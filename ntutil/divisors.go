package ntutil

import (
	"math/big"
	"sort"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Number of Miller-Rabin rounds on top of the Baillie-PSW test. Exact
// for inputs below 2^64.
const primeTestRounds = 20

// primeFactors returns the prime factorization of n > 1, with
// multiplicity, in ascending order. It trial-divides, breaking out
// early once the remaining cofactor tests prime, so the cost is
// bounded by the second-largest prime factor rather than sqrt(n).
func primeFactors(n *big.Int) []*big.Int {
	if n.Cmp(one) <= 0 {
		panic("ntutil: primeFactors needs n > 1")
	}

	var factors []*big.Int
	rest := new(big.Int).Set(n)
	d := new(big.Int).Set(two)
	r := new(big.Int)
	for rest.Cmp(one) > 0 {
		if rest.ProbablyPrime(primeTestRounds) {
			factors = append(factors, new(big.Int).Set(rest))
			break
		}

		// Advance d to the smallest prime factor of rest. rest is
		// composite here, so a factor exists below sqrt(rest).
		for r.Rem(rest, d).Sign() != 0 {
			if d.Cmp(two) == 0 {
				d.SetInt64(3)
			} else {
				d.Add(d, two)
			}
		}

		for r.Rem(rest, d).Sign() == 0 {
			factors = append(factors, new(big.Int).Set(d))
			rest.Quo(rest, d)
		}
	}
	return factors
}

// ProperDivisors returns every divisor of n strictly between 1 and n,
// in ascending order. n must be greater than 1; for n prime the
// result is empty.
func ProperDivisors(n *big.Int) []*big.Int {
	divisors := []*big.Int{big.NewInt(1)}
	factors := primeFactors(n)
	for i := 0; i < len(factors); {
		p := factors[i]
		multiplicity := 0
		for i < len(factors) && factors[i].Cmp(p) == 0 {
			multiplicity++
			i++
		}

		withoutP := divisors
		pk := new(big.Int).Set(one)
		for k := 0; k < multiplicity; k++ {
			pk = new(big.Int).Mul(pk, p)
			for _, d := range withoutP {
				divisors = append(divisors, new(big.Int).Mul(d, pk))
			}
		}
	}

	sort.Slice(divisors, func(i, j int) bool {
		return divisors[i].Cmp(divisors[j]) < 0
	})
	return divisors[1 : len(divisors)-1]
}
