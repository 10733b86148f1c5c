package ntutil

import "sort"

// mersennePrimeExponents lists, in order, the exponents p for which
// 2^p - 1 is a known Mersenne prime. See https://oeis.org/A000043.
var mersennePrimeExponents = []int{
	2, 3, 5, 7, 13, 17, 19, 31, 61, 89,
	107, 127, 521, 607, 1279, 2203, 2281, 3217, 4253, 4423,
	9689, 9941, 11213, 19937, 21701, 23209, 44497, 86243, 110503, 132049,
	216091, 756839, 859433, 1257787, 1398269, 2976221, 3021377, 6972593,
	13466917, 20996011, 24036583, 25964951, 30402457, 32582657, 37156667,
	42643801, 43112609, 57885161, 74207281, 77232917, 82589933, 136279841,
}

// IsMersennePrime reports whether 2^exponent - 1 is a known Mersenne
// prime, by lookup in the table of known Mersenne prime exponents.
func IsMersennePrime(exponent int) bool {
	i := sort.SearchInts(mersennePrimeExponents, exponent)
	return i < len(mersennePrimeExponents) && mersennePrimeExponents[i] == exponent
}
