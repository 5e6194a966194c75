// Package randgen supplies the small seeded-random primitives property
// tests elsewhere compose into random generators and generator paths,
// seeded the way the teacher seeds its own random-prefix generators: a
// caller-supplied *rand.Rand(rand.NewPCG(...)) for reproducibility. It
// stays deliberately primitive (no Clifford-domain types) to avoid an
// import cycle with the packages whose tests consume it.
package randgen

import "math/rand/v2"

// RandomQubitPair returns two distinct qubit indices in [0, n).
func RandomQubitPair(prng *rand.Rand, n int) (a, b int) {
	a = prng.IntN(n)
	b = prng.IntN(n - 1)
	if b >= a {
		b++
	}
	return a, b
}

// RandomOp returns a uniformly random single-qubit op index in [0, 3).
func RandomOp(prng *rand.Rand) int { return prng.IntN(3) }
