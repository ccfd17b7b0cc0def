package ports

// Contract for the randomness behind location synthesis and resolution.
// Satisfied by *math/rand.Rand, so tests can inject a fixed-seed source and
// reproduce exact draws.
type RandomSource interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
	// Intn returns a pseudo-random integer in [0, n).
	Intn(n int) int
}
