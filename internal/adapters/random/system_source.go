package random

import "math/rand"

// Production implementation of the RandomSource port, backed by math/rand's
// auto-seeded global generator. The global generator is safe for concurrent
// use, which matters because one source is shared across requests.
type SystemSource struct{}

func (SystemSource) Float64() float64 { return rand.Float64() }

func (SystemSource) Intn(n int) int { return rand.Intn(n) }
