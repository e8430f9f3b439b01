package purerand

import "math/rand/v2"

// source feeds one generation episode's internal word chain to the sampling
// layer. It intentionally bypasses the consumed check: the episode has
// already consumed the generator, and the sampling layer may need several
// words for one typed value (rejection sampling, shuffles).
type source struct {
	g *Generator
}

func (s source) Uint64() uint64 { return s.g.nextWord() }

// Rand consumes the generator and returns a *rand.Rand over its internal
// word chain, giving access to the full math/rand/v2 surface for one
// generation episode. Values drawn from it stay a pure function of the
// generator's label path; no new branches are created however many values
// are drawn.
func (g *Generator) Rand() *rand.Rand {
	g.consume()
	return rand.New(source{g})
}

// IntN returns a uniform int in [0, n), consuming the generator.
// It panics if n <= 0.
func (g *Generator) IntN(n int) int {
	return g.Rand().IntN(n)
}

// Int64N returns a uniform int64 in [0, n), consuming the generator.
// It panics if n <= 0.
func (g *Generator) Int64N(n int64) int64 {
	return g.Rand().Int64N(n)
}

// Uint64N returns a uniform uint64 in [0, n), consuming the generator.
// It panics if n == 0.
func (g *Generator) Uint64N(n uint64) uint64 {
	return g.Rand().Uint64N(n)
}

// IntRange returns a uniform int in [lo, hi), consuming the generator.
// It panics if hi <= lo.
func (g *Generator) IntRange(lo, hi int) int {
	if hi <= lo {
		panic("purerand: IntRange requires lo < hi")
	}
	return lo + g.Rand().IntN(hi-lo)
}

// Float64 returns a uniform float64 in [0, 1), consuming the generator.
func (g *Generator) Float64() float64 {
	return g.Rand().Float64()
}

// Float32 returns a uniform float32 in [0, 1), consuming the generator.
func (g *Generator) Float32() float32 {
	return g.Rand().Float32()
}

// Bool returns true with probability p, consuming the generator.
// It panics if p is outside [0, 1].
func (g *Generator) Bool(p float64) bool {
	if p < 0 || p > 1 {
		panic("purerand: Bool probability outside [0, 1]")
	}
	return g.Rand().Float64() < p
}

// Ratio returns true with probability num/den, consuming the generator.
// It panics if den == 0 or num > den.
func (g *Generator) Ratio(num, den uint32) bool {
	if den == 0 || num > den {
		panic("purerand: Ratio requires num <= den and den > 0")
	}
	return g.Rand().Uint64N(uint64(den)) < uint64(num)
}

// NormFloat64 returns a standard normal sample, consuming the generator.
func (g *Generator) NormFloat64() float64 {
	return g.Rand().NormFloat64()
}

// ExpFloat64 returns an exponential sample with rate 1, consuming the
// generator.
func (g *Generator) ExpFloat64() float64 {
	return g.Rand().ExpFloat64()
}

// Perm returns a uniform permutation of [0, n), consuming the generator.
func (g *Generator) Perm(n int) []int {
	return g.Rand().Perm(n)
}

// Shuffle shuffles n elements through swap, consuming the generator.
// It panics if n < 0.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	g.Rand().Shuffle(n, swap)
}

// Fill overwrites p with random bytes, consuming the generator. Bytes come
// from the episode's word chain, little-endian, so the result is identical
// on every platform.
func (g *Generator) Fill(p []byte) {
	g.consume()
	for len(p) >= 8 {
		word := g.nextWord()
		p[0] = byte(word)
		p[1] = byte(word >> 8)
		p[2] = byte(word >> 16)
		p[3] = byte(word >> 24)
		p[4] = byte(word >> 32)
		p[5] = byte(word >> 40)
		p[6] = byte(word >> 48)
		p[7] = byte(word >> 56)
		p = p[8:]
	}
	if len(p) > 0 {
		word := g.nextWord()
		for i := range p {
			p[i] = byte(word >> (8 * i))
		}
	}
}

// Distribution produces typed samples from a sampling-layer Rand.
type Distribution[T any] interface {
	Sample(*rand.Rand) T
}

// Sample draws one value from the distribution, consuming the generator.
func Sample[T any](g *Generator, d Distribution[T]) T {
	return d.Sample(g.Rand())
}

// Normal is a normal distribution with the given mean and standard deviation.
type Normal struct {
	Mean   float64
	StdDev float64
}

// Sample implements Distribution.
func (n Normal) Sample(r *rand.Rand) float64 {
	return n.Mean + n.StdDev*r.NormFloat64()
}

// Exponential is an exponential distribution with the given rate.
type Exponential struct {
	Rate float64
}

// Sample implements Distribution.
func (e Exponential) Sample(r *rand.Rand) float64 {
	return r.ExpFloat64() / e.Rate
}
