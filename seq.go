package purerand

import (
	"iter"
	"math"
)

// Pick returns a uniformly chosen element of s, consuming the generator.
// The second return is false when s is empty.
func Pick[S ~[]E, E any](g *Generator, s S) (E, bool) {
	if len(s) == 0 {
		g.consume()
		var zero E
		return zero, false
	}
	return s[g.IntN(len(s))], true
}

// PickN returns n distinct elements of s in selection order, consuming the
// generator. When n exceeds len(s) the whole slice is returned, shuffled.
// It panics if n < 0.
func PickN[S ~[]E, E any](g *Generator, s S, n int) S {
	if n < 0 {
		panic("purerand: PickN requires n >= 0")
	}
	if n > len(s) {
		n = len(s)
	}
	r := g.Rand()
	idx := make([]int, len(s))
	for i := range idx {
		idx[i] = i
	}
	// Partial Fisher-Yates over the index slice: the first n slots end up
	// holding a uniform distinct selection.
	picked := make(S, n)
	for i := 0; i < n; i++ {
		j := i + r.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		picked[i] = s[idx[i]]
	}
	return picked
}

// PickWeighted returns an element of s chosen with probability proportional
// to weight, consuming the generator. Elements with zero weight are never
// chosen; the second return is false when s is empty or all weights are
// zero. It panics on a negative or non-finite weight.
func PickWeighted[S ~[]E, E any](g *Generator, s S, weight func(E) float64) (E, bool) {
	r := g.Rand()
	var zero E
	total := 0.0
	for _, e := range s {
		w := weight(e)
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 1) {
			panic("purerand: PickWeighted weight must be finite and >= 0")
		}
		total += w
	}
	if total <= 0 {
		return zero, false
	}
	target := r.Float64() * total
	acc := 0.0
	for _, e := range s {
		acc += weight(e)
		if target < acc {
			return e, true
		}
	}
	// Float round-off can leave target at the very top of the last bucket.
	for i := len(s) - 1; i >= 0; i-- {
		if weight(s[i]) > 0 {
			return s[i], true
		}
	}
	return zero, false
}

// ShuffleSlice shuffles s in place, consuming the generator.
func ShuffleSlice[S ~[]E, E any](g *Generator, s S) {
	r := g.Rand()
	r.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// PickSeq returns a uniformly chosen element of seq by reservoir sampling,
// consuming the generator. The second return is false when seq is empty.
func PickSeq[E any](g *Generator, seq iter.Seq[E]) (E, bool) {
	r := g.Rand()
	var chosen E
	n := 0
	for e := range seq {
		n++
		if r.IntN(n) == 0 {
			chosen = e
		}
	}
	return chosen, n > 0
}
