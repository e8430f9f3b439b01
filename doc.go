// Package purerand is a deterministic, tree-structured random number
// generator: every value it produces is a pure function of an explicit chain
// of seed labels, never of how many values were drawn before it.
//
// A stateful generator shared across code paths diverges: two runs with the
// same seed produce different downstream values because one path happened to
// draw one extra number. purerand removes that failure mode structurally. A
// root generator is built from a seed, and every place that needs randomness
// derives its own child generator under a label that names the decision:
//
//	root := purerand.New(worldSeed)
//	loot := root.Derive("loot", chestID)
//	gold := loot.Derive("gold").IntN(100)
//
// Two generators built from identical label paths produce identical values,
// on any platform. Deriving clones the parent's hash accumulator before
// absorbing the label, so sibling branches are fully independent.
//
// # Consumption
//
// Every value-producing operation consumes its generator: any further
// operation on it panics. This is the guard against accidental reuse of one
// generator across divergent call paths; keep a branch by deriving it, not
// by drawing from it twice. One consuming call may still absorb several
// internal hash rounds (rejection sampling, shuffles); that chain is
// invisible to the caller and never creates new branches.
//
// # Hashing
//
// Values come from finalizing an incrementally built hash of the label path.
// The accumulator is pluggable (see the hasher package); the default is
// streaming xxHash64, which is endianness-stable and passes large-scale
// statistical test batteries in both the one-word-per-path and the
// iterated-chain regime. The generator is not cryptographically secure.
package purerand
