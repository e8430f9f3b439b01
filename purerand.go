package purerand

import (
	"encoding/binary"

	"github.com/louisbranch/purerand/hasher"
)

// Generator is one node in a seed tree. Its accumulated hash state is
// uniquely determined by the root seed and the ordered labels derived since,
// so two generators built from the same label path are interchangeable.
//
// A Generator is exclusively owned by one logical branch of computation.
// It is not safe for concurrent use, and there is never a reason for it:
// goroutines that need independent randomness each derive their own child.
type Generator struct {
	name  string
	state hasher.State
	used  bool
}

// New creates a root generator on the default hasher, seeded with the given
// labels. With no labels the root is the unseeded accumulator, which is
// still deterministic.
func New(seed ...any) *Generator {
	g := &Generator{name: hasher.DefaultName, state: hasher.Default()}
	g.absorb(seed)
	return g
}

// NewNamed creates a root generator on the registered hasher with the given
// name. It fails only when the name is unknown.
func NewNamed(name string, seed ...any) (*Generator, error) {
	state, err := hasher.New(name)
	if err != nil {
		return nil, err
	}
	g := &Generator{name: name, state: state}
	g.absorb(seed)
	return g, nil
}

// NewWith creates a root generator on an injected accumulator instance.
// Generators built this way carry no registry name and cannot be serialized.
func NewWith(state hasher.State, seed ...any) *Generator {
	g := &Generator{state: state}
	g.absorb(seed)
	return g
}

// Derive forks the generator: it clones the accumulator, absorbs the
// byte-encoding of each label in order, and returns the clone as an
// independent child. The parent is untouched, so a caller may fork as many
// sibling branches as it needs. Deriving from a consumed generator panics.
//
// Derive(a, b) and Derive(a).Derive(b) reach the same node.
func (g *Generator) Derive(labels ...any) *Generator {
	g.check()
	child := &Generator{name: g.name, state: g.state.Clone()}
	child.absorb(labels)
	return child
}

// Uint64 finalizes the accumulator and returns its 64-bit digest as the raw
// random word, consuming the generator.
func (g *Generator) Uint64() uint64 {
	g.consume()
	return g.nextWord()
}

// check panics when the generator has already produced a value. Reuse is a
// programming error: the surrounding code would otherwise read one generator
// a variable number of times across different paths, which is exactly the
// divergence this package exists to prevent.
func (g *Generator) check() {
	if g.used {
		panic("purerand: generator already consumed")
	}
}

// consume marks the generator as spent after rejecting reuse.
func (g *Generator) consume() {
	g.check()
	g.used = true
}

// nextWord finalizes the accumulator to one word and absorbs that word back
// into the state, little-endian, so the next word within the same episode is
// a fresh function of everything emitted so far. Callers go through consume
// first; only the episode chain calls this repeatedly.
func (g *Generator) nextWord() uint64 {
	word := g.state.Sum64()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], word)
	_, _ = g.state.Write(buf[:])
	return word
}

func (g *Generator) absorb(labels []any) {
	for _, label := range labels {
		_, _ = g.state.Write(appendLabel(nil, label))
	}
}
