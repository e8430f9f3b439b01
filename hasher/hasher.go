// Package hasher defines the pluggable hash accumulator behind purerand
// generators and a registry of named implementations.
//
// A State absorbs bytes incrementally and finalizes to a 64-bit digest
// without resetting, so the same accumulator can keep absorbing after a
// finalize. Implementations must be endianness-stable: the digest for a
// given byte sequence must be identical on every platform. Substituting a
// primitive that does not normalize byte order silently breaks cross-platform
// determinism; there is no runtime check for it.
//
// hash/maphash is deliberately not offered: its seed is process-local,
// so digests differ between runs.
package hasher

import (
	"sort"
	"sync"

	apperrors "github.com/louisbranch/purerand/internal/errors"
)

// DefaultName is the registry name of the default accumulator.
const DefaultName = "xxhash64"

// ErrUnknown indicates a hasher name with no registered implementation.
var ErrUnknown = apperrors.New(apperrors.CodeHasherUnknown, "unknown hasher name")

// State is an incrementally updatable hash accumulator.
//
// Write absorbs bytes into the state; implementations never fail mid-stream
// in practice, the error return exists only to satisfy the standard hash
// interfaces. Sum64 finalizes the current state to a 64-bit digest without
// mutating it. Clone returns an independent byte-for-byte copy: writes to
// the clone never affect the original.
type State interface {
	Write(p []byte) (int, error)
	Sum64() uint64
	Clone() State
}

var (
	mu       sync.RWMutex
	registry = make(map[string]func() State)
)

// Register makes a State constructor available under the given name.
// Registering a duplicate name panics: names identify serialized generator
// state, so silent replacement would corrupt round trips.
func Register(name string, fn func() State) {
	mu.Lock()
	defer mu.Unlock()
	if name == "" || fn == nil {
		panic("hasher: Register requires a name and a constructor")
	}
	if _, dup := registry[name]; dup {
		panic("hasher: duplicate registration for " + name)
	}
	registry[name] = fn
}

// New returns a fresh State for the given registered name.
func New(name string) (State, error) {
	mu.RLock()
	fn, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, apperrors.WithMetadata(apperrors.CodeHasherUnknown,
			"unknown hasher name", map[string]string{"name": name})
	}
	return fn(), nil
}

// Default returns a fresh State of the default implementation.
func Default() State {
	s, err := New(DefaultName)
	if err != nil {
		panic("hasher: default implementation missing")
	}
	return s
}

// Names lists the registered hasher names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
