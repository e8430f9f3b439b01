package hasher

import (
	"crypto/sha256"
	"encoding"
	"encoding/binary"
	"fmt"
	"hash"
	"hash/fnv"

	apperrors "github.com/louisbranch/purerand/internal/errors"
)

func init() {
	// Alternative primitives for callers who want to trade speed or mixing
	// strength. Both stdlib hashes operate bytewise, so their digests are
	// endianness-stable.
	fnv64a, err := WrapHash64(fnv.New64a)
	if err != nil {
		panic(fmt.Sprintf("hasher: wrap fnv64a: %v", err))
	}
	Register("fnv64a", fnv64a)

	sha, err := WrapHash(sha256.New)
	if err != nil {
		panic(fmt.Sprintf("hasher: wrap sha256: %v", err))
	}
	Register("sha256-64", sha)
}

// binaryCodec is the marshaling pair the wrappers rely on for cloning.
type binaryCodec interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// WrapHash64 adapts a constructor for any stdlib-style 64-bit hash into a
// State constructor. The hash must implement encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler (all stdlib hashes do); Clone round-trips the
// state through those. Probing happens once here so Clone itself cannot fail.
func WrapHash64(newHash func() hash.Hash64) (func() State, error) {
	if newHash == nil {
		return nil, apperrors.New(apperrors.CodeHasherNotSerializable, "hash constructor is required")
	}
	if _, ok := newHash().(binaryCodec); !ok {
		return nil, apperrors.New(apperrors.CodeHasherNotSerializable,
			"hash does not implement binary marshaling, cannot be cloned")
	}
	return func() State { return &wrapped64{newHash: newHash, h: newHash()} }, nil
}

// WrapHash adapts a constructor for a general hash.Hash into a State
// constructor by truncating the digest to its leading 8 bytes, read
// big-endian. The same binary-marshaling requirement as WrapHash64 applies,
// and the digest must be at least 8 bytes wide.
func WrapHash(newHash func() hash.Hash) (func() State, error) {
	if newHash == nil {
		return nil, apperrors.New(apperrors.CodeHasherNotSerializable, "hash constructor is required")
	}
	probe := newHash()
	if _, ok := probe.(binaryCodec); !ok {
		return nil, apperrors.New(apperrors.CodeHasherNotSerializable,
			"hash does not implement binary marshaling, cannot be cloned")
	}
	if probe.Size() < 8 {
		return nil, apperrors.New(apperrors.CodeHasherNotSerializable,
			"hash digest is narrower than 8 bytes")
	}
	return func() State { return &wrappedWide{newHash: newHash, h: newHash()} }, nil
}

type wrapped64 struct {
	newHash func() hash.Hash64
	h       hash.Hash64
}

func (w *wrapped64) Write(p []byte) (int, error) { return w.h.Write(p) }

func (w *wrapped64) Sum64() uint64 { return w.h.Sum64() }

func (w *wrapped64) Clone() State {
	state, err := w.h.(binaryCodec).MarshalBinary()
	if err != nil {
		panic(fmt.Sprintf("hasher: marshal for clone: %v", err))
	}
	h := w.newHash()
	if err := h.(binaryCodec).UnmarshalBinary(state); err != nil {
		panic(fmt.Sprintf("hasher: unmarshal for clone: %v", err))
	}
	return &wrapped64{newHash: w.newHash, h: h}
}

func (w *wrapped64) MarshalBinary() ([]byte, error) {
	return w.h.(binaryCodec).MarshalBinary()
}

func (w *wrapped64) UnmarshalBinary(data []byte) error {
	return w.h.(binaryCodec).UnmarshalBinary(data)
}

type wrappedWide struct {
	newHash func() hash.Hash
	h       hash.Hash
}

func (w *wrappedWide) Write(p []byte) (int, error) { return w.h.Write(p) }

func (w *wrappedWide) Sum64() uint64 {
	sum := w.h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}

func (w *wrappedWide) Clone() State {
	state, err := w.h.(binaryCodec).MarshalBinary()
	if err != nil {
		panic(fmt.Sprintf("hasher: marshal for clone: %v", err))
	}
	h := w.newHash()
	if err := h.(binaryCodec).UnmarshalBinary(state); err != nil {
		panic(fmt.Sprintf("hasher: unmarshal for clone: %v", err))
	}
	return &wrappedWide{newHash: w.newHash, h: h}
}

func (w *wrappedWide) MarshalBinary() ([]byte, error) {
	return w.h.(binaryCodec).MarshalBinary()
}

func (w *wrappedWide) UnmarshalBinary(data []byte) error {
	return w.h.(binaryCodec).UnmarshalBinary(data)
}
