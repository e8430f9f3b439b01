package purerand_test

import (
	"errors"
	"testing"

	"github.com/louisbranch/purerand"
	"github.com/louisbranch/purerand/hasher"
)

// TestMarshalRoundTrip ensures a restored generator continues the identical
// word stream.
func TestMarshalRoundTrip(t *testing.T) {
	g := purerand.New("save game").Derive("dungeon", 3)
	data, err := g.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored purerand.Generator
	if err := restored.UnmarshalBinary(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if a, b := g.Uint64(), restored.Uint64(); a != b {
		t.Fatalf("restored generator produced %d, original %d", b, a)
	}
}

// TestMarshalRoundTripDerives ensures a restored generator derives the same tree.
func TestMarshalRoundTripDerives(t *testing.T) {
	g := purerand.New("save game").Derive("dungeon", 3)
	data, err := g.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored purerand.Generator
	if err := restored.UnmarshalBinary(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if a, b := g.Derive("room", 7).Uint64(), restored.Derive("room", 7).Uint64(); a != b {
		t.Fatalf("restored derive produced %d, original %d", b, a)
	}
}

// TestMarshalConsumedFails ensures spent generators cannot be serialized.
func TestMarshalConsumedFails(t *testing.T) {
	g := purerand.New("spent")
	g.Uint64()
	if _, err := g.MarshalBinary(); !errors.Is(err, purerand.ErrConsumed) {
		t.Fatalf("marshal consumed generator: %v", err)
	}
}

// TestMarshalUnnamedFails ensures injected-hasher generators report the
// missing registry name.
func TestMarshalUnnamedFails(t *testing.T) {
	g := purerand.NewWith(hasher.Default(), "seed")
	if _, err := g.MarshalBinary(); !errors.Is(err, purerand.ErrStateUnnamed) {
		t.Fatalf("marshal unnamed generator: %v", err)
	}
}

// TestUnmarshalRejectsGarbage ensures malformed payloads fail cleanly.
func TestUnmarshalRejectsGarbage(t *testing.T) {
	var g purerand.Generator
	for _, data := range [][]byte{nil, {0xff}, {1}, {1, 200, 200}} {
		if err := g.UnmarshalBinary(data); !errors.Is(err, purerand.ErrStateInvalid) {
			t.Fatalf("unmarshal %x: %v", data, err)
		}
	}
}

// TestUnmarshalUnknownHasher ensures an unregistered hasher name is rejected.
func TestUnmarshalUnknownHasher(t *testing.T) {
	// Version byte, name length 7, name "missing", no state.
	data := append([]byte{1, 7}, "missing"...)
	var g purerand.Generator
	if err := g.UnmarshalBinary(data); !errors.Is(err, hasher.ErrUnknown) {
		t.Fatalf("unmarshal unknown hasher: %v", err)
	}
}
