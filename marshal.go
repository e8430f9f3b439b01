package purerand

import (
	"encoding"
	"encoding/binary"

	"github.com/louisbranch/purerand/hasher"
	apperrors "github.com/louisbranch/purerand/internal/errors"
)

// stateVersion guards the serialized layout: version byte, uvarint-prefixed
// hasher registry name, raw accumulator state.
const stateVersion = 1

var (
	// ErrStateInvalid indicates serialized generator state that cannot be decoded.
	ErrStateInvalid = apperrors.New(apperrors.CodeStateInvalid, "invalid generator state")
	// ErrStateUnnamed indicates a generator whose hasher has no registry name.
	ErrStateUnnamed = apperrors.New(apperrors.CodeStateUnnamed, "generator hasher has no registry name")
	// ErrConsumed indicates an operation on an already consumed generator.
	ErrConsumed = apperrors.New(apperrors.CodeStateConsumed, "generator already consumed")
)

// MarshalBinary encodes the generator's full state: enough to reconstruct a
// generator that continues the identical word stream. The accumulator must
// come from the hasher registry (so it can be resolved to a constructor on
// decode) and must support binary marshaling; a consumed generator cannot
// be marshaled.
func (g *Generator) MarshalBinary() ([]byte, error) {
	if g.used {
		return nil, ErrConsumed
	}
	if g.name == "" {
		return nil, ErrStateUnnamed
	}
	m, ok := g.state.(encoding.BinaryMarshaler)
	if !ok {
		return nil, apperrors.WithMetadata(apperrors.CodeHasherNotSerializable,
			"hasher state does not support binary marshaling",
			map[string]string{"name": g.name})
	}
	state, err := m.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStateInvalid, "marshal hasher state", err)
	}

	b := []byte{stateVersion}
	b = binary.AppendUvarint(b, uint64(len(g.name)))
	b = append(b, g.name...)
	return append(b, state...), nil
}

// UnmarshalBinary reconstructs a generator from MarshalBinary output.
func (g *Generator) UnmarshalBinary(data []byte) error {
	if len(data) < 2 || data[0] != stateVersion {
		return ErrStateInvalid
	}
	nameLen, n := binary.Uvarint(data[1:])
	if n <= 0 || uint64(len(data)-1-n) < nameLen {
		return ErrStateInvalid
	}
	name := string(data[1+n : 1+n+int(nameLen)])
	stateBytes := data[1+n+int(nameLen):]

	state, err := hasher.New(name)
	if err != nil {
		return err
	}
	u, ok := state.(encoding.BinaryUnmarshaler)
	if !ok {
		return apperrors.WithMetadata(apperrors.CodeHasherNotSerializable,
			"hasher state does not support binary unmarshaling",
			map[string]string{"name": name})
	}
	if err := u.UnmarshalBinary(stateBytes); err != nil {
		return apperrors.Wrap(apperrors.CodeStateInvalid, "unmarshal hasher state", err)
	}

	g.name = name
	g.state = state
	g.used = false
	return nil
}
