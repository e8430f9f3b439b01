package hasher

import "github.com/cespare/xxhash/v2"

func init() {
	Register(DefaultName, func() State { return &xxState{d: xxhash.New()} })
}

// xxState is the default accumulator: streaming xxHash64. The digest is
// computed over the absorbed bytes independently of host endianness, and the
// underlying state is a plain value, so cloning is a struct copy.
type xxState struct {
	d *xxhash.Digest
}

func (x *xxState) Write(p []byte) (int, error) { return x.d.Write(p) }

func (x *xxState) Sum64() uint64 { return x.d.Sum64() }

func (x *xxState) Clone() State {
	dup := *x.d
	return &xxState{d: &dup}
}

// MarshalBinary encodes the accumulator state for generator serialization.
func (x *xxState) MarshalBinary() ([]byte, error) { return x.d.MarshalBinary() }

// UnmarshalBinary restores accumulator state produced by MarshalBinary.
func (x *xxState) UnmarshalBinary(data []byte) error { return x.d.UnmarshalBinary(data) }
