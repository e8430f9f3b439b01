package purerand

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
)

// Labeler lets a type provide its own stable byte encoding for use as a
// derivation label. The encoding must be deterministic: the same logical
// value must always append the same bytes, on every platform.
type Labeler interface {
	AppendLabel(b []byte) []byte
}

// Label type tags. Every label is framed with a tag (and a length prefix
// where the payload is variable-sized), so distinct label sequences can
// never collide by concatenation and reordering a pair always changes the
// absorbed bytes.
const (
	tagBool    = 0x01
	tagInt     = 0x02
	tagUint    = 0x03
	tagFloat   = 0x04
	tagString  = 0x05
	tagBytes   = 0x06
	tagLabeler = 0x07
	tagBinary  = 0x08
	tagCBOR    = 0x09
)

// detEnc is the deterministic CBOR mode used for structured labels: sorted
// map keys, shortest-form integers, no floating-point shenanigans.
var detEnc = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("purerand: cbor deterministic mode: %v", err))
	}
	return em
}()

// appendLabel appends the framed encoding of label to b.
//
// Integer labels are canonicalized to 8 bytes little-endian regardless of
// width, so int32(7) and int64(7) are the same label. Float labels are the
// IEEE-754 bits of the float64 value (float32 widens exactly). A label kind
// with no stable encoding is a usage error and panics.
func appendLabel(b []byte, label any) []byte {
	switch v := label.(type) {
	case bool:
		b = append(b, tagBool)
		if v {
			return append(b, 1)
		}
		return append(b, 0)
	case int:
		return appendInt(b, int64(v))
	case int8:
		return appendInt(b, int64(v))
	case int16:
		return appendInt(b, int64(v))
	case int32:
		return appendInt(b, int64(v))
	case int64:
		return appendInt(b, v)
	case uint:
		return appendUint(b, uint64(v))
	case uint8:
		return appendUint(b, uint64(v))
	case uint16:
		return appendUint(b, uint64(v))
	case uint32:
		return appendUint(b, uint64(v))
	case uint64:
		return appendUint(b, v)
	case uintptr:
		return appendUint(b, uint64(v))
	case float32:
		return appendFloat(b, float64(v))
	case float64:
		return appendFloat(b, v)
	case string:
		b = append(b, tagString)
		b = binary.AppendUvarint(b, uint64(len(v)))
		return append(b, v...)
	case []byte:
		b = append(b, tagBytes)
		b = binary.AppendUvarint(b, uint64(len(v)))
		return append(b, v...)
	case Labeler:
		payload := v.AppendLabel(nil)
		b = append(b, tagLabeler)
		b = binary.AppendUvarint(b, uint64(len(payload)))
		return append(b, payload...)
	case encoding.BinaryMarshaler:
		payload, err := v.MarshalBinary()
		if err != nil {
			panic(fmt.Sprintf("purerand: label %T marshal: %v", label, err))
		}
		b = append(b, tagBinary)
		b = binary.AppendUvarint(b, uint64(len(payload)))
		return append(b, payload...)
	default:
		payload, err := detEnc.Marshal(label)
		if err != nil {
			panic(fmt.Sprintf("purerand: unsupported label type %T: %v", label, err))
		}
		b = append(b, tagCBOR)
		b = binary.AppendUvarint(b, uint64(len(payload)))
		return append(b, payload...)
	}
}

func appendInt(b []byte, v int64) []byte {
	b = append(b, tagInt)
	return binary.LittleEndian.AppendUint64(b, uint64(v))
}

func appendUint(b []byte, v uint64) []byte {
	b = append(b, tagUint)
	return binary.LittleEndian.AppendUint64(b, v)
}

func appendFloat(b []byte, v float64) []byte {
	b = append(b, tagFloat)
	return binary.LittleEndian.AppendUint64(b, math.Float64bits(v))
}
