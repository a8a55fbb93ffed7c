// Package bcs implements the canonical binary serialization used for
// on-chain call arguments: little-endian fixed-width integers, single-byte
// booleans, and ULEB128 length-prefixed strings, byte arrays, and sequences.
package bcs

import (
	"fmt"
	"math/big"
)

// EncodingError reports a value that does not fit its target width.
type EncodingError struct {
	Type  string
	Value string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("bcs: %s value out of range: %s", e.Type, e.Value)
}

const (
	maxU8  = 1<<8 - 1
	maxU16 = 1<<16 - 1
	maxU32 = 1<<32 - 1
)

// U8 encodes an unsigned 8-bit integer.
func U8(v uint64) ([]byte, error) {
	if v > maxU8 {
		return nil, &EncodingError{Type: "u8", Value: fmt.Sprintf("%d", v)}
	}
	return []byte{byte(v)}, nil
}

// U16 encodes an unsigned 16-bit integer, little-endian.
func U16(v uint64) ([]byte, error) {
	if v > maxU16 {
		return nil, &EncodingError{Type: "u16", Value: fmt.Sprintf("%d", v)}
	}
	return []byte{byte(v), byte(v >> 8)}, nil
}

// U32 encodes an unsigned 32-bit integer, little-endian.
func U32(v uint64) ([]byte, error) {
	if v > maxU32 {
		return nil, &EncodingError{Type: "u32", Value: fmt.Sprintf("%d", v)}
	}
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}, nil
}

// U64 encodes an unsigned 64-bit integer, little-endian.
func U64(v uint64) []byte {
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte(v >> (8 * i))
	}
	return out
}

// U128 encodes an unsigned 128-bit integer, little-endian.
func U128(v *big.Int) ([]byte, error) {
	return bigUint(v, 16, "u128")
}

// U256 encodes an unsigned 256-bit integer, little-endian.
func U256(v *big.Int) ([]byte, error) {
	return bigUint(v, 32, "u256")
}

func bigUint(v *big.Int, width int, typ string) ([]byte, error) {
	if v == nil || v.Sign() < 0 || v.BitLen() > width*8 {
		value := "nil"
		if v != nil {
			value = v.String()
		}
		return nil, &EncodingError{Type: typ, Value: value}
	}
	out := make([]byte, width)
	raw := v.Bytes()
	for i, b := range raw {
		out[len(raw)-1-i] = b
	}
	return out, nil
}

// Bool encodes a boolean as a single 0/1 byte.
func Bool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// Uleb128 encodes an unsigned integer in variable-length LEB128 form.
func Uleb128(v uint64) []byte {
	out := make([]byte, 0, 10)
	for v >= 0x80 {
		out = append(out, byte(v)|0x80)
		v >>= 7
	}
	return append(out, byte(v))
}

// String encodes a UTF-8 string as a ULEB128 length prefix plus raw bytes.
func String(s string) []byte {
	return Bytes([]byte(s))
}

// Bytes encodes a byte array as a ULEB128 length prefix plus raw bytes.
func Bytes(b []byte) []byte {
	out := Uleb128(uint64(len(b)))
	return append(out, b...)
}

// U64Vector encodes a sequence of u64 values: ULEB128 count followed by the
// concatenated little-endian elements.
func U64Vector(vals []uint64) []byte {
	out := Uleb128(uint64(len(vals)))
	for _, v := range vals {
		out = append(out, U64(v)...)
	}
	return out
}

// BytesVector encodes a sequence of byte arrays, each with its own length
// prefix.
func BytesVector(items [][]byte) []byte {
	out := Uleb128(uint64(len(items)))
	for _, item := range items {
		out = append(out, Bytes(item)...)
	}
	return out
}
