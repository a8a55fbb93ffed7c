package bcs

import (
	"fmt"
	"math/big"
)

// DecodeU8 decodes a single-byte unsigned integer.
func DecodeU8(b []byte) (uint64, error) {
	if len(b) != 1 {
		return 0, fmt.Errorf("bcs: u8 wants 1 byte, got %d", len(b))
	}
	return uint64(b[0]), nil
}

// DecodeU16 decodes a little-endian unsigned 16-bit integer.
func DecodeU16(b []byte) (uint64, error) {
	return decodeUint(b, 2, "u16")
}

// DecodeU32 decodes a little-endian unsigned 32-bit integer.
func DecodeU32(b []byte) (uint64, error) {
	return decodeUint(b, 4, "u32")
}

// DecodeU64 decodes a little-endian unsigned 64-bit integer.
func DecodeU64(b []byte) (uint64, error) {
	return decodeUint(b, 8, "u64")
}

func decodeUint(b []byte, width int, typ string) (uint64, error) {
	if len(b) != width {
		return 0, fmt.Errorf("bcs: %s wants %d bytes, got %d", typ, width, len(b))
	}
	var v uint64
	for i := width - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v, nil
}

// DecodeU128 decodes a little-endian unsigned 128-bit integer.
func DecodeU128(b []byte) (*big.Int, error) {
	return decodeBigUint(b, 16, "u128")
}

// DecodeU256 decodes a little-endian unsigned 256-bit integer.
func DecodeU256(b []byte) (*big.Int, error) {
	return decodeBigUint(b, 32, "u256")
}

func decodeBigUint(b []byte, width int, typ string) (*big.Int, error) {
	if len(b) != width {
		return nil, fmt.Errorf("bcs: %s wants %d bytes, got %d", typ, width, len(b))
	}
	be := make([]byte, width)
	for i, v := range b {
		be[width-1-i] = v
	}
	return new(big.Int).SetBytes(be), nil
}

// DecodeBool decodes a single 0/1 byte.
func DecodeBool(b []byte) (bool, error) {
	if len(b) != 1 || b[0] > 1 {
		return false, fmt.Errorf("bcs: invalid bool encoding %v", b)
	}
	return b[0] == 1, nil
}

// DecodeUleb128 decodes a variable-length unsigned integer and returns the
// value and the number of bytes consumed.
func DecodeUleb128(b []byte) (uint64, int, error) {
	var v uint64
	for i := 0; i < len(b); i++ {
		if i >= 10 {
			return 0, 0, fmt.Errorf("bcs: uleb128 too long")
		}
		v |= uint64(b[i]&0x7f) << (7 * i)
		if b[i]&0x80 == 0 {
			return v, i + 1, nil
		}
	}
	return 0, 0, fmt.Errorf("bcs: truncated uleb128")
}

// DecodeString decodes a ULEB128 length-prefixed UTF-8 string.
func DecodeString(b []byte) (string, error) {
	n, consumed, err := DecodeUleb128(b)
	if err != nil {
		return "", err
	}
	if uint64(len(b)-consumed) != n {
		return "", fmt.Errorf("bcs: string length %d does not match payload %d", n, len(b)-consumed)
	}
	return string(b[consumed:]), nil
}
