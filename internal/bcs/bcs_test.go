package bcs

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
)

func TestFixedWidthRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 0x7f, 0x80, 0xff} {
		b, err := U8(v)
		if err != nil {
			t.Fatalf("u8 encode %d: %v", v, err)
		}
		got, err := DecodeU8(b)
		if err != nil || got != v {
			t.Fatalf("u8 round-trip %d: got %d err %v", v, got, err)
		}
	}

	for _, v := range []uint64{0, 256, 0xffff} {
		b, err := U16(v)
		if err != nil {
			t.Fatalf("u16 encode %d: %v", v, err)
		}
		got, err := DecodeU16(b)
		if err != nil || got != v {
			t.Fatalf("u16 round-trip %d: got %d err %v", v, got, err)
		}
	}

	for _, v := range []uint64{0, 1 << 16, 0xffffffff} {
		b, err := U32(v)
		if err != nil {
			t.Fatalf("u32 encode %d: %v", v, err)
		}
		got, err := DecodeU32(b)
		if err != nil || got != v {
			t.Fatalf("u32 round-trip %d: got %d err %v", v, got, err)
		}
	}

	for _, v := range []uint64{0, 13, 1 << 40, ^uint64(0)} {
		got, err := DecodeU64(U64(v))
		if err != nil || got != v {
			t.Fatalf("u64 round-trip %d: got %d err %v", v, got, err)
		}
	}
}

func TestBigRoundTrip(t *testing.T) {
	maxU128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	for _, v := range []*big.Int{big.NewInt(0), big.NewInt(1), maxU128} {
		b, err := U128(v)
		if err != nil {
			t.Fatalf("u128 encode %s: %v", v, err)
		}
		got, err := DecodeU128(b)
		if err != nil || got.Cmp(v) != 0 {
			t.Fatalf("u128 round-trip %s: got %s err %v", v, got, err)
		}
	}

	maxU256 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	for _, v := range []*big.Int{big.NewInt(0), maxU256} {
		b, err := U256(v)
		if err != nil {
			t.Fatalf("u256 encode %s: %v", v, err)
		}
		got, err := DecodeU256(b)
		if err != nil || got.Cmp(v) != 0 {
			t.Fatalf("u256 round-trip %s: got %s err %v", v, got, err)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	var encErr *EncodingError

	if _, err := U8(256); !errors.As(err, &encErr) {
		t.Fatalf("u8 overflow: want EncodingError, got %v", err)
	}
	if _, err := U16(1 << 16); !errors.As(err, &encErr) {
		t.Fatalf("u16 overflow: want EncodingError, got %v", err)
	}
	if _, err := U32(1 << 32); !errors.As(err, &encErr) {
		t.Fatalf("u32 overflow: want EncodingError, got %v", err)
	}

	over := new(big.Int).Lsh(big.NewInt(1), 128)
	if _, err := U128(over); !errors.As(err, &encErr) {
		t.Fatalf("u128 overflow: want EncodingError, got %v", err)
	}
	if _, err := U128(big.NewInt(-1)); !errors.As(err, &encErr) {
		t.Fatalf("u128 negative: want EncodingError, got %v", err)
	}
	if _, err := U256(new(big.Int).Lsh(big.NewInt(1), 256)); !errors.As(err, &encErr) {
		t.Fatalf("u256 overflow: want EncodingError, got %v", err)
	}
}

func TestUleb128(t *testing.T) {
	cases := map[uint64][]byte{
		0:     {0x00},
		127:   {0x7f},
		128:   {0x80, 0x01},
		16384: {0x80, 0x80, 0x01},
	}
	for v, want := range cases {
		got := Uleb128(v)
		if !bytes.Equal(got, want) {
			t.Fatalf("uleb128(%d) = %v, want %v", v, got, want)
		}
		back, n, err := DecodeUleb128(got)
		if err != nil || back != v || n != len(want) {
			t.Fatalf("uleb128 decode %d: got %d n=%d err %v", v, back, n, err)
		}
	}
}

func TestStringEncoding(t *testing.T) {
	got := String("pocket")
	want := append([]byte{6}, []byte("pocket")...)
	if !bytes.Equal(got, want) {
		t.Fatalf("string encoding = %v, want %v", got, want)
	}

	back, err := DecodeString(got)
	if err != nil || back != "pocket" {
		t.Fatalf("string round-trip: got %q err %v", back, err)
	}
}

func TestBoolEncoding(t *testing.T) {
	if !bytes.Equal(Bool(true), []byte{1}) || !bytes.Equal(Bool(false), []byte{0}) {
		t.Fatalf("bool encoding mismatch")
	}
	if _, err := DecodeBool([]byte{2}); err == nil {
		t.Fatalf("expected error for invalid bool byte")
	}
}

func TestU64Vector(t *testing.T) {
	got := U64Vector([]uint64{0, 13})
	want := []byte{2}
	want = append(want, U64(0)...)
	want = append(want, U64(13)...)
	if !bytes.Equal(got, want) {
		t.Fatalf("u64 vector = %v, want %v", got, want)
	}

	if !bytes.Equal(U64Vector(nil), []byte{0}) {
		t.Fatalf("empty vector must encode as a bare zero count")
	}
}

func TestBytesVector(t *testing.T) {
	got := BytesVector([][]byte{{0xaa}, {0xbb, 0xcc}})
	want := []byte{2, 1, 0xaa, 2, 0xbb, 0xcc}
	if !bytes.Equal(got, want) {
		t.Fatalf("bytes vector = %v, want %v", got, want)
	}
}

func TestSerializerComposition(t *testing.T) {
	var s Serializer
	s.WriteU8(2)
	s.WriteU64(7)
	s.WriteString("p1")
	s.WriteBytes([]byte{0xff})
	s.WriteBool(true)

	want := []byte{2}
	want = append(want, U64(7)...)
	want = append(want, String("p1")...)
	want = append(want, Bytes([]byte{0xff})...)
	want = append(want, 1)

	if !bytes.Equal(s.Bytes(), want) {
		t.Fatalf("serializer bytes = %v, want %v", s.Bytes(), want)
	}
}
