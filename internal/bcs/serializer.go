package bcs

import "bytes"

// Serializer is an append-only buffer for composing multi-field structures
// out of the primitive encoders.
type Serializer struct {
	buf bytes.Buffer
}

// WriteU8 appends a single byte.
func (s *Serializer) WriteU8(v uint8) {
	s.buf.WriteByte(v)
}

// WriteU64 appends a little-endian u64.
func (s *Serializer) WriteU64(v uint64) {
	s.buf.Write(U64(v))
}

// WriteUleb128 appends a variable-length unsigned integer.
func (s *Serializer) WriteUleb128(v uint64) {
	s.buf.Write(Uleb128(v))
}

// WriteBool appends a 0/1 byte.
func (s *Serializer) WriteBool(v bool) {
	s.buf.Write(Bool(v))
}

// WriteString appends a length-prefixed UTF-8 string.
func (s *Serializer) WriteString(v string) {
	s.buf.Write(String(v))
}

// WriteBytes appends a length-prefixed byte array.
func (s *Serializer) WriteBytes(v []byte) {
	s.buf.Write(Bytes(v))
}

// WriteFixedBytes appends raw bytes with no length prefix.
func (s *Serializer) WriteFixedBytes(v []byte) {
	s.buf.Write(v)
}

// Bytes returns the accumulated encoding.
func (s *Serializer) Bytes() []byte {
	return s.buf.Bytes()
}
