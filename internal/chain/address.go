package chain

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// AddressLength is the fixed byte length of an account address.
const AddressLength = 32

// AccountAddress is a 32-byte account address.
type AccountAddress [AddressLength]byte

// AddressOne is the framework (genesis) address 0x1.
var AddressOne = AccountAddress{31: 1}

// ParseAddress parses a hex address, with or without 0x prefix. Short forms
// are left-padded to 32 bytes.
func ParseAddress(s string) (AccountAddress, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if trimmed == "" || len(trimmed) > AddressLength*2 {
		return AccountAddress{}, fmt.Errorf("invalid address %q", s)
	}
	if len(trimmed)%2 == 1 {
		trimmed = "0" + trimmed
	}

	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return AccountAddress{}, fmt.Errorf("invalid address %q: %w", s, err)
	}

	var addr AccountAddress
	copy(addr[AddressLength-len(raw):], raw)
	return addr, nil
}

// Hex returns the full-width 0x-prefixed hex form.
func (a AccountAddress) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Bytes returns the raw 32-byte form.
func (a AccountAddress) Bytes() []byte {
	out := make([]byte, AddressLength)
	copy(out, a[:])
	return out
}

func (a AccountAddress) String() string {
	return a.Hex()
}

// IsZero reports whether the address is all zero bytes.
func (a AccountAddress) IsZero() bool {
	return a == AccountAddress{}
}

// ed25519Scheme is the authentication-key scheme byte for single-signer
// ed25519 accounts.
const ed25519Scheme = 0x00

// AddressFromPublicKey derives the account address from an ed25519 public
// key: sha3-256(pubkey || scheme).
func AddressFromPublicKey(pub ed25519.PublicKey) AccountAddress {
	h := sha3.New256()
	h.Write(pub)
	h.Write([]byte{ed25519Scheme})

	var addr AccountAddress
	copy(addr[:], h.Sum(nil))
	return addr
}
