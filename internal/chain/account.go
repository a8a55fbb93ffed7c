package chain

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"
)

// Account holds an ed25519 key pair and its derived address. The key is
// read-only after construction, so an Account is safe for concurrent use.
type Account struct {
	priv    ed25519.PrivateKey
	pub     ed25519.PublicKey
	address AccountAddress
}

// NewAccountFromSeedHex builds an account from a 32-byte hex-encoded
// private-key seed.
func NewAccountFromSeedHex(seedHex string) (*Account, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(seedHex), "0x"))
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	if len(raw) != ed25519.SeedSize {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", ed25519.SeedSize, len(raw))
	}

	priv := ed25519.NewKeyFromSeed(raw)
	pub := priv.Public().(ed25519.PublicKey)

	return &Account{
		priv:    priv,
		pub:     pub,
		address: AddressFromPublicKey(pub),
	}, nil
}

// Address returns the account address.
func (a *Account) Address() AccountAddress {
	return a.address
}

// PublicKey returns the ed25519 public key.
func (a *Account) PublicKey() ed25519.PublicKey {
	return a.pub
}

// Sign signs the message with the account's private key.
func (a *Account) Sign(message []byte) []byte {
	return ed25519.Sign(a.priv, message)
}
