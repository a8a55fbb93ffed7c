package chain

import (
	"crypto/ed25519"
	"testing"
)

func TestParseAddressPadsShortForms(t *testing.T) {
	addr, err := ParseAddress("0x1")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if addr != AddressOne {
		t.Fatalf("0x1 should parse to the genesis address, got %s", addr.Hex())
	}
	if addr.Hex() != "0x0000000000000000000000000000000000000000000000000000000000000001" {
		t.Fatalf("unexpected hex form: %s", addr.Hex())
	}
}

func TestParseAddressFullWidth(t *testing.T) {
	full := "0x7d00000000000000000000000000000000000000000000000000000000000abc"
	addr, err := ParseAddress(full)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if addr.Hex() != full {
		t.Fatalf("round-trip mismatch: %s", addr.Hex())
	}
}

func TestParseAddressRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "0x", "0xzz", "0x" + string(make([]byte, 130))} {
		if _, err := ParseAddress(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestAddressFromPublicKeyDeterministic(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	seed[0] = 7
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	a := AddressFromPublicKey(pub)
	b := AddressFromPublicKey(pub)
	if a != b {
		t.Fatalf("address derivation must be deterministic")
	}
	if a.IsZero() {
		t.Fatalf("derived address must not be zero")
	}
}

func TestNewAccountFromSeedHex(t *testing.T) {
	acc, err := NewAccountFromSeedHex("0x0707070707070707070707070707070707070707070707070707070707070707")
	if err != nil {
		t.Fatalf("account from seed failed: %v", err)
	}
	if acc.Address() != AddressFromPublicKey(acc.PublicKey()) {
		t.Fatalf("account address must match derived address")
	}

	sig := acc.Sign([]byte("message"))
	if !ed25519.Verify(acc.PublicKey(), []byte("message"), sig) {
		t.Fatalf("signature must verify")
	}

	if _, err := NewAccountFromSeedHex("0x01"); err == nil {
		t.Fatalf("short seed must be rejected")
	}
}
