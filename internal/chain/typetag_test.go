package chain

import (
	"errors"
	"testing"
)

func TestParseStructTag(t *testing.T) {
	tag, err := ParseStructTag("0x1::aptos_coin::AptosCoin")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if tag.Address != AddressOne || tag.Module != "aptos_coin" || tag.Name != "AptosCoin" {
		t.Fatalf("unexpected tag: %+v", tag)
	}
	want := "0x0000000000000000000000000000000000000000000000000000000000000001::aptos_coin::AptosCoin"
	if tag.String() != want {
		t.Fatalf("string form mismatch: %s", tag.String())
	}
}

func TestParseStructTagRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"aptos_coin::AptosCoin",
		"0x1::aptos_coin",
		"0x1::aptos_coin::AptosCoin::Extra",
		"xyz::aptos_coin::AptosCoin",
		"0x1::9coin::AptosCoin",
		"0x1::aptos_coin::Aptos-Coin",
		"0x1::::AptosCoin",
	}

	for _, input := range cases {
		var parseErr *TypeTagParseError
		if _, err := ParseStructTag(input); !errors.As(err, &parseErr) {
			t.Fatalf("want TypeTagParseError for %q, got %v", input, err)
		}
	}
}
