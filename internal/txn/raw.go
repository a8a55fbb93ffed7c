// Package txn signs and submits entry-function payloads through the
// simulate, sign, submit, await-finality pipeline.
package txn

import (
	"crypto/ed25519"

	"golang.org/x/crypto/sha3"

	"hamsterpocket/internal/bcs"
	"hamsterpocket/internal/builder"
	"hamsterpocket/internal/chain"
)

// rawTransactionSalt prefixes every signing message, domain-separating raw
// transactions from other signable payloads.
const rawTransactionSalt = "APTOS::RawTransaction"

// Payload variant and type-tag variant indices in the transaction encoding.
const (
	payloadVariantEntryFunction = 2
	typeTagVariantStruct        = 7
	authenticatorVariantEd25519 = 0
)

type rawTransaction struct {
	Sender                  chain.AccountAddress
	SequenceNumber          uint64
	Payload                 builder.EntryFunctionPayload
	MaxGasAmount            uint64
	GasUnitPrice            uint64
	ExpirationTimestampSecs uint64
	ChainID                 uint8
}

func (t rawTransaction) encode() []byte {
	var s bcs.Serializer
	s.WriteFixedBytes(t.Sender.Bytes())
	s.WriteU64(t.SequenceNumber)
	encodeEntryFunctionPayload(&s, t.Payload)
	s.WriteU64(t.MaxGasAmount)
	s.WriteU64(t.GasUnitPrice)
	s.WriteU64(t.ExpirationTimestampSecs)
	s.WriteU8(t.ChainID)
	return s.Bytes()
}

// signingMessage is the salted digest prefix plus the encoded transaction.
func (t rawTransaction) signingMessage() []byte {
	salt := sha3.Sum256([]byte(rawTransactionSalt))
	return append(salt[:], t.encode()...)
}

func encodeEntryFunctionPayload(s *bcs.Serializer, p builder.EntryFunctionPayload) {
	s.WriteUleb128(payloadVariantEntryFunction)
	s.WriteFixedBytes(p.ModuleAddress.Bytes())
	s.WriteString(p.ModuleName)
	s.WriteString(p.Function)

	s.WriteUleb128(uint64(len(p.TypeArgs)))
	for _, tag := range p.TypeArgs {
		encodeStructTag(s, tag)
	}

	s.WriteUleb128(uint64(len(p.Args)))
	for _, arg := range p.Args {
		s.WriteBytes(arg)
	}
}

func encodeStructTag(s *bcs.Serializer, tag chain.StructTag) {
	s.WriteUleb128(typeTagVariantStruct)
	s.WriteFixedBytes(tag.Address.Bytes())
	s.WriteString(tag.Module)
	s.WriteString(tag.Name)
	s.WriteUleb128(0) // no nested type parameters
}

// signedTransactionBytes appends the ed25519 authenticator to the encoded
// raw transaction.
func signedTransactionBytes(raw rawTransaction, pub ed25519.PublicKey, signature []byte) []byte {
	var s bcs.Serializer
	s.WriteFixedBytes(raw.encode())
	s.WriteUleb128(authenticatorVariantEd25519)
	s.WriteBytes(pub)
	s.WriteBytes(signature)
	return s.Bytes()
}
