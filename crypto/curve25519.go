// Copyright (C) 2019-2023 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package crypto

import (
	"errors"

	"golang.org/x/crypto/ed25519"
)

// Raw ed25519 value sizes, in bytes.
const (
	ed25519PublicKeySize  = 32
	ed25519PrivateKeySize = 64
	ed25519SeedSize       = 32
	ed25519SignatureSize  = 64
)

type ed25519Signature [ed25519SignatureSize]byte
type ed25519PublicKey [ed25519PublicKeySize]byte
type ed25519PrivateKey [ed25519PrivateKeySize]byte
type ed25519Seed [ed25519SeedSize]byte

func ed25519GenerateKeySeed(seed ed25519Seed) (public ed25519PublicKey, secret ed25519PrivateKey) {
	sk := ed25519.NewKeyFromSeed(seed[:])
	copy(secret[:], sk)
	copy(public[:], sk[ed25519SeedSize:])
	return
}

func ed25519GenerateKey() (public ed25519PublicKey, secret ed25519PrivateKey) {
	var seed ed25519Seed
	RandBytes(seed[:])
	return ed25519GenerateKeySeed(seed)
}

func ed25519Sign(secret ed25519PrivateKey, data []byte) (sig ed25519Signature) {
	copy(sig[:], ed25519.Sign(secret[:], data))
	return
}

func ed25519Verify(public ed25519PublicKey, data []byte, sig ed25519Signature) bool {
	return ed25519ConsensusVerifySingle(public, data, sig)
}

// A Signature is a cryptographic signature. It proves that a message was
// produced by a holder of a cryptographic secret.
type Signature ed25519Signature

// BlankSignature is an empty signature structure, containing nothing but zeroes
var BlankSignature = Signature{}

// Blank tests to see if the given signature contains only zeros
func (s *Signature) Blank() bool {
	return (*s) == BlankSignature
}

// A SignatureVerifier is used to identify the holder of SignatureSecrets
// and verify the authenticity of Signatures.
type SignatureVerifier = PublicKey

// PublicKey is an exported ed25519PublicKey
type PublicKey ed25519PublicKey

// IsZero returns true if the PublicKey is all zero bytes.
func (pk PublicKey) IsZero() bool {
	return pk == PublicKey{}
}

// PrivateKey is an exported ed25519PrivateKey
type PrivateKey ed25519PrivateKey

// A Seed holds the entropy needed to generate cryptographic keys.
type Seed ed25519Seed

// SignatureSecrets are used by an entity to produce unforgeable signatures over
// a message.
type SignatureSecrets struct {
	_struct struct{} `codec:""`

	SignatureVerifier
	SK ed25519PrivateKey
}

var errInvalidSecretKeyLen = errors.New("secret key has invalid length")

// SecretKeyToSeed derives the seed from a secret key.
func SecretKeyToSeed(secret PrivateKey) (Seed, error) {
	var seed Seed
	if len(secret) != ed25519PrivateKeySize {
		return seed, errInvalidSecretKeyLen
	}
	copy(seed[:], secret[:ed25519SeedSize])
	return seed, nil
}

// SecretKeyToSignatureSecrets reconstructs a SignatureSecrets from a
// 64-byte private key.
func SecretKeyToSignatureSecrets(secret PrivateKey) (*SignatureSecrets, error) {
	seed, err := SecretKeyToSeed(secret)
	if err != nil {
		return nil, err
	}
	return GenerateSignatureSecrets(seed), nil
}

// GenerateSignatureSecrets creates SignatureSecrets from a given seed.
func GenerateSignatureSecrets(seed Seed) *SignatureSecrets {
	pk0, sk := ed25519GenerateKeySeed(ed25519Seed(seed))
	pk := SignatureVerifier(pk0)
	return &SignatureSecrets{SignatureVerifier: pk, SK: sk}
}

// NewSignatureSecrets creates SignatureSecrets from fresh operating
// system entropy.
func NewSignatureSecrets() *SignatureSecrets {
	var seed Seed
	RandBytes(seed[:])
	return GenerateSignatureSecrets(seed)
}

// Sign produces a cryptographic Signature of a Hashable message, given
// cryptographic secrets.
func (s *SignatureSecrets) Sign(message Hashable) Signature {
	return s.SignBytes(HashRep(message))
}

// SignBytes signs a message directly, without first hashing.
// Caller is responsible for domain separation.
func (s *SignatureSecrets) SignBytes(message []byte) Signature {
	return Signature(ed25519Sign(s.SK, message))
}

// Verify verifies that some holder of a cryptographic secret authentically
// signed a Hashable message.
func (v SignatureVerifier) Verify(message Hashable, sig Signature) bool {
	return v.VerifyBytes(HashRep(message), sig)
}

// VerifyBytes verifies a signature, where the message is not hashed first.
// Caller is responsible for domain separation.
// If the message is a Hashable, Verify() can be used instead.
func (v SignatureVerifier) VerifyBytes(message []byte, sig Signature) bool {
	return ed25519Verify(ed25519PublicKey(v), message, ed25519Signature(sig))
}
