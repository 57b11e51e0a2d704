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

package transactions

import (
	"github.com/winder/go-algorand-lib/crypto"
	"github.com/winder/go-algorand-lib/data/basics"
	"github.com/winder/go-algorand-lib/protocol"
)

// SignedTxn wraps a transaction and a signature.
//
// The encoding of this struct is suitable to broadcast on the network
type SignedTxn struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Sig      crypto.Signature `codec:"sig"`
	Txn      Transaction      `codec:"txn"`
	AuthAddr basics.Address   `codec:"sgnr"`

	// parentTxid records the id of the application call that spawned this
	// transaction as an inner transaction, if any.  It is in-memory only:
	// inner transactions do not have an independent on-chain id, and the
	// field never appears in the encoding.
	parentTxid Txid
}

// AssignParentID returns a copy of the signed transaction that records
// parent as the id of the application call that spawned it as an inner
// transaction.  The copy's ID() reports the parent's id.
func (s SignedTxn) AssignParentID(parent Txid) SignedTxn {
	s.parentTxid = parent
	return s
}

// ID returns the Txid (i.e., hash) of the underlying transaction.  For an
// inner transaction, it returns the id of the parent transaction instead.
func (s SignedTxn) ID() Txid {
	if s.parentTxid != (Txid{}) {
		return s.parentTxid
	}
	return s.Txn.ID()
}

// GetEncodedLength returns the length in bytes of the encoded transaction
func (s SignedTxn) GetEncodedLength() int {
	return len(protocol.Encode(&s))
}

// Authorizer returns the address against which the signature should be checked.
// This is usually the sender, but it could be the auth address, if the sender
// has rekeyed.
func (s SignedTxn) Authorizer() basics.Address {
	if (s.AuthAddr == basics.Address{}) {
		// Normal case. Use the declared sender of the transaction.
		return s.Txn.Sender
	}
	// Sender has been rekeyed, signature must be from the rekeyed to address.
	return s.AuthAddr
}

// Verify checks that the signature is valid for the underlying transaction,
// as authorized by Authorizer().
func (s SignedTxn) Verify() bool {
	return crypto.SignatureVerifier(s.Authorizer()).Verify(s.Txn, s.Sig)
}
