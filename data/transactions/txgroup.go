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
	"errors"
	"fmt"

	"github.com/winder/go-algorand-lib/config"
	"github.com/winder/go-algorand-lib/crypto"
	"github.com/winder/go-algorand-lib/protocol"
)

var errEmptyGroup = errors.New("txgroup: empty transaction list")
var errGroupAlreadyAssigned = errors.New("txgroup: transactions must not already belong to a group")

// ErrGroupTooLarge is returned when grouping more transactions than the
// protocol allows in a single atomic group.
type ErrGroupTooLarge struct {
	Size int
	Max  int
}

func (err *ErrGroupTooLarge) Error() string {
	return fmt.Sprintf("txgroup: %d transactions exceed the maximum group size of %d", err.Size, err.Max)
}

// ErrKeyCountMismatch is returned when signing a group with a number of keys
// that is neither one nor the number of group members.
type ErrKeyCountMismatch struct {
	Keys int
	Txns int
}

func (err *ErrKeyCountMismatch) Error() string {
	return fmt.Sprintf("txgroup: cannot sign %d transactions with %d keys", err.Txns, err.Keys)
}

// ComputeGroupID returns the group ID for a list of transactions: the hash,
// prefixed with protocol.TxGroup, of the canonical encoding of the list of
// the member transaction IDs.
//
// The input transactions must not have their Group field set.
func ComputeGroupID(txgroup []Transaction) (crypto.Digest, error) {
	if len(txgroup) == 0 {
		return crypto.Digest{}, errEmptyGroup
	}

	proto := config.Consensus[protocol.ConsensusV22]
	if len(txgroup) > proto.MaxTxGroupSize {
		return crypto.Digest{}, &ErrGroupTooLarge{Size: len(txgroup), Max: proto.MaxTxGroupSize}
	}

	var group TxGroup
	for _, tx := range txgroup {
		if !tx.Group.IsZero() {
			return crypto.Digest{}, errGroupAlreadyAssigned
		}
		group.TxGroupHashes = append(group.TxGroupHashes, crypto.Digest(tx.ID()))
	}

	return crypto.HashObj(group), nil
}

// AssignGroupID computes the group ID for a list of transactions and returns
// copies of the transactions with their Group field set to it. The input
// transactions are not modified.
func AssignGroupID(txgroup []Transaction) ([]Transaction, error) {
	gid, err := ComputeGroupID(txgroup)
	if err != nil {
		return nil, err
	}

	result := make([]Transaction, len(txgroup))
	for i, tx := range txgroup {
		result[i] = tx
		result[i].Group = gid
	}
	return result, nil
}

// SignGroupID groups the given transactions, signs each member, and returns
// the wire blob: the concatenation of each member's encoded SignedTxn.
//
// Either a single key signs every member, or one key is given per member and
// keys are matched with transactions positionally.
func SignGroupID(txgroup []Transaction, secrets ...*crypto.SignatureSecrets) ([]byte, error) {
	if len(secrets) != 1 && len(secrets) != len(txgroup) {
		return nil, &ErrKeyCountMismatch{Keys: len(secrets), Txns: len(txgroup)}
	}

	grouped, err := AssignGroupID(txgroup)
	if err != nil {
		return nil, err
	}

	var blob []byte
	for i, tx := range grouped {
		key := secrets[0]
		if len(secrets) > 1 {
			key = secrets[i]
		}
		stx := tx.Sign(key)
		blob = append(blob, protocol.Encode(&stx)...)
	}
	return blob, nil
}
