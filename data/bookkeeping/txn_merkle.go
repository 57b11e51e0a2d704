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

package bookkeeping

import (
	"errors"
	"fmt"

	"github.com/winder/go-algorand-lib/crypto"
	"github.com/winder/go-algorand-lib/data/transactions"
	"github.com/winder/go-algorand-lib/protocol"
)

// ErrInvalidTxnProof is returned when a transaction inclusion proof does not
// reconstruct the block's transaction commitment.
var ErrInvalidTxnProof = errors.New("invalid transaction proof")

// TxnProof is a proof of membership for a single transaction in a block's
// transaction Merkle tree. Siblings holds one hash per tree level, ordered
// from the leaf up.
type TxnProof struct {
	// Index is the position of the transaction in the block's payset.
	Index uint64

	// TreeDepth is the depth of the block's transaction Merkle tree.
	TreeDepth uint64

	// StibHash is the hash of the SignedTxnInBlock the leaf commits to.
	StibHash crypto.Digest

	// Siblings are the hashes needed to climb from the leaf to the root.
	Siblings []crypto.Digest
}

// txnMerkleElem represents a leaf in the Merkle tree of all transactions
// in a block.
type txnMerkleElem struct {
	txid transactions.Txid
	stib crypto.Digest
}

// ToBeHashed implements the crypto.Hashable interface.
func (tme *txnMerkleElem) ToBeHashed() (protocol.HashID, []byte) {
	// The leaf contains two hashes: the transaction ID (hash of the
	// transaction itself), and the hash of the entire SignedTxnInBlock.
	var buf [2 * crypto.DigestSize]byte
	copy(buf[:crypto.DigestSize], tme.txid[:])
	copy(buf[crypto.DigestSize:], tme.stib[:])

	return protocol.TxnMerkleLeaf, buf[:]
}

// merkleNode combines two child hashes into their parent's hash.
func merkleNode(left crypto.Digest, right crypto.Digest) crypto.Digest {
	var buf [len(protocol.MerkleArrayNode) + 2*crypto.DigestSize]byte
	s := buf[:0]
	s = append(s, protocol.MerkleArrayNode...)
	s = append(s, left[:]...)
	s = append(s, right[:]...)
	return crypto.Hash(s)
}

// Root folds the proof over the leaf for the given transaction ID and
// returns the reconstructed transaction commitment.
func (p TxnProof) Root(txid transactions.Txid) crypto.Digest {
	elem := txnMerkleElem{txid: txid, stib: p.StibHash}
	hash := crypto.HashObj(&elem)

	index := p.Index
	for _, sibling := range p.Siblings {
		if index%2 == 0 {
			hash = merkleNode(hash, sibling)
		} else {
			hash = merkleNode(sibling, hash)
		}
		index = index / 2
	}
	return hash
}

// Verify checks the proof for the given transaction ID against the block's
// transaction commitment. A zero-depth proof carries no siblings and the
// leaf hash itself must equal the commitment.
func (p TxnProof) Verify(txid transactions.Txid, txnRoot crypto.Digest) error {
	if p.Root(txid) != txnRoot {
		return ErrInvalidTxnProof
	}
	return nil
}

// TxnProofResponse is the form in which inclusion proofs travel over the
// algod REST API. Proof holds the sibling hashes of all tree levels,
// concatenated.
type TxnProofResponse struct {
	HashType  string `json:"hashtype"`
	Index     uint64 `json:"idx"`
	Proof     []byte `json:"proof"`
	StibHash  []byte `json:"stibhash"`
	TreeDepth uint64 `json:"treedepth"`
}

// Decode converts the REST API representation into a TxnProof.
func (r TxnProofResponse) Decode() (TxnProof, error) {
	if r.HashType != "" && r.HashType != "sha512_256" {
		return TxnProof{}, fmt.Errorf("unsupported proof hash type %q", r.HashType)
	}
	if len(r.Proof)%crypto.DigestSize != 0 {
		return TxnProof{}, fmt.Errorf("proof length %d not a multiple of %d", len(r.Proof), crypto.DigestSize)
	}

	stib, err := crypto.DigestFromBytes(r.StibHash)
	if err != nil {
		return TxnProof{}, err
	}

	proof := TxnProof{
		Index:     r.Index,
		TreeDepth: r.TreeDepth,
		StibHash:  stib,
	}
	for off := 0; off < len(r.Proof); off += crypto.DigestSize {
		sibling, err := crypto.DigestFromBytes(r.Proof[off : off+crypto.DigestSize])
		if err != nil {
			return TxnProof{}, err
		}
		proof.Siblings = append(proof.Siblings, sibling)
	}
	return proof, nil
}
