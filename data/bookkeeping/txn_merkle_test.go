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
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/winder/go-algorand-lib/crypto"
	"github.com/winder/go-algorand-lib/data/transactions"
	"github.com/winder/go-algorand-lib/protocol"
	"github.com/winder/go-algorand-lib/test/partitiontest"
)

type txnProofVector struct {
	name     string
	respJSON string
	txid     string
	txnRoot  string
}

// Proofs fetched from algod's GetTransactionProof endpoint, roots from the
// corresponding block headers.
var txnProofVectors = []txnProofVector{
	{
		name: "mainnet block 20261491",
		respJSON: `{
			"hashtype": "sha512_256",
			"idx": 47,
			"proof": "RqFhu2v3tWDNzQYYBqIIogwlVNfouGZHL8SysDYZFyAyF3jY3e/Of399c18S0nZT7ggITIM2xF3H+Z7HNA+4uVmR5/2f9ev6j9xOTKDxM4F5ObtyQPNIEZiwa866kGUCabEFj8JyXjJ0oYvnVrmjXTaSwXouDFoh4lGkExkhu+wAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAH1Mjdbvd94NJ7I2ysmkH/LoNr+Jk8S4WjIcZMf4HmRF",
			"stibhash": "p1VyFS6idjmUxZpYusk96vrbfYWDXgv127inV6kDBlo=",
			"treedepth": 6
		}`,
		txid:    "UFZTMQWJ3N6LWGMMSF7EJENOQKYYUDC7A2346TR3L7AYTBRCAPZQ",
		txnRoot: "YcZRhpAW/7OMq8q//Rm/fnuhZCBg5nhQwCTI0WNGbAI=",
	},
	{
		name: "testnet block 20827984",
		respJSON: `{
			"hashtype": "sha512_256",
			"idx": 2,
			"proof": "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAD7PrZCkE/aCgJQi2aM+FaMrBr75FnAMX8dI/6RLzFUwg==",
			"stibhash": "cYOXh02WbWew5J2x/vZApjQc2GaWP3Z/8/Lm3Rzzb2E=",
			"treedepth": 2
		}`,
		txid:    "WFISCMEVNJQ44IGK5OSH767DGJW5E5JQK3HRJROIX3RVMXEDONOA",
		txnRoot: "qc2uzGvdxEV4ujtwkE4Jg5g+V3VMERmtKPBnxf91SNo=",
	},
	{
		name: "testnet block 20827986",
		respJSON: `{
			"hashtype": "sha512_256",
			"idx": 1,
			"proof": "GNGqyQvrIUZseT3msp90UY995OOnFkdHNuqmXeBUt9I=",
			"stibhash": "pb8iRzM057GCiY8Qp7MJh46mxHnMAO+oF1gEjPFAqRY=",
			"treedepth": 1
		}`,
		txid:    "6JIBTA4NGUSGQONJRBJNU722S5PFZ3AGVU4VRY2ZIKR27AXBN6QQ",
		txnRoot: "AZL7xI9Hp5DKWO59oHZPRmlE+wVoPOJQxIBuKJtWrbA=",
	},
	{
		name: "testnet block 20827988 single txn",
		respJSON: `{
			"hashtype": "sha512_256",
			"idx": 0,
			"proof": "",
			"stibhash": "8hi7qXsGUs5O80pOgGKXC5QYXso3sz8LLF1IoLeVvTE=",
			"treedepth": 0
		}`,
		txid:    "S5UEAAO54HYPR3EPKWZRX3OE2GRKFOKCO2BUUICLQ2JEQBS4H5EQ",
		txnRoot: "NNYUpJYQu30QVin14lFrri5tZjhDO+NLPWtXiWhgqqs=",
	},
	{
		name: "testnet depth 5, default hashtype",
		respJSON: `{
			"idx": 11,
			"proof": "ab2/G0q7HayramFeLOdelgDgaVkLwY1XPZmilYNcTSsZJkbcCYgQSzBPF+sxCJYhsjXAORt0Cxx/+uYSO+Fo70kEcaNlD5kX4K18vOahWHKEg23bo0vPg4Hika8hUgldoIkff6mnXH9rbiDlBweVWY90VfPg7aq4ios5KR8TGgQhDMDraYncY0CL0gYA1gaTwp0J58Cdxz3GgJK+3ppGJg==",
			"stibhash": "jTXscHe2Wxyca8a2iwQZkxlDgCGC9ZRTJdGVTF1CLy4=",
			"treedepth": 5
		}`,
		txid:    "A3TATJKWNH4ZEYKDUZE4S5SO7TYIBQN5VSSWJB7HTFL4MJEAUOWQ",
		txnRoot: "J/uRLt7jmzdA8o8Ju126ffKkhn5MFCQTbUsEQ3aZuSY=",
	},
}

func (v txnProofVector) decode(t *testing.T) (TxnProof, transactions.Txid, crypto.Digest) {
	t.Helper()

	var resp TxnProofResponse
	require.NoError(t, protocol.DecodeJSON([]byte(v.respJSON), &resp))

	proof, err := resp.Decode()
	require.NoError(t, err)

	var txid transactions.Txid
	require.NoError(t, txid.FromString(v.txid))

	rootBytes, err := base64.StdEncoding.DecodeString(v.txnRoot)
	require.NoError(t, err)
	root, err := crypto.DigestFromBytes(rootBytes)
	require.NoError(t, err)

	return proof, txid, root
}

func TestTxnProofVerify(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, v := range txnProofVectors {
		t.Run(v.name, func(t *testing.T) {
			proof, txid, root := v.decode(t)

			require.Equal(t, int(proof.TreeDepth), len(proof.Siblings))
			require.Equal(t, root, proof.Root(txid))
			require.NoError(t, proof.Verify(txid, root))
		})
	}
}

func TestTxnProofVerifyMismatch(t *testing.T) {
	partitiontest.PartitionTest(t)

	proof, txid, root := txnProofVectors[0].decode(t)

	// Wrong transaction ID.
	var otherTxid transactions.Txid
	crypto.RandBytes(otherTxid[:])
	require.ErrorIs(t, proof.Verify(otherTxid, root), ErrInvalidTxnProof)

	// Wrong commitment.
	var otherRoot crypto.Digest
	crypto.RandBytes(otherRoot[:])
	require.ErrorIs(t, proof.Verify(txid, otherRoot), ErrInvalidTxnProof)

	// Corrupted sibling.
	proof.Siblings[3][0]++
	require.ErrorIs(t, proof.Verify(txid, root), ErrInvalidTxnProof)
	proof.Siblings[3][0]--
	require.NoError(t, proof.Verify(txid, root))

	// Corrupted leaf.
	proof.StibHash[0]++
	require.ErrorIs(t, proof.Verify(txid, root), ErrInvalidTxnProof)
}

func TestTxnProofResponseDecodeErrors(t *testing.T) {
	partitiontest.PartitionTest(t)

	base := TxnProofResponse{
		Index:     3,
		StibHash:  make([]byte, crypto.DigestSize),
		TreeDepth: 1,
		Proof:     make([]byte, crypto.DigestSize),
	}

	resp := base
	resp.HashType = "sha256"
	_, err := resp.Decode()
	require.ErrorContains(t, err, "unsupported proof hash type")

	resp = base
	resp.Proof = make([]byte, crypto.DigestSize+1)
	_, err = resp.Decode()
	require.ErrorContains(t, err, "not a multiple of")

	resp = base
	resp.StibHash = resp.StibHash[:crypto.DigestSize-1]
	_, err = resp.Decode()
	require.Error(t, err)

	resp = base
	resp.HashType = "sha512_256"
	proof, err := resp.Decode()
	require.NoError(t, err)
	require.Len(t, proof.Siblings, 1)
}

func TestTxnMerkleLeafDomainSeparation(t *testing.T) {
	partitiontest.PartitionTest(t)

	var elem txnMerkleElem
	crypto.RandBytes(elem.txid[:])
	crypto.RandBytes(elem.stib[:])

	hashID, data := elem.ToBeHashed()
	require.Equal(t, protocol.TxnMerkleLeaf, hashID)
	require.Equal(t, elem.txid[:], data[:crypto.DigestSize])
	require.Equal(t, elem.stib[:], data[crypto.DigestSize:])

	// Swapping the leaf components must change the hash.
	swapped := txnMerkleElem{txid: transactions.Txid(elem.stib), stib: crypto.Digest(elem.txid)}
	require.NotEqual(t, crypto.HashObj(&elem), crypto.HashObj(&swapped))
}
