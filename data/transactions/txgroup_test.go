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
	"encoding/base64"
	"encoding/hex"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/winder/go-algorand-lib/crypto"
	"github.com/winder/go-algorand-lib/data/basics"
	"github.com/winder/go-algorand-lib/protocol"
	"github.com/winder/go-algorand-lib/test/partitiontest"
)

// sampleGroupTxns returns a payment and an asset transfer on testnet whose
// ids and group hash are pinned by the golden test below.
func sampleGroupTxns(t *testing.T) (Transaction, Transaction) {
	t.Helper()

	payer, err := basics.UnmarshalChecksumAddress("IL5YIRUX577LJ5FVOMATHTB6XR7KQDJTGWG24VLDGFHU2NOWKH67UL2ULI")
	require.NoError(t, err)
	payee, err := basics.UnmarshalChecksumAddress("3XOLRWTASJY25KA6PVMAC3MQBWY4RW3HRAKTSL6ZXJJEJA4B2ODQP3OWGA")
	require.NoError(t, err)

	var genHash crypto.Digest
	gh, err := base64.StdEncoding.DecodeString("SGO1GKSzyE7IEPItTxCByw9x8FmnrCDexi9/cOUJOiI=")
	require.NoError(t, err)
	copy(genHash[:], gh)

	pay := Transaction{
		Type: protocol.PaymentTx,
		Header: Header{
			Sender:      payer,
			Fee:         basics.MicroAlgos{Raw: 230000},
			FirstValid:  17962505,
			LastValid:   17963505,
			GenesisHash: genHash,
		},
		PaymentTxnFields: PaymentTxnFields{
			Receiver: payee,
			Amount:   basics.MicroAlgos{Raw: 1000000},
		},
	}
	axfer := Transaction{
		Type: protocol.AssetTransferTx,
		Header: Header{
			Sender:      payee,
			Fee:         basics.MicroAlgos{Raw: 244000},
			FirstValid:  17962505,
			LastValid:   17963505,
			GenesisHash: genHash,
		},
		AssetTransferTxnFields: AssetTransferTxnFields{
			XferAsset:     123456789,
			AssetAmount:   1000000,
			AssetReceiver: payer,
		},
	}
	return pay, axfer
}

func TestAssignGroupID(t *testing.T) {
	partitiontest.PartitionTest(t)

	pay, axfer := sampleGroupTxns(t)
	require.Equal(t, "IDJRB47H4PIUOMLWOSRQMXSX4GLP7OWIG7DVE67NN6KWBDGQOH4Q", pay.ID().String())
	require.Equal(t, "IWCO45FDR2IUU6ZUFORAD5ZVQ3R6JK5VWQWD4VJFJ6EZK5OCPKZQ", axfer.ID().String())

	gid, err := ComputeGroupID([]Transaction{pay, axfer})
	require.NoError(t, err)
	require.Equal(t, "d9420d6df510ca93139938e6fda2fa91a3738840a8e88775c4d6b7e73c4072b4", hex.EncodeToString(gid[:]))

	input := []Transaction{pay, axfer}
	grouped, err := AssignGroupID(input)
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	for _, tx := range grouped {
		require.Equal(t, gid, tx.Group)
	}

	// the input transactions are left untouched
	require.True(t, input[0].Group.IsZero())
	require.True(t, input[1].Group.IsZero())

	// the group field changes each member's id
	require.NotEqual(t, pay.ID(), grouped[0].ID())
	require.NotEqual(t, axfer.ID(), grouped[1].ID())

	// ordering is part of the commitment
	swapped, err := ComputeGroupID([]Transaction{axfer, pay})
	require.NoError(t, err)
	require.NotEqual(t, gid, swapped)
}

func TestGroupIDErrors(t *testing.T) {
	partitiontest.PartitionTest(t)

	_, err := ComputeGroupID(nil)
	require.ErrorIs(t, err, errEmptyGroup)
	_, err = AssignGroupID([]Transaction{})
	require.ErrorIs(t, err, errEmptyGroup)

	pay, axfer := sampleGroupTxns(t)
	oversized := make([]Transaction, 17)
	for i := range oversized {
		oversized[i] = pay
		oversized[i].FirstValid += basics.Round(i)
	}
	_, err = ComputeGroupID(oversized)
	var tooLarge *ErrGroupTooLarge
	require.ErrorAs(t, err, &tooLarge)
	require.Equal(t, 17, tooLarge.Size)
	require.Equal(t, 16, tooLarge.Max)

	// a group of exactly the maximum size is fine
	_, err = ComputeGroupID(oversized[:16])
	require.NoError(t, err)

	grouped, err := AssignGroupID([]Transaction{pay, axfer})
	require.NoError(t, err)
	_, err = ComputeGroupID(grouped)
	require.ErrorIs(t, err, errGroupAlreadyAssigned)
}

func TestSignGroupID(t *testing.T) {
	partitiontest.PartitionTest(t)

	keys := []*crypto.SignatureSecrets{keypair(), keypair()}
	pay, axfer := sampleGroupTxns(t)
	pay.Sender = basics.Address(keys[0].SignatureVerifier)
	axfer.Sender = basics.Address(keys[1].SignatureVerifier)
	txns := []Transaction{pay, axfer}

	gid, err := ComputeGroupID(txns)
	require.NoError(t, err)

	decodeBlob := func(blob []byte) []SignedTxn {
		var out []SignedTxn
		dec := protocol.NewDecoderBytes(blob)
		for {
			var stxn SignedTxn
			err := dec.Decode(&stxn)
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			out = append(out, stxn)
		}
		return out
	}

	// one key per member, matched positionally
	blob, err := SignGroupID(txns, keys...)
	require.NoError(t, err)
	stxns := decodeBlob(blob)
	require.Len(t, stxns, 2)
	for i, stxn := range stxns {
		require.Equal(t, gid, stxn.Txn.Group)
		require.Equal(t, txns[i].Sender, stxn.Txn.Sender)
		require.True(t, stxn.Verify())
		require.True(t, stxn.AuthAddr.IsZero())
	}

	// a single key signs every member
	blob, err = SignGroupID(txns, keys[0])
	require.NoError(t, err)
	stxns = decodeBlob(blob)
	require.Len(t, stxns, 2)
	for _, stxn := range stxns {
		require.Equal(t, gid, stxn.Txn.Group)
		require.True(t, stxn.Verify())
	}
	// the second member was signed by a key other than its sender
	require.Equal(t, basics.Address(keys[0].SignatureVerifier), stxns[1].AuthAddr)

	_, err = SignGroupID(txns, keys[0], keys[1], keypair())
	var mismatch *ErrKeyCountMismatch
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, 3, mismatch.Keys)
	require.Equal(t, 2, mismatch.Txns)
}
