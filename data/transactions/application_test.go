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
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/winder/go-algorand-lib/config"
	"github.com/winder/go-algorand-lib/crypto"
	"github.com/winder/go-algorand-lib/data/basics"
	"github.com/winder/go-algorand-lib/protocol"
	"github.com/winder/go-algorand-lib/test/partitiontest"
)

func TestApplicationCallFieldsNotChanged(t *testing.T) {
	partitiontest.PartitionTest(t)

	af := ApplicationCallTxnFields{}
	s := reflect.ValueOf(&af).Elem()

	if s.NumField() != 12 {
		t.Errorf("You added or removed a field from ApplicationCallTxnFields. " +
			"Please ensure you have updated the Empty() method and then " +
			"fix this test")
	}
}

func TestApplicationCallFieldsEmpty(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := require.New(t)

	ac := ApplicationCallTxnFields{}
	a.True(ac.Empty())

	ac.ApplicationID = 1
	a.False(ac.Empty())

	ac.ApplicationID = 0
	ac.OnCompletion = 1
	a.False(ac.Empty())

	ac.OnCompletion = 0
	ac.ApplicationArgs = make([][]byte, 1)
	a.False(ac.Empty())

	ac.ApplicationArgs = nil
	ac.Accounts = make([]basics.Address, 1)
	a.False(ac.Empty())

	ac.Accounts = nil
	ac.ForeignApps = make([]basics.AppIndex, 1)
	a.False(ac.Empty())

	ac.ForeignApps = nil
	ac.ForeignAssets = make([]basics.AssetIndex, 1)
	a.False(ac.Empty())

	ac.ForeignAssets = nil
	ac.LocalStateSchema = basics.StateSchema{NumUint: 1}
	a.False(ac.Empty())

	ac.LocalStateSchema = basics.StateSchema{}
	ac.GlobalStateSchema = basics.StateSchema{NumUint: 1}
	a.False(ac.Empty())

	ac.GlobalStateSchema = basics.StateSchema{}
	ac.ApprovalProgram = []byte{1}
	a.False(ac.Empty())

	ac.ApprovalProgram = []byte{}
	a.False(ac.Empty())

	ac.ApprovalProgram = nil
	ac.ClearStateProgram = []byte{1}
	a.False(ac.Empty())

	ac.ClearStateProgram = []byte{}
	a.False(ac.Empty())

	ac.ClearStateProgram = nil
	a.True(ac.Empty())

	ac.ExtraProgramPages = 1
	a.False(ac.Empty())

	ac.ExtraProgramPages = 0
	a.True(ac.Empty())
}

func getRandomAddress(a *require.Assertions) basics.Address {
	const rl = 16
	b := make([]byte, rl)
	crypto.RandBytes(b)

	address := crypto.Hash(b)
	return basics.Address(address)
}

func TestAppCallAddressByIndex(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := require.New(t)

	sender := getRandomAddress(a)
	acct0 := getRandomAddress(a)
	acct1 := getRandomAddress(a)

	ac := ApplicationCallTxnFields{
		Accounts: []basics.Address{acct0, acct1},
	}

	addr, err := ac.AddressByIndex(0, sender)
	a.NoError(err)
	a.Equal(sender, addr)

	addr, err = ac.AddressByIndex(1, sender)
	a.NoError(err)
	a.Equal(acct0, addr)

	addr, err = ac.AddressByIndex(2, sender)
	a.NoError(err)
	a.Equal(acct1, addr)

	_, err = ac.AddressByIndex(3, sender)
	a.ErrorContains(err, "invalid Account reference")
}

func TestAppCallIndexByAddress(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := require.New(t)

	sender := getRandomAddress(a)
	acct0 := getRandomAddress(a)
	acct1 := getRandomAddress(a)
	stranger := getRandomAddress(a)

	ac := ApplicationCallTxnFields{
		Accounts: []basics.Address{acct0, acct1},
	}

	idx, err := ac.IndexByAddress(sender, sender)
	a.NoError(err)
	a.Equal(uint64(0), idx)

	idx, err = ac.IndexByAddress(acct0, sender)
	a.NoError(err)
	a.Equal(uint64(1), idx)

	idx, err = ac.IndexByAddress(acct1, sender)
	a.NoError(err)
	a.Equal(uint64(2), idx)

	_, err = ac.IndexByAddress(stranger, sender)
	a.ErrorContains(err, "invalid Account reference")
}

func TestAppCallWellFormed(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	proto := config.Consensus[protocol.ConsensusV22]

	manyArgs := make([][]byte, proto.MaxAppArgs+1)
	hugeArg := [][]byte{[]byte(strings.Repeat("x", proto.MaxAppTotalArgLen+1))}
	manyAccounts := make([]basics.Address, proto.MaxAppTxnAccounts+1)
	manyApps := make([]basics.AppIndex, proto.MaxAppTxnForeignApps+1)
	manyAssets := make([]basics.AssetIndex, proto.MaxAppTxnForeignAssets+1)
	longProgram := []byte(strings.Repeat("\x01", proto.MaxAppProgramLen+1))

	cases := []struct {
		ac            ApplicationCallTxnFields
		expectedError string
	}{
		{
			// creation with programs and schemas is fine
			ac: ApplicationCallTxnFields{
				ApprovalProgram:   []byte{0x02, 0x20, 0x01, 0x01, 0x22},
				ClearStateProgram: []byte{0x02, 0x20, 0x01, 0x01, 0x22},
				GlobalStateSchema: basics.StateSchema{NumUint: 1},
				LocalStateSchema:  basics.StateSchema{NumByteSlice: 1},
			},
		},
		{
			// plain call to an existing app
			ac: ApplicationCallTxnFields{
				ApplicationID: 1,
				OnCompletion:  NoOpOC,
			},
		},
		{
			ac: ApplicationCallTxnFields{
				OnCompletion: OnCompletion(100),
			},
			expectedError: "invalid application OnCompletion",
		},
		{
			ac: ApplicationCallTxnFields{
				ApplicationID:   1,
				OnCompletion:    NoOpOC,
				ApprovalProgram: []byte{0x02},
			},
			expectedError: "programs may only be specified during application creation or update",
		},
		{
			ac: ApplicationCallTxnFields{
				ApplicationID:    1,
				OnCompletion:     NoOpOC,
				LocalStateSchema: basics.StateSchema{NumUint: 1},
			},
			expectedError: "local and global state schemas are immutable",
		},
		{
			ac: ApplicationCallTxnFields{
				ApplicationID:     1,
				OnCompletion:      NoOpOC,
				ExtraProgramPages: 1,
			},
			expectedError: "tx.ExtraProgramPages is immutable",
		},
		{
			ac: ApplicationCallTxnFields{
				ApplicationArgs: manyArgs,
			},
			expectedError: "too many application args",
		},
		{
			ac: ApplicationCallTxnFields{
				ApplicationArgs: hugeArg,
			},
			expectedError: "application args total length too long",
		},
		{
			ac: ApplicationCallTxnFields{
				ApplicationID: 1,
				Accounts:      manyAccounts,
			},
			expectedError: "tx.Accounts too long",
		},
		{
			ac: ApplicationCallTxnFields{
				ApplicationID: 1,
				ForeignApps:   manyApps,
			},
			expectedError: "tx.ForeignApps too long",
		},
		{
			ac: ApplicationCallTxnFields{
				ApplicationID: 1,
				ForeignAssets: manyAssets,
			},
			expectedError: "tx.ForeignAssets too long",
		},
		{
			ac: ApplicationCallTxnFields{
				ApplicationID: 1,
				Accounts:      make([]basics.Address, 4),
				ForeignApps:   make([]basics.AppIndex, 3),
				ForeignAssets: make([]basics.AssetIndex, 2),
			},
			expectedError: "tx references exceed MaxAppTotalTxnReferences",
		},
		{
			ac: ApplicationCallTxnFields{
				ExtraProgramPages: uint32(proto.MaxExtraAppProgramPages + 1),
			},
			expectedError: "tx.ExtraProgramPages exceeds MaxExtraAppProgramPages",
		},
		{
			ac: ApplicationCallTxnFields{
				ApprovalProgram: longProgram,
			},
			expectedError: "approval program too long",
		},
		{
			ac: ApplicationCallTxnFields{
				ClearStateProgram: longProgram,
			},
			expectedError: "clear state program too long",
		},
		{
			// extra pages raise the per-program limit
			ac: ApplicationCallTxnFields{
				ApprovalProgram:   longProgram,
				ExtraProgramPages: 1,
			},
		},
		{
			ac: ApplicationCallTxnFields{
				LocalStateSchema: basics.StateSchema{NumUint: uint64(proto.MaxLocalSchemaEntries + 1)},
			},
			expectedError: "tx.LocalStateSchema too large",
		},
		{
			ac: ApplicationCallTxnFields{
				GlobalStateSchema: basics.StateSchema{NumUint: uint64(proto.MaxGlobalSchemaEntries + 1)},
			},
			expectedError: "tx.GlobalStateSchema too large",
		},
	}

	for i, tc := range cases {
		name := fmt.Sprintf("i=%d", i)
		if tc.expectedError != "" {
			name = tc.expectedError
		}
		t.Run(name, func(t *testing.T) {
			err := tc.ac.wellFormed(proto)
			if tc.expectedError != "" {
				require.ErrorContains(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
