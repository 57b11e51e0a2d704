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

package passphrase

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/winder/go-algorand-lib/test/partitiontest"
)

func TestGenerateAndRecovery(t *testing.T) {
	partitiontest.PartitionTest(t)

	key := make([]byte, 32)
	for i := 0; i < 1000; i++ {
		_, err := rand.Read(key)
		require.NoError(t, err)

		m, err := KeyToMnemonic(key)
		require.NoError(t, err)
		require.Len(t, strings.Fields(m), mnemonicLenWords)

		recovered, err := MnemonicToKey(m)
		require.NoError(t, err)
		require.Equal(t, key, recovered)
	}
}

func TestKnownMnemonics(t *testing.T) {
	partitiontest.PartitionTest(t)

	tests := []struct {
		keyHex   string
		mnemonic string
	}{
		{
			"39564e488e19cdaf66684e06e285afa18ea3cb9f6e9e129d2d97379002b5f86e",
			"shrimp deer category ocean olive program drip example dolphin bleak style tube either very insane oyster pelican reopen slide address ahead coil jelly about gossip",
		},
		{
			"9443bcd23c52846b962daf319ab80b541a336d9d8f25dcbedb6abfb3617df2ff",
			"income valve harsh cat anger online hole quality economy tiny alarm pipe great forget language cereal swear humble rely desk sell palm zebra abstract grab",
		},
	}

	for _, tc := range tests {
		key, err := hex.DecodeString(tc.keyHex)
		require.NoError(t, err)

		m, err := KeyToMnemonic(key)
		require.NoError(t, err)
		require.Equal(t, tc.mnemonic, m)

		recovered, err := MnemonicToKey(tc.mnemonic)
		require.NoError(t, err)
		require.Equal(t, key, recovered)
	}
}

func TestZeroVector(t *testing.T) {
	partitiontest.PartitionTest(t)

	zeroVector := strings.Repeat("abandon ", 24) + "invest"
	key := make([]byte, 32)

	m, err := KeyToMnemonic(key)
	require.NoError(t, err)
	require.Equal(t, zeroVector, m)
}

func TestWordNotInList(t *testing.T) {
	partitiontest.PartitionTest(t)

	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	m, err := KeyToMnemonic(key)
	require.NoError(t, err)

	words := strings.Fields(m)
	words[0] = "zzzzzz"
	_, err = MnemonicToKey(strings.Join(words, " "))
	require.Error(t, err)
}

func TestCorruptedChecksum(t *testing.T) {
	partitiontest.PartitionTest(t)

	key := make([]byte, 32)
	for i := 0; i < 100; i++ {
		_, err := rand.Read(key)
		require.NoError(t, err)

		m, err := KeyToMnemonic(key)
		require.NoError(t, err)

		words := strings.Fields(m)
		oldIdx := indexOf(wordlist, words[len(words)-1])
		words[len(words)-1] = wordlist[(oldIdx+1)%len(wordlist)]

		_, err = MnemonicToKey(strings.Join(words, " "))
		require.Equal(t, errWrongChecksum, err)
	}
}

func TestCorruptedDataWord(t *testing.T) {
	partitiontest.PartitionTest(t)

	// Swapping a data word for another vocabulary word changes the
	// recovered key, so the trailing checksum word no longer matches.
	m := "shrimp deer category ocean olive program drip example dolphin bleak style tube either very insane oyster pelican reopen slide address ahead coil jelly about gossip"
	words := strings.Fields(m)
	oldIdx := indexOf(wordlist, words[0])
	words[0] = wordlist[(oldIdx+1)%len(wordlist)]

	_, err := MnemonicToKey(strings.Join(words, " "))
	require.Equal(t, errWrongChecksum, err)
}

func TestInvalidKeyLen(t *testing.T) {
	partitiontest.PartitionTest(t)

	badLens := []int{0, 31, 33, 100}
	for _, badLen := range badLens {
		key := make([]byte, badLen)
		_, err := rand.Read(key)
		require.NoError(t, err)

		_, err = KeyToMnemonic(key)
		require.Equal(t, errWrongKeyLen, err)
	}
}

func TestInvalidMnemonicLen(t *testing.T) {
	partitiontest.PartitionTest(t)

	_, err := MnemonicToKey("abandon abandon abandon")
	require.Equal(t, errWrongMnemonicLen, err)
}

func TestUint11Conversions(t *testing.T) {
	partitiontest.PartitionTest(t)

	data := make([]byte, 32)
	for i := 0; i < 1000; i++ {
		_, err := rand.Read(data)
		require.NoError(t, err)

		packed := toUint11Array(data)
		unpacked := toByteArray(packed)
		require.Equal(t, data, unpacked[:len(data)])
	}
}
