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

package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/winder/go-algorand-lib/protocol"
	"github.com/winder/go-algorand-lib/test/partitiontest"
)

func TestConsensusLatestVersion(t *testing.T) {
	partitiontest.PartitionTest(t)
	a := require.New(t)

	latest, has := Consensus[protocol.ConsensusCurrentVersion]
	a.True(has, "ConsensusCurrentVersion doesn't appear to be a known version: %v", protocol.ConsensusCurrentVersion)
	a.Empty(latest.ApprovedUpgrades, "Latest ConsensusVersion should not have any upgrades")
}

func TestConsensusParams(t *testing.T) {
	partitiontest.PartitionTest(t)
	a := require.New(t)

	params := Consensus[protocol.ConsensusCurrentVersion]

	// Limits the transaction layer depends on.
	a.Equal(uint64(1000), params.MinTxnFee)
	a.Equal(uint64(1000000), params.MinTxnAmount)
	a.Equal(uint64(1000), params.MaxTxnLife)
	a.Equal(16, params.MaxTxGroupSize)
	a.True(params.SupportRekeying)

	// A group of max-size transactions must fit in a block.
	a.Less(params.MaxTxGroupSize*params.MaxTxnNoteBytes, params.MaxTxnBytesPerBlock)

	// Application references must not exceed the total reference budget.
	a.LessOrEqual(params.MaxAppTxnAccounts, params.MaxAppTotalTxnReferences)
	a.LessOrEqual(params.MaxAppTxnForeignApps, params.MaxAppTotalTxnReferences)
	a.LessOrEqual(params.MaxAppTxnForeignAssets, params.MaxAppTotalTxnReferences)

	// An upgrade proposal must always resolve the vote before it switches.
	a.LessOrEqual(params.UpgradeThreshold, params.UpgradeVoteRounds)
	a.LessOrEqual(params.MinUpgradeWaitRounds, params.MaxUpgradeWaitRounds)
	a.LessOrEqual(params.DefaultUpgradeWaitRounds, params.MaxUpgradeWaitRounds)
}

func TestConsensusProtocolsDeepCopy(t *testing.T) {
	partitiontest.PartitionTest(t)
	a := require.New(t)

	testVersion := protocol.ConsensusVersion("deepcopy-test")
	base := ConsensusProtocols{
		testVersion: {
			MinTxnFee: 1000,
			ApprovedUpgrades: map[protocol.ConsensusVersion]uint64{
				protocol.ConsensusCurrentVersion: 10000,
			},
		},
	}

	clone := base.DeepCopy()
	a.Equal(base, clone)

	// Mutating the clone's upgrade map must not leak into the original.
	clone[testVersion].ApprovedUpgrades[testVersion] = 0
	a.NotContains(base[testVersion].ApprovedUpgrades, testVersion)
}

func TestConsensusProtocolsMerge(t *testing.T) {
	partitiontest.PartitionTest(t)
	a := require.New(t)

	vA := protocol.ConsensusVersion("merge-test-a")
	vB := protocol.ConsensusVersion("merge-test-b")
	base := ConsensusProtocols{
		vA: {
			ApprovedUpgrades: map[protocol.ConsensusVersion]uint64{vB: 10000},
		},
		vB: {
			ApprovedUpgrades: map[protocol.ConsensusVersion]uint64{},
		},
	}

	// Adding a new version.
	vC := protocol.ConsensusVersion("merge-test-c")
	merged := base.Merge(ConsensusProtocols{
		vC: {ApprovedUpgrades: map[protocol.ConsensusVersion]uint64{}},
	})
	a.Len(merged, 3)
	a.Contains(merged, vC)

	// A nil ApprovedUpgrades entry deletes the version and any upgrade
	// paths leading to it.
	merged = base.Merge(ConsensusProtocols{vB: {}})
	a.Len(merged, 1)
	a.NotContains(merged, vB)
	a.Empty(merged[vA].ApprovedUpgrades)

	// The inputs are untouched.
	a.Len(base, 2)
	a.Contains(base[vA].ApprovedUpgrades, vB)
}
