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
	"maps"

	"github.com/winder/go-algorand-lib/protocol"
)

// ConsensusParams specifies settings that might vary based on the
// particular version of the consensus protocol.
type ConsensusParams struct {
	// UpgradeVoteRounds is the number of rounds over which an upgrade
	// proposal is voted on.
	UpgradeVoteRounds uint64

	// UpgradeThreshold is the number of votes an upgrade proposal needs
	// within UpgradeVoteRounds to be approved.
	UpgradeThreshold uint64

	// DefaultUpgradeWaitRounds is the default delay between approval of
	// an upgrade and its execution.
	DefaultUpgradeWaitRounds uint64

	// MinUpgradeWaitRounds and MaxUpgradeWaitRounds bound the delay that
	// an upgrade proposal may request.
	MinUpgradeWaitRounds uint64
	MaxUpgradeWaitRounds uint64

	// MaxVersionStringLen is the maximum length of a protocol version string.
	MaxVersionStringLen int

	// MaxTxnBytesPerBlock determines the maximum number of bytes
	// that transactions take up in a block.  The sum of the lengths of the
	// encodings of each transaction in a block must not exceed this value.
	MaxTxnBytesPerBlock int

	// MaxTxnNoteBytes is the maximum size of a transaction's Note field.
	MaxTxnNoteBytes int

	// MaxTxnLife is how long a transaction can be live for:
	// the maximum difference between LastValid and FirstValid.
	MaxTxnLife uint64

	// MaxTimestampIncrement is the maximum time between timestamps on
	// successive blocks, in seconds.
	MaxTimestampIncrement int64

	// ApprovedUpgrades describes the upgrade proposals that this protocol
	// implementation will vote for, along with their delay value
	// (in rounds).  A delay value of zero is the same as a delay of
	// DefaultUpgradeWaitRounds.
	ApprovedUpgrades map[protocol.ConsensusVersion]uint64

	// MinBalance specifies the minimum balance that can appear in
	// an account.  To spend money below MinBalance requires issuing
	// an account-closing transaction, which transfers all of the
	// money from the account, and deletes the account.
	MinBalance uint64

	// MinTxnFee specifies the minimum fee allowed on a transaction.
	// A minimum fee is necessary to prevent DoS. In some sense this is
	// a way of making the spender subsidize the cost of storing this transaction.
	MinTxnFee uint64

	// MinTxnAmount specifies the minimum amount, in MicroAlgos, that the
	// payment helpers will accept for a non-closing payment.
	MinTxnAmount uint64

	// RewardUnit specifies the number of MicroAlgos corresponding to one reward
	// unit.
	RewardUnit uint64

	// RewardsRateRefreshInterval is the number of rounds after which the
	// rewards level is recomputed for the next RewardsRateRefreshInterval rounds.
	RewardsRateRefreshInterval uint64

	// MaxTxGroupSize is the maximum number of transactions that may appear
	// together in an atomic transaction group.
	MaxTxGroupSize int

	// SupportRekeying indicates support for account rekeying (the RekeyTo and AuthAddr fields)
	SupportRekeying bool

	// MaxAssetsPerAccount specifies the maximum number of assets
	// that an account can own.
	MaxAssetsPerAccount int

	// MaxAssetNameBytes is the maximum length of the asset name.
	MaxAssetNameBytes int

	// MaxAssetUnitNameBytes is the maximum length of the asset unit name.
	MaxAssetUnitNameBytes int

	// MaxAssetURLBytes is the maximum length of the asset URL.
	MaxAssetURLBytes int

	// MaxAssetDecimals is the maximum number of digits to the right of the
	// decimal place in an asset's unit representation.
	MaxAssetDecimals uint32

	// MaxAppArgs is the maximum number of arguments to an application call
	MaxAppArgs int

	// MaxAppTotalArgLen is the maximum total length of the arguments to an
	// application call, in bytes
	MaxAppTotalArgLen int

	// MaxAppProgramLen is the maximum length of an application's approval or
	// clear state program, in bytes
	MaxAppProgramLen int

	// MaxAppTotalProgramLen is the maximum total length of an application's
	// approval and clear state programs combined, in bytes
	MaxAppTotalProgramLen int

	// MaxExtraAppProgramPages extra length for application program in pages.
	// A page is MaxAppProgramLen bytes
	MaxExtraAppProgramPages int

	// MaxAppTxnAccounts is the maximum number of accounts that an application
	// call can reference
	MaxAppTxnAccounts int

	// MaxAppTxnForeignApps is the maximum number of foreign applications that
	// an application call can reference
	MaxAppTxnForeignApps int

	// MaxAppTxnForeignAssets is the maximum number of foreign assets that an
	// application call can reference
	MaxAppTxnForeignAssets int

	// MaxAppTotalTxnReferences is the maximum number of accounts, foreign
	// apps, and foreign assets that an application call can reference, combined
	MaxAppTotalTxnReferences int

	// MaxLocalSchemaEntries is the maximum number of combined uint64 and
	// byteslice values that may be stored per account in an application's
	// local key/value store
	MaxLocalSchemaEntries uint64

	// MaxGlobalSchemaEntries is the maximum number of combined uint64 and
	// byteslice values that may be stored in an application's global
	// key/value store
	MaxGlobalSchemaEntries uint64
}

// ConsensusProtocols defines a set of supported protocol versions and their
// corresponding parameters.
type ConsensusProtocols map[protocol.ConsensusVersion]ConsensusParams

// Consensus tracks the protocol-level settings for different versions of the
// consensus protocol.
var Consensus ConsensusProtocols

// DeepCopy creates a deep copy of a consensus protocols map.
func (cp ConsensusProtocols) DeepCopy() ConsensusProtocols {
	staticConsensus := make(ConsensusProtocols)
	for consensusVersion, consensusParams := range cp {
		// recreate the ApprovedUpgrades map since we don't want to modify the original one.
		consensusParams.ApprovedUpgrades = maps.Clone(consensusParams.ApprovedUpgrades)
		staticConsensus[consensusVersion] = consensusParams
	}
	return staticConsensus
}

// Merge merges a configurable consensus on top of the existing consensus protocol and return
// a new consensus protocol without modify any of the incoming structures.
func (cp ConsensusProtocols) Merge(configurableConsensus ConsensusProtocols) ConsensusProtocols {
	staticConsensus := cp.DeepCopy()

	for consensusVersion, consensusParams := range configurableConsensus {
		if consensusParams.ApprovedUpgrades == nil {
			// if we were provided with an empty ConsensusParams, delete the existing reference to this consensus version
			for cVer, cParam := range staticConsensus {
				if cVer == consensusVersion {
					delete(staticConsensus, cVer)
				} else {
					// delete upgrade to deleted version
					delete(cParam.ApprovedUpgrades, consensusVersion)
				}
			}
		} else {
			// need to add/update entry
			staticConsensus[consensusVersion] = consensusParams
		}
	}

	return staticConsensus
}

// initConsensusProtocols defines the supported consensus protocol versions and
// their parameters.
func initConsensusProtocols() {
	v22 := ConsensusParams{
		UpgradeVoteRounds:        10000,
		UpgradeThreshold:         9000,
		DefaultUpgradeWaitRounds: 10000,
		MinUpgradeWaitRounds:     10000,
		MaxUpgradeWaitRounds:     150000,
		MaxVersionStringLen:      128,

		MaxTxnBytesPerBlock: 5242880,
		MaxTxnNoteBytes:     1024,
		MaxTxnLife:          1000,

		MaxTimestampIncrement: 25,

		MinBalance:   100000,
		MinTxnFee:    1000,
		MinTxnAmount: 1000000,
		RewardUnit:   1e6,

		RewardsRateRefreshInterval: 5e5,

		MaxTxGroupSize:  16,
		SupportRekeying: true,

		MaxAssetsPerAccount:   1000,
		MaxAssetNameBytes:     32,
		MaxAssetUnitNameBytes: 8,
		MaxAssetURLBytes:      96,
		MaxAssetDecimals:      19,

		MaxAppArgs:               16,
		MaxAppTotalArgLen:        2048,
		MaxAppProgramLen:         2048,
		MaxAppTotalProgramLen:    4096,
		MaxExtraAppProgramPages:  3,
		MaxAppTxnAccounts:        4,
		MaxAppTxnForeignApps:     8,
		MaxAppTxnForeignAssets:   8,
		MaxAppTotalTxnReferences: 8,
		MaxLocalSchemaEntries:    16,
		MaxGlobalSchemaEntries:   64,

		ApprovedUpgrades: map[protocol.ConsensusVersion]uint64{},
	}
	Consensus[protocol.ConsensusV22] = v22
}

func init() {
	Consensus = make(ConsensusProtocols)

	initConsensusProtocols()
}
