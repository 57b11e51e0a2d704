// Copyright (C) 2019-2024 Algorand, Inc.
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

package protocol

// ConsensusVersion is a string that identifies a version of the
// consensus protocol.
type ConsensusVersion string

// NetworkID identifies the unique algorand network for which the ledger is valid.
type NetworkID string

const (
	// ConsensusV22 allows tuning the upgrade delay.
	ConsensusV22 = ConsensusVersion("https://github.com/algorandfoundation/specs/tree/57016b942f6d97e6d4c0c4b09108bc7b63c86466")

	// ConsensusCurrentVersion is the latest version of the consensus
	// protocol supported by this library.
	ConsensusCurrentVersion = ConsensusV22
)
