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

	"github.com/winder/go-algorand-lib/crypto"
	"github.com/winder/go-algorand-lib/crypto/merklesignature"
	"github.com/winder/go-algorand-lib/data/basics"
)

var errKeyregTxnFirstVotingRoundGreaterThanLastVotingRound = errors.New("transaction first voting round need to be less than its last voting round")
var errKeyregTxnNonCoherentVotingKeys = errors.New("the following transaction fields need to be clear/set together : votekey, selkey, votekd")
var errKeyregTxnOfflineTransactionHasVotingRounds = errors.New("on going offline key registration transaction, the vote first and vote last fields should not be set")
var errKeyregTxnGoingOnlineWithNonParticipating = errors.New("transaction tries to register keys to go online, but nonparticipatory flag is set")
var errKeyregTxnGoingOnlineWithZeroVoteLast = errors.New("transaction tries to register keys to go online, but vote last is set to zero")
var errKeyregTxnGoingOnlineWithFirstVoteAfterLastValid = errors.New("transaction tries to register keys to go online, but first voting round is beyond the round after last valid round")

// KeyregTxnFields captures the fields used for key registration transactions.
type KeyregTxnFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	VotePK           crypto.OneTimeSignatureVerifier `codec:"votekey"`
	SelectionPK      crypto.VRFVerifier              `codec:"selkey"`
	StateProofPK     merklesignature.Commitment      `codec:"sprfkey"`
	VoteFirst        basics.Round                    `codec:"votefst"`
	VoteLast         basics.Round                    `codec:"votelst"`
	VoteKeyDilution  uint64                          `codec:"votekd"`
	Nonparticipation bool                            `codec:"nonpart"`
}

// wellFormed performs stateless checks on the KeyReg transaction
func (keyreg KeyregTxnFields) wellFormed(header Header) error {
	if keyreg.VoteLast < keyreg.VoteFirst {
		return errKeyregTxnFirstVotingRoundGreaterThanLastVotingRound
	}

	// The trio of [VotePK, SelectionPK, VoteKeyDilution] needs to be all zeroes or all filled.
	if !((keyreg.VotePK.IsEmpty() && keyreg.SelectionPK.IsEmpty() && keyreg.VoteKeyDilution == 0) ||
		(!keyreg.VotePK.IsEmpty() && !keyreg.SelectionPK.IsEmpty() && keyreg.VoteKeyDilution != 0)) {
		return errKeyregTxnNonCoherentVotingKeys
	}

	// if it is a going offline transaction
	if keyreg.VoteKeyDilution == 0 {
		// check that we don't have any VoteFirst/VoteLast fields.
		if keyreg.VoteFirst != 0 || keyreg.VoteLast != 0 {
			return errKeyregTxnOfflineTransactionHasVotingRounds
		}
	} else {
		// going online
		if keyreg.VoteLast == 0 {
			return errKeyregTxnGoingOnlineWithZeroVoteLast
		}
		if keyreg.VoteFirst > header.LastValid+1 {
			return errKeyregTxnGoingOnlineWithFirstVoteAfterLastValid
		}
		// if nonparticipatory flag is on, then this transaction is invalid.
		if keyreg.Nonparticipation {
			return errKeyregTxnGoingOnlineWithNonParticipating
		}
	}

	return nil
}
