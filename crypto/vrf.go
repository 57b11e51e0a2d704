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

package crypto

// VrfPubkey is a public key used for verifying VRF proofs.
type VrfPubkey [32]byte

// VRFVerifier is a deprecated name for VrfPubkey
type VRFVerifier = VrfPubkey

// IsEmpty returns true if the verifier is a zero value.
func (pk VrfPubkey) IsEmpty() bool {
	return pk == VrfPubkey{}
}
