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

// OneTimeSignatureVerifier is used to identify the holder of
// OneTimeSignatureSecrets, the two-level ephemeral signature scheme used
// for consensus participation.
type OneTimeSignatureVerifier ed25519PublicKey

// IsEmpty returns true if the verifier is a zero value.
func (v OneTimeSignatureVerifier) IsEmpty() bool {
	return v == OneTimeSignatureVerifier{}
}
