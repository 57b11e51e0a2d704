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

package basics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/winder/go-algorand-lib/test/partitiontest"
)

// genStateSchema generates an arbitrary StateSchema.
func genStateSchema() *rapid.Generator[StateSchema] {
	return rapid.Custom(func(t *rapid.T) StateSchema {
		return StateSchema{
			NumUint:      rapid.Uint64().Draw(t, "nui"),
			NumByteSlice: rapid.Uint64().Draw(t, "nbs"),
		}
	})
}

func TestStateSchemaNumEntries(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := require.New(t)

	schema := StateSchema{NumUint: 3, NumByteSlice: 4}
	a.Equal(uint64(7), schema.NumEntries())

	// saturates instead of wrapping
	schema = StateSchema{NumUint: math.MaxUint64, NumByteSlice: 1}
	a.Equal(uint64(math.MaxUint64), schema.NumEntries())
}

func TestStateSchemaAddSchema(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		s1 := genStateSchema().Draw(t, "s1")
		s2 := genStateSchema().Draw(t, "s2")

		sum := s1.AddSchema(s2)
		require.Equal(t, AddSaturate(s1.NumUint, s2.NumUint), sum.NumUint)
		require.Equal(t, AddSaturate(s1.NumByteSlice, s2.NumByteSlice), sum.NumByteSlice)

		// commutative
		require.Equal(t, sum, s2.AddSchema(s1))
	})
}
