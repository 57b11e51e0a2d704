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

	"github.com/winder/go-algorand-lib/test/partitiontest"
)

func TestOverflowAddSub(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := require.New(t)

	res, overflowed := OAdd(uint64(1), uint64(2))
	a.False(overflowed)
	a.Equal(uint64(3), res)

	_, overflowed = OAdd(uint64(math.MaxUint64), uint64(1))
	a.True(overflowed)

	res, overflowed = OSub(uint64(2), uint64(1))
	a.False(overflowed)
	a.Equal(uint64(1), res)

	_, overflowed = OSub(uint64(1), uint64(2))
	a.True(overflowed)

	res, overflowed = OMul(uint64(1)<<32, uint64(1)<<31)
	a.False(overflowed)
	a.Equal(uint64(1)<<63, res)

	_, overflowed = OMul(uint64(1)<<32, uint64(1)<<32)
	a.True(overflowed)
}

func TestOverflowTracker(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := require.New(t)

	var ot OverflowTracker
	a.Equal(uint64(3), ot.Add(1, 2))
	a.Equal(uint64(1), ot.Sub(2, 1))
	a.Equal(uint64(6), ot.Mul(2, 3))
	a.False(ot.Overflowed)

	ot.Add(math.MaxUint64, 1)
	a.True(ot.Overflowed)

	ot = OverflowTracker{}
	ot.Sub(0, 1)
	a.True(ot.Overflowed)
}

func TestSaturatingArithmetic(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := require.New(t)

	a.Equal(uint64(math.MaxUint64), AddSaturate(uint64(math.MaxUint64), uint64(1)))
	a.Equal(uint64(3), AddSaturate(uint64(1), uint64(2)))
	a.Equal(uint64(0), SubSaturate(uint64(1), uint64(2)))
	a.Equal(uint64(1), SubSaturate(uint64(2), uint64(1)))
	a.Equal(uint64(math.MaxUint64), MulSaturate(uint64(1)<<32, uint64(1)<<32))

	a.Equal(Round(math.MaxUint64), AddSaturate(Round(math.MaxUint64)-1, Round(2)))
}

func TestOverflowMicroAlgos(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := require.New(t)

	var ot OverflowTracker
	sum := ot.AddA(MicroAlgos{Raw: 1}, MicroAlgos{Raw: 2})
	a.Equal(MicroAlgos{Raw: 3}, sum)
	diff := ot.SubA(MicroAlgos{Raw: 2}, MicroAlgos{Raw: 1})
	a.Equal(MicroAlgos{Raw: 1}, diff)
	a.False(ot.Overflowed)

	ot.AddA(MicroAlgos{Raw: math.MaxUint64}, MicroAlgos{Raw: 1})
	a.True(ot.Overflowed)
}
