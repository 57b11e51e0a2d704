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
	"github.com/algorand/go-codec/codec"

	"github.com/winder/go-algorand-lib/config"
)

// MicroAlgoConversionFactor is the number of MicroAlgos in one Algo.
const MicroAlgoConversionFactor = 1e6

// MicroAlgos is our unit of currency.  It is wrapped in a struct to nudge
// developers to use an overflow-checking library for any arithmetic.
type MicroAlgos struct {
	Raw uint64
}

// LessThan implements arithmetic comparison for MicroAlgos
func (a MicroAlgos) LessThan(b MicroAlgos) bool {
	return a.Raw < b.Raw
}

// GreaterThan implements arithmetic comparison for MicroAlgos
func (a MicroAlgos) GreaterThan(b MicroAlgos) bool {
	return a.Raw > b.Raw
}

// IsZero implements arithmetic comparison for MicroAlgos
func (a MicroAlgos) IsZero() bool {
	return a.Raw == 0
}

// ToUint64 converts the amount of algos to uint64
func (a MicroAlgos) ToUint64() uint64 {
	return a.Raw
}

// RewardUnits returns the number of reward units in some number of algos
func (a MicroAlgos) RewardUnits(proto config.ConsensusParams) uint64 {
	return a.Raw / proto.RewardUnit
}

// We generate our own encoders and decoders for MicroAlgos
// because we want it to appear as an integer, even though
// we represent it as a single-element struct.

// CodecEncodeSelf implements codec.Selfer to encode MicroAlgos as a simple int
func (a MicroAlgos) CodecEncodeSelf(enc *codec.Encoder) {
	enc.MustEncode(a.Raw)
}

// CodecDecodeSelf implements codec.Selfer to decode MicroAlgos as a simple int
func (a *MicroAlgos) CodecDecodeSelf(dec *codec.Decoder) {
	dec.MustDecode(&a.Raw)
}

// Algos is a convenience function so that whole Algos can be written easily. It
// panics on overflow because it should only be used for constants - things that
// are best human-readable in source code - not used on arbitrary values from,
// say, transactions.
func Algos(algos uint64) MicroAlgos {
	if algos > 18_446_744_073_709 { // MaxUint64 / 1e6
		panic(algos)
	}
	return MicroAlgos{Raw: algos * MicroAlgoConversionFactor}
}

// Micros represents a number of millionths, used with MulMicros to scale
// MicroAlgos amounts by a fraction with six decimal digits of precision.
type Micros uint64

// Round represents a protocol round index
type Round uint64

// SubSaturate subtracts x from round with saturation on underflow.
func (round Round) SubSaturate(x Round) Round {
	if x > round {
		return 0
	}
	return round - x
}

// AddSaturate adds x to round with saturation on overflow.
func (round Round) AddSaturate(x Round) Round {
	if round+x < round {
		return ^Round(0)
	}
	return round + x
}

// RoundUpToMultipleOf rounds up round to the next multiple of n.
func (round Round) RoundUpToMultipleOf(n Round) Round {
	return (round + n - 1) / n * n
}

// RoundDownToMultipleOf rounds down round to a multiple of n.
func (round Round) RoundDownToMultipleOf(n Round) Round {
	return (round / n) * n
}

// SubSaturate32 subtracts 2 uint32 values and returns the result. In case of
// an underflow, it returns 0.
func SubSaturate32(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}

// AddSaturate32 adds 2 uint32 values and returns the result. In case of an
// overflow, it returns math.MaxUint32.
func AddSaturate32(a, b uint32) uint32 {
	sum := a + b
	if sum < a {
		return ^uint32(0)
	}
	return sum
}

// AssetIndex is the unique integer index of an asset that can be used to look
// up the creator of the asset, whose balance record contains the AssetParams
type AssetIndex uint64

// AppIndex is the unique integer index of an application that can be used to
// look up the creator of the application, whose balance record contains the
// AppParams
type AppIndex uint64

// CreatableIndex represents either an AssetIndex or AppIndex, which come from
// the same namespace of indices as each other (both assets and apps are
// "creatables")
type CreatableIndex uint64

// CreatableType is an enum representing whether or not a given creatable is an
// application or an asset
type CreatableType uint64

const (
	// AssetCreatable is the CreatableType corresponding to assets
	// This value must be 0 to align with the applications database
	// upgrade. At migration time, we set the default 'ctype' column of the
	// creators table to 0 so that existing assets have the correct type.
	AssetCreatable CreatableType = 0

	// AppCreatable is the CreatableType corresponds to apps
	AppCreatable CreatableType = 1
)
