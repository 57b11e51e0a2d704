// Copyright (C) 2019-2021 Algorand, Inc.
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

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/winder/go-algorand-lib/test/partitiontest"
)

func TestHashFactoryCreatingNewHashes(t *testing.T) {
	partitiontest.PartitionTest(t)
	a := require.New(t)

	hfactory := HashFactory{HashType: Sha512_256}
	h := hfactory.NewHash()
	a.NotNil(h)
	a.Equal(Sha512_256Size, h.Size())

	hfactory = HashFactory{HashType: Sumhash}
	h = hfactory.NewHash()
	a.NotNil(h)
	a.Equal(SumhashDigestSize, h.Size())

	hfactory = HashFactory{HashType: Sha256}
	h = hfactory.NewHash()
	a.NotNil(h)
	a.Equal(Sha256Size, h.Size())

	hfactory = HashFactory{HashType: MaxHashType}
	a.Error(hfactory.Validate())
	h = hfactory.NewHash()
	a.Equal(0, h.Size())
	_, err := h.Write([]byte{0x1})
	a.Error(err)
}

func TestHashSum(t *testing.T) {
	partitiontest.PartitionTest(t)
	a := require.New(t)

	hfactory := HashFactory{HashType: Sha512_256}
	h := hfactory.NewHash()
	a.NotNil(h)
	a.Equal(Sha512_256Size, h.Size())

	msg := TestingHashable{Data: []byte("test: testing hashable")}
	dgst := HashObj(msg)
	a.Equal(GenericHashObj(h, msg), dgst[:])
}

func TestHashTypeRoundTrip(t *testing.T) {
	partitiontest.PartitionTest(t)
	a := require.New(t)

	for ht := Sha512_256; ht < MaxHashType; ht++ {
		a.NoError(ht.Validate())
		back, err := UnmarshalHashType(ht.String())
		a.NoError(err)
		a.Equal(ht, back)
	}

	_, err := UnmarshalHashType("sha3")
	a.Error(err)
}
