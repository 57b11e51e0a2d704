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

package passphrase

import (
	"crypto/sha512"
	"fmt"
	"strings"
)

const (
	bitsPerWord      = 11
	checksumLenBits  = 11
	keyLenBytes      = 32
	mnemonicLenWords = 25
	paddingZeros     = bitsPerWord - ((keyLenBytes * 8) % bitsPerWord)
)

func init() {
	// Sanity check the bit arithmetic the key<->word packing relies on.
	if mnemonicLenWords*bitsPerWord-checksumLenBits != keyLenBytes*8+paddingZeros {
		panic("cannot initialize passphrase library: invalid constants")
	}
}

// KeyToMnemonic converts a 32-byte key into a 25 word mnemonic. Each of the
// first 24 words encodes 11 bits of key data; the 25th word is an 11-bit
// checksum of the key.
func KeyToMnemonic(key []byte) (string, error) {
	if len(key) != keyLenBytes {
		return "", errWrongKeyLen
	}

	words := applyWords(toUint11Array(key), wordlist)
	words = append(words, checksum(key))
	return strings.Join(words, " "), nil
}

// MnemonicToKey converts a mnemonic generated by KeyToMnemonic back into the
// 32-byte key it encodes. It returns an error if the mnemonic does not have
// exactly 25 words, if any word is outside the vocabulary, or if the
// checksum word does not match the recovered key.
func MnemonicToKey(mnemonic string) ([]byte, error) {
	words := strings.Fields(mnemonic)
	if len(words) != mnemonicLenWords {
		return nil, errWrongMnemonicLen
	}

	// Map every word back to its vocabulary index up front so that an
	// unknown word is reported before any checksum complaint.
	indexes := make([]uint32, len(words))
	for i, w := range words {
		idx := indexOf(wordlist, w)
		if idx == -1 {
			return nil, fmt.Errorf("%s is not in the words list", w)
		}
		indexes[i] = uint32(idx)
	}

	// The checksum word is not key data.
	byteArr := toByteArray(indexes[:len(indexes)-1])

	// 24 words carry 264 bits while the key is only 256, so unpacking
	// yields a 33rd byte holding nothing but padding. It must be zero,
	// and it is dropped before checksumming.
	if len(byteArr) != keyLenBytes+1 {
		return nil, errWrongKeyLen
	}
	if byteArr[keyLenBytes] != 0 {
		return nil, errWrongChecksum
	}
	byteArr = byteArr[:keyLenBytes]

	if checksum(byteArr) != words[len(words)-1] {
		return nil, errWrongChecksum
	}

	return byteArr, nil
}

// toUint11Array repacks bytes into little-endian 11-bit chunks.
func toUint11Array(arr []byte) []uint32 {
	var buffer uint32
	var bits uint32
	var output []uint32

	for _, b := range arr {
		buffer |= uint32(b) << bits
		bits += 8
		if bits >= bitsPerWord {
			output = append(output, buffer&0x7ff)
			buffer >>= bitsPerWord
			bits -= bitsPerWord
		}
	}
	if bits != 0 {
		output = append(output, buffer&0x7ff)
	}
	return output
}

// toByteArray is the inverse of toUint11Array. Because 11 does not divide
// evenly into 8, the result can carry one trailing padding byte.
func toByteArray(arr []uint32) []byte {
	var buffer uint32
	var bits uint32
	var output []byte

	for _, w := range arr {
		buffer |= w << bits
		bits += bitsPerWord
		for bits >= 8 {
			output = append(output, byte(buffer&0xff))
			buffer >>= 8
			bits -= 8
		}
	}
	if bits != 0 {
		output = append(output, byte(buffer))
	}
	return output
}

func applyWords(arr []uint32, words []string) []string {
	res := make([]string, len(arr))
	for i, idx := range arr {
		res[i] = words[idx]
	}
	return res
}

func indexOf(arr []string, s string) int {
	for i, w := range arr {
		if w == s {
			return i
		}
	}
	return -1
}

// checksum returns the vocabulary word encoding the 11-bit checksum of data,
// taken from the first two bytes of its sha512/256 hash.
func checksum(data []byte) string {
	fullHash := sha512.Sum512_256(data)
	return applyWords(toUint11Array(fullHash[:2]), wordlist)[0]
}
