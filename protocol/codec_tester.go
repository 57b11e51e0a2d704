// Copyright (C) 2019-2025 Algorand, Inc.
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

import (
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/algorand/go-deadlock"
	"github.com/stretchr/testify/require"

	"github.com/winder/go-algorand-lib/test/partitiontest"
)

func oneOf(n int) bool {
	return (rand.Int() % n) == 0
}

type randomizeObjectCfg struct {
	// ZeroesEveryN will increase the chance of zero values being generated.
	ZeroesEveryN int
	// MaxCollectionLen bounds randomized slice/map lengths when positive.
	MaxCollectionLen int
}

// RandomizeObjectOption is an option for RandomizeObject
type RandomizeObjectOption func(*randomizeObjectCfg)

// RandomizeObjectWithZeroesEveryN sets the chance of zero values being generated (one in n)
func RandomizeObjectWithZeroesEveryN(n int) RandomizeObjectOption {
	return func(cfg *randomizeObjectCfg) { cfg.ZeroesEveryN = n }
}

// RandomizeObjectWithMaxCollectionLen limits randomized slice/map lengths to n (when n>0).
func RandomizeObjectWithMaxCollectionLen(n int) RandomizeObjectOption {
	return func(cfg *randomizeObjectCfg) {
		if n > 0 {
			cfg.MaxCollectionLen = n
		}
	}
}

// RandomizeObject returns a random object of the same type as template
func RandomizeObject(template interface{}, opts ...RandomizeObjectOption) (interface{}, error) {
	cfg := randomizeObjectCfg{}
	for _, opt := range opts {
		opt(&cfg)
	}
	tt := reflect.TypeOf(template)
	if tt.Kind() != reflect.Ptr {
		return nil, fmt.Errorf("RandomizeObject: must be ptr")
	}
	v := reflect.New(tt.Elem())
	changes := int(^uint(0) >> 1)
	err := randomizeValue(v.Elem(), 0, tt.String(), &changes, cfg, make(map[reflect.Type]bool))
	return v.Interface(), err
}

// RandomizeObjectField returns a random object of the same type as template where a single field was modified.
func RandomizeObjectField(template interface{}, opts ...RandomizeObjectOption) (interface{}, error) {
	cfg := randomizeObjectCfg{}
	for _, opt := range opts {
		opt(&cfg)
	}
	tt := reflect.TypeOf(template)
	if tt.Kind() != reflect.Ptr {
		return nil, fmt.Errorf("RandomizeObject: must be ptr")
	}
	v := reflect.New(tt.Elem())
	changes := 1
	err := randomizeValue(v.Elem(), 0, tt.String(), &changes, cfg, make(map[reflect.Type]bool))
	return v.Interface(), err
}

var printWarningOnce deadlock.Mutex
var warningMessages map[string]bool

func printWarning(warnMsg string) {
	printWarningOnce.Lock()
	defer printWarningOnce.Unlock()
	if warningMessages == nil {
		warningMessages = make(map[string]bool)
	}
	if !warningMessages[warnMsg] {
		warningMessages[warnMsg] = true
		fmt.Printf("%s\n", warnMsg)
	}
}

func randomizeValue(v reflect.Value, depth int, datapath string, remainingChanges *int, cfg randomizeObjectCfg, seenTypes map[reflect.Type]bool) error {
	if *remainingChanges == 0 {
		return nil
	}
	if depth != 0 && cfg.ZeroesEveryN > 0 && oneOf(cfg.ZeroesEveryN) {
		// Leave zero value
		return nil
	}

	switch v.Kind() {
	case reflect.Uint, reflect.Uintptr, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if strings.HasSuffix(v.Type().PkgPath(), "go-algorand-lib/crypto") && v.Type().Name() == "HashType" {
			// generate value that will pass HashType.Validate()
			v.SetUint(rand.Uint64() % 3) // 3 is crypto.MaxHashType
		} else {
			v.SetUint(rand.Uint64())
		}
		*remainingChanges--
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(rand.Uint64()))
		*remainingChanges--
	case reflect.String:
		var buf []byte
		var len int
		if strings.HasSuffix(v.Type().PkgPath(), "go-algorand-lib/protocol") && v.Type().Name() == "TxType" {
			len = rand.Int()%6 + 1
		} else {
			len = rand.Int() % 64
		}
		for i := 0; i < len; i++ {
			buf = append(buf, byte(rand.Uint32()))
		}
		v.SetString(string(buf))
		*remainingChanges--
	case reflect.Ptr:
		v.Set(reflect.New(v.Type().Elem()))
		err := randomizeValue(reflect.Indirect(v), depth+1, datapath, remainingChanges, cfg, seenTypes)
		if err != nil {
			return err
		}
	case reflect.Struct:
		st := v.Type()
		if !seenTypes[st] {
			seenTypes[st] = true
		} else {
			return nil
		}
		fieldsOrder := rand.Perm(v.NumField())
		for i := 0; i < v.NumField(); i++ {
			fieldIdx := fieldsOrder[i]
			f := st.Field(fieldIdx)

			if f.PkgPath != "" && !f.Anonymous {
				// unexported
				continue
			}
			err := randomizeValue(v.Field(fieldIdx), depth+1, datapath+"/"+f.Name, remainingChanges, cfg, seenTypes)
			if err != nil {
				return err
			}
			if *remainingChanges == 0 {
				break
			}
			*remainingChanges--
		}
	case reflect.Array:
		indicesOrder := rand.Perm(v.Len())
		for i := 0; i < v.Len(); i++ {
			err := randomizeValue(v.Index(indicesOrder[i]), depth+1, fmt.Sprintf("%s/%d", datapath, indicesOrder[i]), remainingChanges, cfg, seenTypes)
			if err != nil {
				return err
			}
			if *remainingChanges == 0 {
				break
			}
			*remainingChanges--
		}
	case reflect.Slice:
		// we don't want to allocate a slice with size of 0. This is because decoding and encoding this slice
		// will result in nil and not slice of size 0
		maxLen := 31
		if cfg.MaxCollectionLen > 0 {
			maxLen = min(maxLen, cfg.MaxCollectionLen)
		}
		l := rand.Intn(maxLen) + 1
		s := reflect.MakeSlice(v.Type(), l, l)
		indicesOrder := rand.Perm(l)
		for i := 0; i < l; i++ {
			err := randomizeValue(s.Index(indicesOrder[i]), depth+1, fmt.Sprintf("%s/%d", datapath, indicesOrder[i]), remainingChanges, cfg, seenTypes)
			if err != nil {
				return err
			}
			if *remainingChanges == 0 {
				break
			}
		}
		v.Set(s)
		*remainingChanges--
	case reflect.Bool:
		v.SetBool(rand.Uint32()%2 == 0)
		*remainingChanges--
	case reflect.Map:
		mt := v.Type()
		v.Set(reflect.MakeMap(mt))
		maxLen := 32
		if cfg.MaxCollectionLen > 0 {
			// preserve possibility of zero entries while capping positive lengths
			maxLen = min(maxLen, cfg.MaxCollectionLen+1)
		}
		l := rand.Intn(maxLen)
		indicesOrder := rand.Perm(l)
		for i := 0; i < l; i++ {
			mk := reflect.New(mt.Key())
			err := randomizeValue(mk.Elem(), depth+1, fmt.Sprintf("%s/%d", datapath, indicesOrder[i]), remainingChanges, cfg, seenTypes)
			if err != nil {
				return err
			}

			mv := reflect.New(mt.Elem())
			err = randomizeValue(mv.Elem(), depth+1, fmt.Sprintf("%s/%d", datapath, indicesOrder[i]), remainingChanges, cfg, seenTypes)
			if err != nil {
				return err
			}

			v.SetMapIndex(mk.Elem(), mv.Elem())
			if *remainingChanges == 0 {
				break
			}
		}
	default:
		return fmt.Errorf("unsupported object kind %v", v.Kind())
	}
	return nil
}

// EncodingTest checks that random values of the type of template survive
// an encode/decode/re-encode round trip with a stable canonical encoding,
// returning an error if there is a mismatch.
func EncodingTest(template interface{}) error {
	v0, err := RandomizeObject(template)
	if err != nil {
		return err
	}

	e1 := Encode(v0)

	v1 := reflect.New(reflect.TypeOf(template).Elem()).Interface()
	err = Decode(e1, v1)
	if err != nil {
		return err
	}

	// At this point, it might be that v0 differs from v1, because there
	// are multiple representations (e.g., an empty byte slice could be
	// either nil or a zero-length slice).  But the decoded value must
	// encode back to the exact same canonical bytes.

	e2 := Encode(v1)
	if !reflect.DeepEqual(e1, e2) {
		return fmt.Errorf("re-encoding mismatch for %v: %v != %v", v0, e1, e2)
	}

	return nil
}

// RunEncodingTest runs several iterations of encoding/decoding
// consistency testing of object type specified by template.
func RunEncodingTest(t *testing.T, template interface{}) {
	partitiontest.PartitionTest(t)
	for i := 0; i < 1000; i++ {
		err := EncodingTest(template)
		require.NoError(t, err)
	}
}
