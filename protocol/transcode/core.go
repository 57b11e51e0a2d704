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

package transcode

import (
	"encoding/base32"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/winder/go-algorand-lib/protocol"
)

// Transcode converts between msgpack and JSON encodings of hierarchical
// data, reading from in and writing to out.
//
// When converting msgpack to JSON, binary blobs that appear as values in
// string-keyed maps are encoded as base64 (or base32, with base32Encoding)
// strings, and the key is tagged with a ":b64" (":b32") suffix so that the
// conversion can be reversed.  strictJSON additionally coerces non-string
// map keys to strings on decode.
func Transcode(mpToJSON bool, base32Encoding bool, strictJSON bool, in io.Reader, out io.Writer) error {
	if mpToJSON {
		var obj interface{}
		err := protocol.DecodeStream(in, &obj)
		if err != nil {
			return fmt.Errorf("decoding msgpack: %v", err)
		}

		obj, err = mpToJSONConvert(obj, base32Encoding)
		if err != nil {
			return err
		}

		if strictJSON {
			_, err = out.Write(protocol.EncodeJSONStrict(obj))
		} else {
			_, err = out.Write(protocol.EncodeJSON(obj))
		}
		return err
	}

	var obj interface{}
	err := protocol.DecodeJSON(readAll(in), &obj)
	if err != nil {
		return fmt.Errorf("decoding JSON: %v", err)
	}

	obj, err = jsonToMpConvert(obj)
	if err != nil {
		return err
	}

	protocol.EncodeStream(out, obj)
	return nil
}

func readAll(in io.Reader) []byte {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil
	}
	return data
}

const b64Suffix = ":b64"
const b32Suffix = ":b32"

// mpToJSONConvert rewrites a decoded msgpack object so that it can be
// represented in JSON: binary blob values under string map keys become
// encoded strings with a tagged key.
func mpToJSONConvert(obj interface{}, base32Encoding bool) (interface{}, error) {
	switch v := obj.(type) {
	case map[interface{}]interface{}:
		res := make(map[interface{}]interface{})
		for key, val := range v {
			skey, isString := key.(string)
			if bin, isBlob := val.([]byte); isString && isBlob {
				if base32Encoding {
					res[skey+b32Suffix] = base32.StdEncoding.EncodeToString(bin)
				} else {
					res[skey+b64Suffix] = base64.StdEncoding.EncodeToString(bin)
				}
				continue
			}

			conv, err := mpToJSONConvert(val, base32Encoding)
			if err != nil {
				return nil, err
			}
			res[key] = conv
		}
		return res, nil

	case []interface{}:
		res := make([]interface{}, len(v))
		for i, elem := range v {
			conv, err := mpToJSONConvert(elem, base32Encoding)
			if err != nil {
				return nil, err
			}
			res[i] = conv
		}
		return res, nil

	case []byte:
		// A blob outside of a string-keyed map cannot be tagged; encode
		// it as a bare base64 string (not reversible by this tool).
		return base64.StdEncoding.EncodeToString(v), nil

	default:
		return obj, nil
	}
}

// jsonToMpConvert reverses mpToJSONConvert: map keys carrying an encoding
// suffix have their values decoded back into binary blobs.
func jsonToMpConvert(obj interface{}) (interface{}, error) {
	switch v := obj.(type) {
	case map[interface{}]interface{}:
		res := make(map[interface{}]interface{})
		for key, val := range v {
			skey, isString := key.(string)
			if isString && strings.HasSuffix(skey, b64Suffix) {
				sval, ok := val.(string)
				if !ok {
					return nil, fmt.Errorf("value under key %s is not a string", skey)
				}
				bin, err := base64.StdEncoding.DecodeString(sval)
				if err != nil {
					return nil, fmt.Errorf("decoding base64 under key %s: %v", skey, err)
				}
				res[strings.TrimSuffix(skey, b64Suffix)] = bin
				continue
			}
			if isString && strings.HasSuffix(skey, b32Suffix) {
				sval, ok := val.(string)
				if !ok {
					return nil, fmt.Errorf("value under key %s is not a string", skey)
				}
				bin, err := base32.StdEncoding.DecodeString(sval)
				if err != nil {
					return nil, fmt.Errorf("decoding base32 under key %s: %v", skey, err)
				}
				res[strings.TrimSuffix(skey, b32Suffix)] = bin
				continue
			}

			conv, err := jsonToMpConvert(val)
			if err != nil {
				return nil, err
			}
			res[key] = conv
		}
		return res, nil

	case []interface{}:
		res := make([]interface{}, len(v))
		for i, elem := range v {
			conv, err := jsonToMpConvert(elem)
			if err != nil {
				return nil, err
			}
			res[i] = conv
		}
		return res, nil

	default:
		return obj, nil
	}
}
