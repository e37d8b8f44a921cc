package bencode

import (
	"math/big"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
)

// FromJSON converts a JSON document into a value.
// Objects become dictionaries, arrays become lists, strings become byte strings
// and integral numbers become integers. Other JSON types have no bencode
// counterpart and are rejected.
func FromJSON(data []byte) (Value, error) {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid json")
	}

	return parseJSONValue(dataType, value)
}

func parseJSONValue(dataType jsonparser.ValueType, data []byte) (Value, error) {
	switch dataType {
	case jsonparser.Number:
		i, err := jsonparser.ParseInt(data)
		if err == nil {
			return NewIntegerValue(i), nil
		}

		// too big for an int64, or not an integer at all
		bx, ok := new(big.Int).SetString(string(data), 10)
		if !ok {
			return nil, errors.Errorf("cannot convert json number %s to an integer", data)
		}
		return NewBigIntegerValue(bx), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, errors.Wrap(err, "invalid json string")
		}
		return NewStringValue(s), nil
	case jsonparser.Array:
		var values []Value
		var innerErr error
		_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
			if innerErr != nil {
				return
			}
			if err != nil {
				innerErr = err
				return
			}

			v, err := parseJSONValue(dataType, value)
			if err != nil {
				innerErr = err
				return
			}
			values = append(values, v)
		})
		if innerErr != nil {
			return nil, innerErr
		}
		if err != nil {
			return nil, errors.Wrap(err, "invalid json array")
		}
		return &ListValue{values: values}, nil
	case jsonparser.Object:
		var entries []DictEntry
		err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, _ int) error {
			v, err := parseJSONValue(dataType, value)
			if err != nil {
				return errors.Wrapf(err, "key %q", key)
			}
			entries = append(entries, DictEntry{Key: string(key), Value: v})
			return nil
		})
		if err != nil {
			return nil, err
		}
		return newDictValue(entries, LastKeyWins), nil
	}

	return nil, errors.Errorf("unsupported json type %s", dataType)
}
