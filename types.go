package bencode

import (
	"fmt"
	"math/big"
)

// Type represents the kind of a bencode value.
type Type uint8

// List of supported types.
const (
	TypeInteger Type = iota + 1
	TypeByteString
	TypeList
	TypeDict
)

func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "integer"
	case TypeByteString:
		return "byte string"
	case TypeList:
		return "list"
	case TypeDict:
		return "dictionary"
	}

	panic(fmt.Sprintf("unsupported type %#v", t))
}

// A Value is a decoded bencode value. It is implemented by
// IntegerValue, ByteStringValue, *ListValue and *DictValue only.
// Values are immutable.
type Value interface {
	// Type returns the kind of the value.
	Type() Type
	// V returns the value as a Go value: int64 or *big.Int for integers,
	// string for byte strings, []Value for lists and map[string]Value for
	// dictionaries.
	V() any
	// Encode appends the canonical encoding of the value to dst.
	Encode(dst []byte) []byte
	// String returns a human readable representation of the value.
	String() string
	MarshalJSON() ([]byte, error)

	isValue()
}

// AsInteger returns v as an IntegerValue. It panics if v is not an integer.
func AsInteger(v Value) IntegerValue {
	iv, ok := v.(IntegerValue)
	if !ok {
		panic(fmt.Sprintf("cannot use %s as integer", v.Type()))
	}

	return iv
}

// AsInt64 returns the integer held by v. It panics if v is not an integer
// or if it doesn't fit in an int64.
func AsInt64(v Value) int64 {
	x, ok := AsInteger(v).Int64()
	if !ok {
		panic(fmt.Errorf("value %s out of range for int64", v))
	}

	return x
}

// AsBigInt returns a copy of the integer held by v.
// It panics if v is not an integer.
func AsBigInt(v Value) *big.Int {
	return AsInteger(v).Big()
}

// AsByteString returns the content of v. It panics if v is not a byte string.
func AsByteString(v Value) string {
	bv, ok := v.(ByteStringValue)
	if !ok {
		panic(fmt.Sprintf("cannot use %s as byte string", v.Type()))
	}

	return string(bv)
}

// AsBytes returns a copy of the content of v. It panics if v is not a byte string.
func AsBytes(v Value) []byte {
	return []byte(AsByteString(v))
}

// AsList returns v as a list. It panics if v is not a list.
func AsList(v Value) *ListValue {
	lv, ok := v.(*ListValue)
	if !ok {
		panic(fmt.Sprintf("cannot use %s as list", v.Type()))
	}

	return lv
}

// AsDict returns v as a dictionary. It panics if v is not a dictionary.
func AsDict(v Value) *DictValue {
	dv, ok := v.(*DictValue)
	if !ok {
		panic(fmt.Sprintf("cannot use %s as dictionary", v.Type()))
	}

	return dv
}
