package bencode

// Encode returns the canonical encoding of v.
func Encode(v Value) []byte {
	return v.Encode(make([]byte, 0, EncodedLen(v)))
}

// AppendValue appends the canonical encoding of v to dst
// and returns the extended buffer.
func AppendValue(dst []byte, v Value) []byte {
	return v.Encode(dst)
}

// EncodedLen returns the size of the canonical encoding of v.
func EncodedLen(v Value) int {
	switch t := v.(type) {
	case IntegerValue:
		return t.encodedLen()
	case ByteStringValue:
		return t.encodedLen()
	case *ListValue:
		return t.encodedLen()
	case *DictValue:
		return t.encodedLen()
	}

	panic("bencode: unsupported value")
}
