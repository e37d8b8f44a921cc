package bencode

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chaisql/bencode/internal/encoding"
)

var _ Value = NewStringValue("")

// ByteStringValue is a bencode byte string. Its content is an arbitrary
// sequence of bytes and is not required to be valid UTF-8.
type ByteStringValue string

// NewByteStringValue returns a byte string holding a copy of x.
func NewByteStringValue(x []byte) ByteStringValue {
	return ByteStringValue(x)
}

// NewStringValue returns a byte string holding the bytes of s.
func NewStringValue(s string) ByteStringValue {
	return ByteStringValue(s)
}

func (v ByteStringValue) isValue() {}

// Type returns TypeByteString.
func (v ByteStringValue) Type() Type {
	return TypeByteString
}

// V returns the content as a string.
func (v ByteStringValue) V() any {
	return string(v)
}

// Len returns the number of bytes of the byte string.
func (v ByteStringValue) Len() int {
	return len(v)
}

// Bytes returns a copy of the content.
func (v ByteStringValue) Bytes() []byte {
	return []byte(v)
}

func (v ByteStringValue) Encode(dst []byte) []byte {
	return encoding.EncodeString(dst, string(v))
}

func (v ByteStringValue) encodedLen() int {
	return encoding.StringLen(len(v))
}

// String returns a quoted representation of the byte string.
// Byte strings that are not valid UTF-8 are written in hexadecimal,
// prefixed by \x.
func (v ByteStringValue) String() string {
	t, _ := v.MarshalText()
	return string(t)
}

func (v ByteStringValue) MarshalText() ([]byte, error) {
	if utf8.ValidString(string(v)) {
		return []byte(strconv.Quote(string(v))), nil
	}

	var sb strings.Builder
	sb.WriteString("\"\\x")
	sb.WriteString(hex.EncodeToString([]byte(v)))
	sb.WriteByte('"')
	return []byte(sb.String()), nil
}

// MarshalJSON writes the byte string as a JSON string if it is valid UTF-8,
// and as a base64 encoded JSON string otherwise.
func (v ByteStringValue) MarshalJSON() ([]byte, error) {
	return marshalJSONString(string(v))
}

func marshalJSONString(s string) ([]byte, error) {
	if utf8.ValidString(s) {
		return json.Marshal(s)
	}

	dst := make([]byte, base64.StdEncoding.EncodedLen(len(s))+2)
	dst[0] = '"'
	dst[len(dst)-1] = '"'
	base64.StdEncoding.Encode(dst[1:], []byte(s))
	return dst, nil
}
