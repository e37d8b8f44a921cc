package encoding

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// EncodeString appends the byte string token of s to dst.
func EncodeString(dst []byte, s string) []byte {
	dst = strconv.AppendInt(dst, int64(len(s)), 10)
	dst = append(dst, LengthSeparator)
	return append(dst, s...)
}

// EncodeBytes appends the byte string token of x to dst.
func EncodeBytes(dst []byte, x []byte) []byte {
	dst = strconv.AppendInt(dst, int64(len(x)), 10)
	dst = append(dst, LengthSeparator)
	return append(dst, x...)
}

// ScanLength reads the length prefix of the byte string token at the start of b,
// up to and including the separator. It returns the declared length and
// the number of bytes of the prefix. It doesn't check that the content is there.
// On failure, n is the position in b at which the problem was found.
func ScanLength(b []byte) (l int, n int, err error) {
	i := scanDigits(b, 0)
	if i == len(b) {
		return 0, i, ErrTruncated
	}
	if b[i] != LengthSeparator {
		return 0, i, ErrInvalidDigit
	}
	if i == 0 {
		return 0, 0, ErrEmptyDigits
	}
	if b[0] == '0' && i > 1 {
		return 0, 0, ErrLeadingZero
	}

	l, err = strconv.Atoi(string(b[:i]))
	if err != nil {
		return 0, 0, errors.WithSecondaryError(ErrLengthTooLong, err)
	}

	return l, i + 1, nil
}

// EncodeListStart appends the list marker to dst.
func EncodeListStart(dst []byte) []byte {
	return append(dst, ListValue)
}

// EncodeDictStart appends the dictionary marker to dst.
func EncodeDictStart(dst []byte) []byte {
	return append(dst, DictValue)
}

// EncodeEnd closes a list or a dictionary.
func EncodeEnd(dst []byte) []byte {
	return append(dst, End)
}
