package encoding

import (
	"math/big"
	"strconv"
)

// EncodeInt appends the integer token of n to dst.
func EncodeInt(dst []byte, n int64) []byte {
	dst = append(dst, IntegerValue)
	dst = strconv.AppendInt(dst, n, 10)
	return append(dst, End)
}

// EncodeBigInt appends the integer token of n to dst.
func EncodeBigInt(dst []byte, n *big.Int) []byte {
	dst = append(dst, IntegerValue)
	dst = n.Append(dst, 10)
	return append(dst, End)
}

// ScanInt reads the integer token at the start of b, which must begin with
// the IntegerValue marker. It returns the digits of the integer,
// including the sign, and the number of bytes of the token.
// On failure, n is the position in b at which the problem was found.
func ScanInt(b []byte) (digits []byte, n int, err error) {
	i := 1
	if i < len(b) && b[i] == Minus {
		i++
	}
	start := i

	i = scanDigits(b, i)
	if i == len(b) {
		return nil, i, ErrTruncated
	}
	if b[i] != End {
		return nil, i, ErrInvalidDigit
	}
	if i == start {
		return nil, i, ErrEmptyDigits
	}

	if b[start] == '0' {
		if i-start > 1 {
			return nil, start, ErrLeadingZero
		}
		if start > 1 {
			return nil, 1, ErrNegativeZero
		}
	}

	return b[1:i], i + 1, nil
}

// ParseInt converts digits returned by ScanInt. If the number doesn't fit in
// an int64, it is returned as a big.Int and x must be ignored.
func ParseInt(digits []byte) (x int64, bx *big.Int) {
	x, err := strconv.ParseInt(string(digits), 10, 64)
	if err == nil {
		return x, nil
	}

	// ScanInt already validated the digits, only the range can be wrong.
	bx, _ = new(big.Int).SetString(string(digits), 10)
	return 0, bx
}
