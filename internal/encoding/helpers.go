package encoding

import (
	"github.com/cockroachdb/errors"
)

// Reasons returned by the scanners. Callers translate them into
// their own error kinds.
var (
	ErrTruncated     = errors.New("unexpected end of input")
	ErrEmptyDigits   = errors.New("empty digit sequence")
	ErrInvalidDigit  = errors.New("invalid digit")
	ErrLeadingZero   = errors.New("leading zero")
	ErrNegativeZero  = errors.New("negative zero")
	ErrLengthTooLong = errors.New("length out of range")
)

// scanDigits returns the index of the first byte of b, starting at i,
// that is not a digit.
func scanDigits(b []byte, i int) int {
	for i < len(b) && IsDigit(b[i]) {
		i++
	}

	return i
}

// digitsLen returns the number of decimal digits needed to write n.
func digitsLen(n uint64) int {
	l := 1
	for n >= 10 {
		n /= 10
		l++
	}
	return l
}

// IntLen returns the size of the integer token representing n.
func IntLen(n int64) int {
	if n < 0 {
		// -MinInt64 overflows int64 but not uint64
		return 3 + digitsLen(uint64(-(n+1))+1)
	}

	return 2 + digitsLen(uint64(n))
}

// StringLen returns the size of the byte string token holding l bytes.
func StringLen(l int) int {
	return digitsLen(uint64(l)) + 1 + l
}
