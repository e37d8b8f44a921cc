package bencode

import (
	"math/big"
	"strconv"

	"github.com/chaisql/bencode/internal/encoding"
	"golang.org/x/exp/constraints"
)

var _ Value = NewIntegerValue(0)

// IntegerValue is a bencode integer of arbitrary size.
// The zero value represents 0.
type IntegerValue struct {
	x int64
	// bx is only set when the value doesn't fit in an int64.
	bx *big.Int
}

// NewIntegerValue returns an integer value.
func NewIntegerValue(x int64) IntegerValue {
	return IntegerValue{x: x}
}

// NewInteger returns an integer value from any Go integer type.
func NewInteger[T constraints.Integer](x T) IntegerValue {
	// uint64 values above MaxInt64 become negative when converted.
	if x > 0 && int64(x) < 0 {
		return NewBigIntegerValue(new(big.Int).SetUint64(uint64(x)))
	}

	return NewIntegerValue(int64(x))
}

// NewBigIntegerValue returns an integer value holding a copy of x.
func NewBigIntegerValue(x *big.Int) IntegerValue {
	if x.IsInt64() {
		return IntegerValue{x: x.Int64()}
	}

	return IntegerValue{bx: new(big.Int).Set(x)}
}

func (v IntegerValue) isValue() {}

// Type returns TypeInteger.
func (v IntegerValue) Type() Type {
	return TypeInteger
}

// V returns an int64 or, if the value doesn't fit, a *big.Int copy.
func (v IntegerValue) V() any {
	if v.bx != nil {
		return v.Big()
	}
	return v.x
}

// Int64 returns the value and whether it fits in an int64.
func (v IntegerValue) Int64() (int64, bool) {
	if v.bx != nil {
		return 0, false
	}
	return v.x, true
}

// Big returns a copy of the value as a big.Int.
func (v IntegerValue) Big() *big.Int {
	if v.bx != nil {
		return new(big.Int).Set(v.bx)
	}
	return big.NewInt(v.x)
}

// Sign returns -1, 0 or +1 depending on the sign of the value.
func (v IntegerValue) Sign() int {
	if v.bx != nil {
		return v.bx.Sign()
	}

	switch {
	case v.x < 0:
		return -1
	case v.x > 0:
		return 1
	}
	return 0
}

// Equal reports whether v and other hold the same integer.
func (v IntegerValue) Equal(other IntegerValue) bool {
	if v.bx == nil && other.bx == nil {
		return v.x == other.x
	}
	if v.bx == nil || other.bx == nil {
		// both constructors normalize values that fit in an int64
		return false
	}
	return v.bx.Cmp(other.bx) == 0
}

func (v IntegerValue) Encode(dst []byte) []byte {
	if v.bx != nil {
		return encoding.EncodeBigInt(dst, v.bx)
	}
	return encoding.EncodeInt(dst, v.x)
}

func (v IntegerValue) encodedLen() int {
	if v.bx != nil {
		// digits, sign included, plus the markers
		return len(v.bx.Text(10)) + 2
	}
	return encoding.IntLen(v.x)
}

func (v IntegerValue) String() string {
	if v.bx != nil {
		return v.bx.String()
	}
	return strconv.FormatInt(v.x, 10)
}

func (v IntegerValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v IntegerValue) MarshalJSON() ([]byte, error) {
	return v.MarshalText()
}
