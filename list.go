package bencode

import (
	"strings"

	"github.com/chaisql/bencode/internal/encoding"
	"golang.org/x/exp/slices"
)

var _ Value = NewListValue()

// ListValue is an ordered list of values.
type ListValue struct {
	values []Value
}

// NewListValue returns a list holding the given values, in order.
// It panics if one of the values is nil.
func NewListValue(values ...Value) *ListValue {
	for _, v := range values {
		if v == nil {
			panic("bencode: nil value in list")
		}
	}

	return &ListValue{values: slices.Clone(values)}
}

func (v *ListValue) isValue() {}

// Type returns TypeList.
func (v *ListValue) Type() Type {
	return TypeList
}

// V returns a copy of the values of the list.
func (v *ListValue) V() any {
	return v.Values()
}

// Len returns the number of values of the list.
func (v *ListValue) Len() int {
	return len(v.values)
}

// GetByIndex returns the value at index i, or ErrValueNotFound
// if i is out of range.
func (v *ListValue) GetByIndex(i int) (Value, error) {
	if i < 0 || i >= len(v.values) {
		return nil, ErrValueNotFound
	}

	return v.values[i], nil
}

// Values returns a copy of the values of the list.
func (v *ListValue) Values() []Value {
	return slices.Clone(v.values)
}

// Iterate goes through all the values of the list and calls the
// given function by passing each one of them.
// If the given function returns an error, the iteration stops.
func (v *ListValue) Iterate(fn func(i int, value Value) error) error {
	for i, value := range v.values {
		if err := fn(i, value); err != nil {
			return err
		}
	}

	return nil
}

func (v *ListValue) Encode(dst []byte) []byte {
	dst = encoding.EncodeListStart(dst)
	for _, value := range v.values {
		dst = value.Encode(dst)
	}
	return encoding.EncodeEnd(dst)
}

func (v *ListValue) encodedLen() int {
	n := 2
	for _, value := range v.values {
		n += EncodedLen(value)
	}
	return n
}

func (v *ListValue) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for i, value := range v.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(value.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

func (v *ListValue) MarshalJSON() ([]byte, error) {
	buf := []byte{'['}
	for i, value := range v.values {
		if i > 0 {
			buf = append(buf, ',')
		}

		data, err := value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf = append(buf, data...)
	}

	return append(buf, ']'), nil
}
