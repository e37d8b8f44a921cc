package bencode

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrValueNotFound is returned when looking up a list index that is out of range.
	ErrValueNotFound = errors.New("value not found")

	// ErrKeyNotFound is returned when looking up a key that is not in a dictionary.
	ErrKeyNotFound = errors.New("key not found")
)

// ErrorKind describes why decoding failed.
// It implements the error interface so that callers can match
// a kind with errors.Is.
type ErrorKind uint8

// List of decoding failures.
const (
	// UnexpectedToken is returned when the byte starting a value is not
	// one of 'i', 'l', 'd' or a digit.
	UnexpectedToken ErrorKind = iota + 1
	// UnexpectedEOF is returned when the input ends in the middle of a value.
	UnexpectedEOF
	// MalformedInteger is returned for integers with an empty or invalid body,
	// a leading zero, or a negative zero.
	MalformedInteger
	// MalformedLength is returned for byte string lengths that are not
	// a canonical decimal number followed by a colon.
	MalformedLength
	// InvalidKeyType is returned when a dictionary key is not a byte string.
	InvalidKeyType
	// UnorderedOrDuplicateKey is returned when dictionary keys are not
	// strictly ascending, in strict mode, or when a duplicate key is found
	// and duplicates are rejected.
	UnorderedOrDuplicateKey
	// NestingTooDeep is returned when lists and dictionaries are nested
	// deeper than the configured maximum.
	NestingTooDeep
	// TrailingData is returned in strict mode when bytes remain after the value.
	TrailingData
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case UnexpectedEOF:
		return "unexpected end of input"
	case MalformedInteger:
		return "malformed integer"
	case MalformedLength:
		return "malformed length"
	case InvalidKeyType:
		return "invalid key type"
	case UnorderedOrDuplicateKey:
		return "unordered or duplicate key"
	case NestingTooDeep:
		return "nesting too deep"
	case TrailingData:
		return "trailing data"
	}

	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

func (k ErrorKind) Error() string {
	return k.String()
}

// DecodeError is returned when the input is not valid bencode.
type DecodeError struct {
	Kind ErrorKind
	// Offset of the byte at which the failure was detected.
	Offset int
	// Err holds details about the failure, if any.
	Err error
}

func newDecodeError(kind ErrorKind, offset int, err error) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset, Err: err}
}

// Error returns the string representation of the error.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bencode: %s at offset %d: %v", e.Kind, e.Offset, e.Err)
	}
	return fmt.Sprintf("bencode: %s at offset %d", e.Kind, e.Offset)
}

// Unwrap returns the kind of the error, so that
// errors.Is(err, MalformedInteger) works on any wrapped DecodeError.
func (e *DecodeError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// IsDecodeError returns the DecodeError wrapped in err, if any.
func IsDecodeError(err error) (*DecodeError, bool) {
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
