package bencode

import (
	"github.com/chaisql/bencode/internal/encoding"
	"github.com/cockroachdb/errors"
)

// DefaultMaxDepth is the maximum nesting of lists and dictionaries
// accepted when Options.MaxDepth is not set.
const DefaultMaxDepth = 512

// DuplicateKeyPolicy selects how lenient decoding handles a dictionary key
// that appears more than once.
type DuplicateKeyPolicy uint8

const (
	// LastKeyWins keeps the value of the last occurrence of a key.
	LastKeyWins DuplicateKeyPolicy = iota
	// FirstKeyWins keeps the value of the first occurrence of a key.
	FirstKeyWins
	// RejectDuplicateKeys fails with UnorderedOrDuplicateKey. Unordered keys
	// are still accepted.
	RejectDuplicateKeys
)

// Options configure decoding. The zero value decodes leniently.
type Options struct {
	// Strict requires dictionary keys in strictly ascending order and
	// rejects bytes following the decoded value.
	Strict bool
	// MaxDepth limits the nesting of lists and dictionaries.
	// If zero or negative, DefaultMaxDepth is used.
	MaxDepth int
	// DuplicateKeys is used in lenient mode only. Strict mode always
	// rejects duplicate keys.
	DuplicateKeys DuplicateKeyPolicy
}

// Decode parses the value at the start of data and returns it
// along with the number of bytes it occupies.
// In lenient mode, bytes after the value are ignored and n tells
// where they start.
// Any failure is returned as a *DecodeError and no value is returned.
func Decode(data []byte, opts Options) (v Value, n int, err error) {
	d := decoder{
		data:     data,
		strict:   opts.Strict,
		maxDepth: opts.MaxDepth,
		policy:   opts.DuplicateKeys,
	}
	if d.maxDepth <= 0 {
		d.maxDepth = DefaultMaxDepth
	}

	v, err = d.value()
	if err != nil {
		return nil, 0, err
	}

	if opts.Strict && d.pos != len(data) {
		return nil, 0, newDecodeError(TrailingData, d.pos, errors.Newf("%d bytes after the value", len(data)-d.pos))
	}

	return v, d.pos, nil
}

// DecodeStrict parses data, which must contain exactly one value
// with dictionary keys in canonical order.
func DecodeStrict(data []byte) (Value, error) {
	v, _, err := Decode(data, Options{Strict: true})
	return v, err
}

// Valid reports whether data is exactly one canonically ordered value.
func Valid(data []byte) bool {
	_, err := DecodeStrict(data)
	return err == nil
}

// decoder is a recursive descent parser. pos is the offset of the next
// byte to read.
type decoder struct {
	data     []byte
	pos      int
	depth    int
	strict   bool
	maxDepth int
	policy   DuplicateKeyPolicy
}

func (d *decoder) value() (Value, error) {
	if d.pos >= len(d.data) {
		return nil, newDecodeError(UnexpectedEOF, d.pos, errors.New("expected a value"))
	}

	c := d.data[d.pos]
	switch {
	case c == encoding.IntegerValue:
		return d.integer()
	case c == encoding.ListValue:
		return d.list()
	case c == encoding.DictValue:
		return d.dict()
	case encoding.IsDigit(c):
		s, err := d.byteString()
		if err != nil {
			return nil, err
		}
		return ByteStringValue(s), nil
	}

	return nil, newDecodeError(UnexpectedToken, d.pos, errors.Newf("unexpected byte %q", c))
}

func (d *decoder) integer() (Value, error) {
	digits, n, err := encoding.ScanInt(d.data[d.pos:])
	if err != nil {
		if errors.Is(err, encoding.ErrTruncated) {
			return nil, newDecodeError(UnexpectedEOF, d.pos+n, errors.New("unterminated integer"))
		}
		return nil, newDecodeError(MalformedInteger, d.pos+n, err)
	}

	x, bx := encoding.ParseInt(digits)
	d.pos += n
	if bx != nil {
		return IntegerValue{bx: bx}, nil
	}
	return IntegerValue{x: x}, nil
}

// byteString reads a byte string token and returns a copy of its content.
func (d *decoder) byteString() (string, error) {
	l, n, err := encoding.ScanLength(d.data[d.pos:])
	if err != nil {
		if errors.Is(err, encoding.ErrTruncated) {
			return "", newDecodeError(UnexpectedEOF, d.pos+n, errors.New("unterminated length"))
		}
		return "", newDecodeError(MalformedLength, d.pos+n, err)
	}

	start := d.pos + n
	if l > len(d.data)-start {
		return "", newDecodeError(UnexpectedEOF, start, errors.Newf("byte string of length %d has only %d bytes", l, len(d.data)-start))
	}

	// the conversion copies the bytes out of the input
	s := string(d.data[start : start+l])
	d.pos = start + l
	return s, nil
}

// enter is called when a list or a dictionary starts.
func (d *decoder) enter() error {
	d.depth++
	if d.depth > d.maxDepth {
		return newDecodeError(NestingTooDeep, d.pos, errors.Newf("maximum depth is %d", d.maxDepth))
	}
	return nil
}

func (d *decoder) list() (Value, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	d.pos++

	var values []Value
	for {
		if d.pos >= len(d.data) {
			return nil, newDecodeError(UnexpectedEOF, d.pos, errors.New("unterminated list"))
		}
		if d.data[d.pos] == encoding.End {
			break
		}

		v, err := d.value()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	d.pos++
	d.depth--
	return &ListValue{values: values}, nil
}

func (d *decoder) dict() (Value, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	d.pos++

	var entries []DictEntry
	// seen is only built once keys stop being strictly ascending,
	// to detect duplicates among unordered keys.
	var seen map[string]struct{}
	for {
		if d.pos >= len(d.data) {
			return nil, newDecodeError(UnexpectedEOF, d.pos, errors.New("unterminated dictionary"))
		}
		c := d.data[d.pos]
		if c == encoding.End {
			break
		}

		switch {
		case encoding.IsDigit(c):
		case c == encoding.IntegerValue, c == encoding.ListValue, c == encoding.DictValue:
			return nil, newDecodeError(InvalidKeyType, d.pos, errors.Newf("dictionary keys must be byte strings, got %q", c))
		default:
			return nil, newDecodeError(UnexpectedToken, d.pos, errors.Newf("unexpected byte %q", c))
		}

		keyPos := d.pos
		key, err := d.byteString()
		if err != nil {
			return nil, err
		}

		if err := d.checkKey(entries, &seen, key, keyPos); err != nil {
			return nil, err
		}

		v, err := d.value()
		if err != nil {
			return nil, err
		}
		entries = append(entries, DictEntry{Key: key, Value: v})
	}

	d.pos++
	d.depth--
	return newDictValue(entries, d.policy), nil
}

// checkKey validates the position of key, read at offset pos, against
// the keys already read.
func (d *decoder) checkKey(entries []DictEntry, seen *map[string]struct{}, key string, pos int) error {
	if len(entries) == 0 {
		return nil
	}

	prev := entries[len(entries)-1].Key
	if prev < key && *seen == nil {
		return nil
	}

	if d.strict {
		if prev == key {
			return newDecodeError(UnorderedOrDuplicateKey, pos, errors.Newf("duplicate key %q", key))
		}
		return newDecodeError(UnorderedOrDuplicateKey, pos, errors.Newf("key %q is not greater than %q", key, prev))
	}

	if d.policy != RejectDuplicateKeys {
		return nil
	}

	if *seen == nil {
		*seen = make(map[string]struct{}, len(entries)+1)
		for _, e := range entries {
			(*seen)[e.Key] = struct{}{}
		}
	}
	if _, ok := (*seen)[key]; ok {
		return newDecodeError(UnorderedOrDuplicateKey, pos, errors.Newf("duplicate key %q", key))
	}
	(*seen)[key] = struct{}{}

	return nil
}
