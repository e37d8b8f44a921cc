package bencode

import (
	"sort"
	"strconv"
	"strings"

	"github.com/chaisql/bencode/internal/encoding"
	"golang.org/x/exp/slices"
)

var _ Value = NewDictValue()

// DictEntry is a key-value pair of a dictionary.
type DictEntry struct {
	Key   string
	Value Value
}

// DictValue is a dictionary of values indexed by byte strings.
// Keys are unique and kept in ascending byte-wise order.
type DictValue struct {
	entries []DictEntry
}

// NewDictValue returns a dictionary holding the given entries.
// Entries don't need to be sorted. If a key appears more than once,
// the last entry wins. It panics if one of the values is nil.
func NewDictValue(entries ...DictEntry) *DictValue {
	for _, e := range entries {
		if e.Value == nil {
			panic("bencode: nil value for key " + strconv.Quote(e.Key))
		}
	}

	return newDictValue(slices.Clone(entries), LastKeyWins)
}

// NewDictValueFromMap returns a dictionary holding the content of m.
func NewDictValueFromMap(m map[string]Value) *DictValue {
	entries := make([]DictEntry, 0, len(m))
	for k, v := range m {
		entries = append(entries, DictEntry{Key: k, Value: v})
	}

	return NewDictValue(entries...)
}

// newDictValue takes ownership of entries, sorts them and removes duplicates
// according to the policy. RejectDuplicateKeys is treated as LastKeyWins,
// callers must have rejected duplicates already.
func newDictValue(entries []DictEntry, policy DuplicateKeyPolicy) *DictValue {
	if isStrictlySorted(entries) {
		return &DictValue{entries: entries}
	}

	slices.SortStableFunc(entries, func(a, b DictEntry) int {
		return strings.Compare(a.Key, b.Key)
	})

	// compact runs of equal keys, in place
	n := 0
	for i := 0; i < len(entries); i++ {
		if n > 0 && entries[n-1].Key == entries[i].Key {
			if policy != FirstKeyWins {
				entries[n-1] = entries[i]
			}
			continue
		}
		entries[n] = entries[i]
		n++
	}

	clear(entries[n:])
	return &DictValue{entries: entries[:n]}
}

func isStrictlySorted(entries []DictEntry) bool {
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Key >= entries[i].Key {
			return false
		}
	}
	return true
}

func (v *DictValue) isValue() {}

// Type returns TypeDict.
func (v *DictValue) Type() Type {
	return TypeDict
}

// V returns the content of the dictionary as a map.
func (v *DictValue) V() any {
	m := make(map[string]Value, len(v.entries))
	for _, e := range v.entries {
		m[e.Key] = e.Value
	}
	return m
}

// Len returns the number of entries of the dictionary.
func (v *DictValue) Len() int {
	return len(v.entries)
}

// Get returns the value associated with key, or ErrKeyNotFound.
func (v *DictValue) Get(key string) (Value, error) {
	i := sort.Search(len(v.entries), func(i int) bool {
		return v.entries[i].Key >= key
	})
	if i < len(v.entries) && v.entries[i].Key == key {
		return v.entries[i].Value, nil
	}

	return nil, ErrKeyNotFound
}

// GetBytes is like Get with a key given as a byte slice.
func (v *DictValue) GetBytes(key []byte) (Value, error) {
	return v.Get(string(key))
}

// Keys returns the keys of the dictionary in ascending order.
func (v *DictValue) Keys() []string {
	keys := make([]string, len(v.entries))
	for i, e := range v.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries of the dictionary, sorted by key.
func (v *DictValue) Entries() []DictEntry {
	return slices.Clone(v.entries)
}

// Iterate calls fn for each entry of the dictionary, in ascending key order.
// If fn returns an error, the iteration stops.
func (v *DictValue) Iterate(fn func(key string, value Value) error) error {
	for _, e := range v.entries {
		if err := fn(e.Key, e.Value); err != nil {
			return err
		}
	}

	return nil
}

func (v *DictValue) Encode(dst []byte) []byte {
	dst = encoding.EncodeDictStart(dst)
	for _, e := range v.entries {
		dst = encoding.EncodeString(dst, e.Key)
		dst = e.Value.Encode(dst)
	}
	return encoding.EncodeEnd(dst)
}

func (v *DictValue) encodedLen() int {
	n := 2
	for _, e := range v.entries {
		n += encoding.StringLen(len(e.Key)) + EncodedLen(e.Value)
	}
	return n
}

func (v *DictValue) String() string {
	var sb strings.Builder

	sb.WriteByte('{')
	for i, e := range v.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ByteStringValue(e.Key).String())
		sb.WriteString(": ")
		sb.WriteString(e.Value.String())
	}
	sb.WriteByte('}')

	return sb.String()
}

func (v *DictValue) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, e := range v.entries {
		if i > 0 {
			buf = append(buf, ',')
		}

		key, err := marshalJSONString(e.Key)
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')

		data, err := e.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf = append(buf, data...)
	}

	return append(buf, '}'), nil
}
