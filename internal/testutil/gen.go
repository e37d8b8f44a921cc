package testutil

import (
	"bytes"
	"math/big"
	"math/rand"

	"github.com/chaisql/bencode"
)

// NestedLists returns depth nested lists: "ll...ee".
// If closed is false, the lists are left open.
func NestedLists(depth int, closed bool) []byte {
	var buf bytes.Buffer
	buf.Grow(depth * 2)
	buf.Write(bytes.Repeat([]byte{'l'}, depth))
	if closed {
		buf.Write(bytes.Repeat([]byte{'e'}, depth))
	}
	return buf.Bytes()
}

// NestedDicts returns depth nested dictionaries, each one holding
// the next under the key "a": "d1:ad1:a...dee...e".
func NestedDicts(depth int) []byte {
	var buf bytes.Buffer
	for i := 0; i < depth-1; i++ {
		buf.WriteString("d1:a")
	}
	buf.WriteString("de")
	buf.Write(bytes.Repeat([]byte{'e'}, depth-1))
	return buf.Bytes()
}

// ValueGenerator generates random values, for property tests.
type ValueGenerator struct {
	r        *rand.Rand
	maxDepth int
	maxLen   int
}

// NewValueGenerator returns a deterministic generator for the given seed.
func NewValueGenerator(seed int64, maxDepth, maxLen int) *ValueGenerator {
	return &ValueGenerator{
		r:        rand.New(rand.NewSource(seed)),
		maxDepth: maxDepth,
		maxLen:   maxLen,
	}
}

// Value returns a random value.
func (g *ValueGenerator) Value() bencode.Value {
	return g.value(0)
}

func (g *ValueGenerator) value(depth int) bencode.Value {
	n := 4
	if depth >= g.maxDepth {
		// leaves only
		n = 2
	}

	switch g.r.Intn(n) {
	case 0:
		return g.integer()
	case 1:
		return bencode.NewByteStringValue(g.bytes())
	case 2:
		values := make([]bencode.Value, g.r.Intn(g.maxLen+1))
		for i := range values {
			values[i] = g.value(depth + 1)
		}
		return bencode.NewListValue(values...)
	default:
		entries := make([]bencode.DictEntry, g.r.Intn(g.maxLen+1))
		for i := range entries {
			entries[i] = bencode.DictEntry{Key: string(g.bytes()), Value: g.value(depth + 1)}
		}
		return bencode.NewDictValue(entries...)
	}
}

func (g *ValueGenerator) integer() bencode.IntegerValue {
	switch g.r.Intn(3) {
	case 0:
		return bencode.NewIntegerValue(int64(g.r.Intn(201) - 100))
	case 1:
		return bencode.NewIntegerValue(g.r.Int63() - g.r.Int63())
	default:
		x := new(big.Int).Lsh(big.NewInt(g.r.Int63()+1), uint(64+g.r.Intn(64)))
		if g.r.Intn(2) == 0 {
			x.Neg(x)
		}
		return bencode.NewBigIntegerValue(x)
	}
}

func (g *ValueGenerator) bytes() []byte {
	b := make([]byte, g.r.Intn(g.maxLen+1))
	g.r.Read(b)
	return b
}
