package bencode_test

import (
	"math"
	"testing"

	"github.com/chaisql/bencode"
	"github.com/chaisql/bencode/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		value bencode.Value
		want  string
	}{
		{"zero", bencode.NewIntegerValue(0), "i0e"},
		{"negative", bencode.NewIntegerValue(-3), "i-3e"},
		{"min int64", bencode.NewIntegerValue(math.MinInt64), "i-9223372036854775808e"},
		{"uint64", bencode.NewInteger(uint64(math.MaxUint64)), "i18446744073709551615e"},
		{"big", bigInt(t, "-99999999999999999999999"), "i-99999999999999999999999e"},
		{"empty string", bencode.NewStringValue(""), "0:"},
		{"string", bencode.NewStringValue("spam"), "4:spam"},
		{"binary", bencode.NewByteStringValue([]byte{0xff, 0}), "2:\xff\x00"},
		{"empty list", bencode.NewListValue(), "le"},
		{"list", testutil.MakeValue(t, `["spam", "eggs"]`), "l4:spam4:eggse"},
		{"empty dict", bencode.NewDictValue(), "de"},
		{"dict", testutil.MakeValue(t, `{"cow": "moo", "spam": "eggs"}`), "d3:cow3:moo4:spam4:eggse"},
		{"dict of list", testutil.MakeValue(t, `{"spam": ["a", "b"]}`), "d4:spaml1:a1:bee"},
		{"unordered dict", bencode.NewDictValue(
			bencode.DictEntry{Key: "foo", Value: bencode.NewStringValue("egg")},
			bencode.DictEntry{Key: "bar", Value: bencode.NewStringValue("spam")},
		), "d3:bar4:spam3:foo3:egge"},
		{"byte-wise key order", bencode.NewDictValue(
			bencode.DictEntry{Key: "\xff", Value: bencode.NewIntegerValue(1)},
			bencode.DictEntry{Key: "a", Value: bencode.NewIntegerValue(2)},
			bencode.DictEntry{Key: "B", Value: bencode.NewIntegerValue(3)},
		), "d1:Bi3e1:ai2e1:\xffi1ee"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := bencode.Encode(test.value)
			require.Equal(t, test.want, string(got))
			require.Equal(t, len(test.want), bencode.EncodedLen(test.value))

			got = bencode.AppendValue([]byte("prefix"), test.value)
			require.Equal(t, "prefix"+test.want, string(got))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	g := testutil.NewValueGenerator(1, 5, 6)

	for i := 0; i < 500; i++ {
		v := g.Value()
		enc := bencode.Encode(v)
		require.Equal(t, len(enc), bencode.EncodedLen(v))

		got, n, err := bencode.Decode(enc, bencode.Options{Strict: true})
		testutil.RequireNoError(t, err)
		require.Equal(t, len(enc), n)
		testutil.RequireValueEqual(t, v, got)

		require.Equal(t, enc, bencode.Encode(got))
	}
}

func TestCanonicalIdempotence(t *testing.T) {
	tests := []string{
		"d3:foo3:egg3:bar4:spame",
		"d1:bd1:zi1e1:yi2ee1:ali3ei4eee",
		"l" + "d1:ai1e1:ai2ee" + "e",
		"d2:aai1e1:ai2ee",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			v, _, err := bencode.Decode([]byte(input), bencode.Options{})
			testutil.RequireNoError(t, err)

			enc := bencode.Encode(v)
			require.True(t, bencode.Valid(enc))

			again, err := bencode.DecodeStrict(enc)
			testutil.RequireNoError(t, err)
			require.Equal(t, enc, bencode.Encode(again))
		})
	}
}

func TestEndToEnd(t *testing.T) {
	input := []byte("d3:agei25e4:name4:Johne")

	v, n, err := bencode.Decode(input, bencode.Options{Strict: true})
	testutil.RequireNoError(t, err)
	require.Equal(t, len(input), n)

	d := bencode.AsDict(v)
	require.Equal(t, 2, d.Len())

	age, err := d.Get("age")
	require.NoError(t, err)
	require.Equal(t, int64(25), bencode.AsInt64(age))

	name, err := d.Get("name")
	require.NoError(t, err)
	require.Equal(t, "John", bencode.AsByteString(name))

	require.Equal(t, input, bencode.Encode(v))
}
