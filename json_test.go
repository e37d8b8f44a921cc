package bencode_test

import (
	"encoding/json"
	"testing"

	"github.com/chaisql/bencode"
	"github.com/chaisql/bencode/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestValueMarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		value    bencode.Value
		expected string
	}{
		{"integer", bencode.NewIntegerValue(10), "10"},
		{"big integer", bigInt(t, "-123456789012345678901234567890"), "-123456789012345678901234567890"},
		{"string", bencode.NewStringValue("bar"), `"bar"`},
		{"escaped string", bencode.NewStringValue("a\"\n"), `"a\"\n"`},
		{"binary", bencode.NewByteStringValue([]byte{0xff, 0xfe}), `"//4="`},
		{"list", testutil.Decode(t, "li1e3:fooe"), `[1,"foo"]`},
		{"dict", testutil.Decode(t, "d3:agei25e4:name4:Johne"), `{"age":25,"name":"John"}`},
		{"binary key", testutil.Decode(t, "d1:\xffi1ee"), `{"/w==":1}`},
		{"empty", testutil.Decode(t, "ldelee"), `[{},[]]`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, err := test.value.MarshalJSON()
			require.NoError(t, err)
			require.Equal(t, test.expected, string(data))

			// the standard library sees the same document
			data, err = json.Marshal(test.value)
			require.NoError(t, err)
			require.JSONEq(t, test.expected, string(data))
		})
	}
}

func TestFromJSON(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"integer", `42`, "i42e"},
		{"negative", `-1`, "i-1e"},
		{"big integer", `18446744073709551616`, "i18446744073709551616e"},
		{"string", `"spam"`, "4:spam"},
		{"escaped string", `"a\"bé"`, "5:a\"b\xc3\xa9"},
		{"list", `[1, "a", [], {}]`, "li1e1:aledee"},
		{"dict", `{"name": "John", "age": 25}`, "d3:agei25e4:name4:Johne"},
		{"escaped key", `{"a\tb": 1}`, "d3:a\tbi1ee"},
		{"duplicate keys", `{"a": 1, "a": 2}`, "d1:ai2ee"},
		{"nested", `{"info": {"files": [{"length": 1}]}}`, "d4:infod5:filesld6:lengthi1eeeee"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := bencode.FromJSON([]byte(test.doc))
			require.NoError(t, err)
			require.Equal(t, test.want, string(bencode.Encode(v)))
		})
	}
}

func TestFromJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"float", `1.5`},
		{"exponent", `1e3`},
		{"bool", `true`},
		{"null", `null`},
		{"null in list", `[1, null]`},
		{"float in dict", `{"a": 1.5}`},
		{"invalid", `{`},
		{"empty", ``},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := bencode.FromJSON([]byte(test.doc))
			require.Error(t, err)
		})
	}
}
