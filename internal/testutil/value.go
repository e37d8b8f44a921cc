package testutil

import (
	"testing"

	"github.com/chaisql/bencode"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// MakeValue creates a value from a json document.
func MakeValue(t testing.TB, jsonDoc string) bencode.Value {
	t.Helper()

	v, err := bencode.FromJSON([]byte(jsonDoc))
	require.NoError(t, err)

	return v
}

// MakeValues creates a slice of values from json documents.
func MakeValues(t testing.TB, jsonDocs ...string) []bencode.Value {
	t.Helper()

	values := make([]bencode.Value, 0, len(jsonDocs))
	for _, jsonDoc := range jsonDocs {
		values = append(values, MakeValue(t, jsonDoc))
	}
	return values
}

// RequireValueEqual fails the test if want and got are not equal.
func RequireValueEqual(t testing.TB, want, got bencode.Value) {
	t.Helper()

	if cmp.Equal(want, got, cmp.Comparer(bencode.Equal)) {
		return
	}

	var ws, gs string
	if want != nil {
		ws = want.String()
	}
	if got != nil {
		gs = got.String()
	}
	require.FailNow(t, "values are not equal", "mismatch (-want +got):\n%s", cmp.Diff(ws, gs))
}

// Decode decodes data in strict mode and fails the test on error.
func Decode(t testing.TB, data string) bencode.Value {
	t.Helper()

	v, err := bencode.DecodeStrict([]byte(data))
	RequireNoError(t, err)
	return v
}
