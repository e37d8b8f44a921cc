package testutil

import (
	"testing"

	"github.com/chaisql/bencode"
	"github.com/stretchr/testify/require"
)

// RequireNoError is like require.NoError but prints the stack trace
// carried by err, if any.
func RequireNoError(t testing.TB, err error) {
	t.Helper()

	if err == nil {
		return
	}
	require.FailNow(t, "unexpected error", "%+v", err)
}

// RequireDecodeError fails the test if err is not a *bencode.DecodeError
// of the given kind, detected at the given offset.
func RequireDecodeError(t testing.TB, err error, kind bencode.ErrorKind, offset int) {
	t.Helper()

	require.Error(t, err)
	de, ok := bencode.IsDecodeError(err)
	require.Truef(t, ok, "expected a *bencode.DecodeError, got %T: %v", err, err)
	require.Equalf(t, kind, de.Kind, "unexpected kind: %v", err)
	require.Equalf(t, offset, de.Offset, "unexpected offset: %v", err)
	require.ErrorIs(t, err, kind)
}
