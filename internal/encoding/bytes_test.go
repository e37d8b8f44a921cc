package encoding_test

import (
	"strings"
	"testing"

	"github.com/chaisql/bencode/internal/encoding"
	"github.com/stretchr/testify/require"
)

func TestEncodeString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "0:"},
		{"a", "1:a"},
		{"spam", "4:spam"},
		{"\x00\xff", "2:\x00\xff"},
		{strings.Repeat("a", 100), "100:" + strings.Repeat("a", 100)},
	}

	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			got := encoding.EncodeString(nil, test.input)
			require.Equal(t, test.want, string(got))
			require.Equal(t, len(test.want), encoding.StringLen(len(test.input)))

			got = encoding.EncodeBytes([]byte("x"), []byte(test.input))
			require.Equal(t, "x"+test.want, string(got))
		})
	}
}

func TestScanLength(t *testing.T) {
	tests := []struct {
		input string
		l, n  int
		err   error
	}{
		{"0:", 0, 2, nil},
		{"4:spam", 4, 2, nil},
		{"10:", 10, 3, nil},
		{"3:ab", 3, 2, nil},
		{"4", 0, 1, encoding.ErrTruncated},
		{"4x", 0, 1, encoding.ErrInvalidDigit},
		{"04:spam", 0, 0, encoding.ErrLeadingZero},
		{"00:", 0, 0, encoding.ErrLeadingZero},
		{"99999999999999999999999:", 0, 0, encoding.ErrLengthTooLong},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			l, n, err := encoding.ScanLength([]byte(test.input))
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
			} else {
				require.NoError(t, err)
				require.Equal(t, test.l, l)
			}
			require.Equal(t, test.n, n)
		})
	}
}

func TestEncodeContainers(t *testing.T) {
	var buf []byte
	buf = encoding.EncodeDictStart(buf)
	buf = encoding.EncodeString(buf, "l")
	buf = encoding.EncodeListStart(buf)
	buf = encoding.EncodeInt(buf, 1)
	buf = encoding.EncodeEnd(buf)
	buf = encoding.EncodeEnd(buf)

	require.Equal(t, "d1:lli1eee", string(buf))
}
