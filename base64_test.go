package gpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeBase64URL verifies six-bit groups pack MSB first with the tail
// zero-filled to a byte boundary.
func TestDecodeBase64URL(t *testing.T) {
	// "DBABM" is 000011 000001 000000 000001 001100.
	got, err := decodeBase64URL("DBABM")
	require.NoError(t, err)
	assert.Equal(t, []byte{0b00001100, 0b00010000, 0b00000001, 0b00110000}, got)

	// A single character lands in the high bits of one byte.
	got, err = decodeBase64URL("B")
	require.NoError(t, err)
	assert.Equal(t, []byte{0b00000100}, got)
}

// TestDecodeBase64URLAlphabet verifies the two characters that differ from
// standard Base64.
func TestDecodeBase64URLAlphabet(t *testing.T) {
	got, err := decodeBase64URL("-_")
	require.NoError(t, err)
	assert.Equal(t, []byte{0b11111011, 0b11110000}, got)
}

// TestDecodeBase64URLLengths verifies every character count is accepted,
// including counts the standard library rejects, and maps to the smallest
// byte count holding the bits.
func TestDecodeBase64URLLengths(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"A", 1},
		{"AA", 2},
		{"AAA", 3},
		{"AAAA", 3},
		{"AAAAA", 4},
	}
	for _, c := range cases {
		got, err := decodeBase64URL(c.in)
		require.NoError(t, err, "input %q", c.in)
		assert.Len(t, got, c.want, "input %q", c.in)
	}
}

// TestDecodeBase64URLBadCharacter verifies the error carries the offending
// character and its offset. Padding and the standard alphabet's '+' and '/'
// are outside the GPP alphabet.
func TestDecodeBase64URLBadCharacter(t *testing.T) {
	cases := []struct {
		in     string
		offset int
		char   byte
	}{
		{"QQ==", 2, '='},
		{"A+A", 1, '+'},
		{"//", 0, '/'},
		{"DBAB M", 4, ' '},
	}
	for _, c := range cases {
		_, err := decodeBase64URL(c.in)
		var b64Err *Base64Error
		require.ErrorAs(t, err, &b64Err, "input %q", c.in)
		assert.Equal(t, c.offset, b64Err.Offset, "input %q", c.in)
		assert.Equal(t, c.char, b64Err.Char, "input %q", c.in)
	}
}
