package merkletree

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestParseDigestRoundTrip(t *testing.T) {
	s := "57054e43fa56333fd51343b09460d48b9204999c376624f52480c5593b91eff4"
	d, err := ParseDigest(s)
	assert.NilError(t, err)
	assert.Equal(t, s, d.String())
}

func TestParseDigestRejectsShortInput(t *testing.T) {
	_, err := ParseDigest("abcdef")
	assert.ErrorIs(t, err, ErrBadDigestSize)
}

func TestParseDigestRejectsLongInput(t *testing.T) {
	_, err := ParseDigest(strings.Repeat("ab", DigestBytes+1))
	assert.ErrorIs(t, err, ErrBadDigestSize)
}

func TestParseDigestRejectsNonHex(t *testing.T) {
	_, err := ParseDigest(strings.Repeat("zz", DigestBytes))
	assert.ErrorIs(t, err, ErrBadDigestSize)
}

func TestUniform(t *testing.T) {
	d := Uniform(0xab)
	assert.Equal(t, strings.Repeat("ab", DigestBytes), d.String())
	assert.Equal(t, Digest{}, Uniform(0x00))
}
