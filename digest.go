package merkletree

import (
	"encoding/hex"
	"fmt"
)

// ParseDigest decodes a 64 character hex string into a Digest.
func ParseDigest(s string) (Digest, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Digest{}, fmt.Errorf("%w: %v", ErrBadDigestSize, err)
	}
	if len(b) != DigestBytes {
		return Digest{}, fmt.Errorf("%w: got %d bytes", ErrBadDigestSize, len(b))
	}
	var d Digest
	copy(d[:], b)
	return d, nil
}

// Uniform returns the digest with every byte set to b. Convenient for the
// saturated initial leaf values this tree is typically stood up with.
func Uniform(b byte) Digest {
	var d Digest
	for i := range d {
		d[i] = b
	}
	return d
}

// String returns the lowercase hex encoding of d.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}
