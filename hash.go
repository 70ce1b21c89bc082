package merkletree

import "hash"

// hashPair returns H(a || b)
// ** the hasher is reset **
func hashPair(hasher hash.Hash, a Digest, b Digest) Digest {
	hasher.Reset()
	_, _ = hasher.Write(a[:])
	_, _ = hasher.Write(b[:])

	var out Digest
	sum := hasher.Sum(out[:0])
	copy(out[:], sum)
	return out
}
