package merkletree

import "errors"

// DigestBytes is the fixed width of node values and of the hasher output.
// This matches the massif value width used across the forestrie index
// structures.
const DigestBytes = 32

// Digest is a single node value.
type Digest [DigestBytes]byte

var (
	ErrBadDepth       = errors.New("merkletree: depth must be at least 1")
	ErrBadHashSize    = errors.New("merkletree: hasher output must be 32 bytes")
	ErrBadDigestSize  = errors.New("merkletree: hex digest must decode to 32 bytes")
	ErrLeafOutOfRange = errors.New("merkletree: leaf offset out of range")
)
