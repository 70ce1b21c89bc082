package merkletree

import (
	"fmt"
	"hash"
)

// Tree is a fixed-depth saturated binary Merkle tree. The nodes live in a
// single flat arena in breadth-first order, see the package doc for the
// layout. Depth is set at construction and never changes.
//
// A Tree provides no internal synchronisation.
type Tree struct {
	depth  uint64
	hasher hash.Hash
	nodes  []Digest
}

// New creates a tree of the given depth with every leaf set to initialLeaf.
//
// The hasher is retained by the tree and used for all subsequent node
// recomputation; it must produce 32 byte digests.
//
// Because the leaves are uniform, every node within a layer carries the same
// digest, so each interior layer costs a single hash which is then broadcast
// across the layer. Construction is O(depth) hash evaluations.
func New(hasher hash.Hash, depth uint64, initialLeaf Digest) (*Tree, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}
	if hasher.Size() != DigestBytes {
		return nil, fmt.Errorf("%w: got %d", ErrBadHashSize, hasher.Size())
	}

	nodes := make([]Digest, NodeCount(depth))
	for i := range nodes {
		nodes[i] = initialLeaf
	}

	// Work up from the leaf layer. All nodes in the child layer are
	// identical, so the pair hash of (child, child) is the value of every
	// node in the parent layer.
	for layer := depth - 1; layer > 0; layer-- {
		parent := layer - 1
		h := hashPair(hasher,
			nodes[LeftChildIndex(parent, 0)],
			nodes[RightChildIndex(parent, 0)])
		for offset := uint64(0); offset < 1<<parent; offset++ {
			nodes[NodeIndex(parent, offset)] = h
		}
	}

	return &Tree{depth: depth, hasher: hasher, nodes: nodes}, nil
}

// Depth returns the fixed depth the tree was created with.
func (t *Tree) Depth() uint64 {
	return t.depth
}

// Root returns the current root digest.
func (t *Tree) Root() Digest {
	return t.nodes[0]
}

// NumLeaves returns the leaf count, 2^(depth-1).
func (t *Tree) NumLeaves() uint64 {
	return 1 << (t.depth - 1)
}

// Leaf returns the current value of the leaf at offset.
func (t *Tree) Leaf(offset uint64) (Digest, error) {
	if offset >= t.NumLeaves() {
		return Digest{}, fmt.Errorf("%w: %d of %d", ErrLeafOutOfRange, offset, t.NumLeaves())
	}
	return t.nodes[NodeIndex(t.depth-1, offset)], nil
}

// SetLeaf overwrites the leaf at offset and recomputes the digests on the
// path from that leaf to the root. Only ancestors of the changed leaf can go
// stale, so the walk restores the hash relation tree-wide in O(depth) hash
// evaluations.
//
// The tree is untouched when offset is out of range.
func (t *Tree) SetLeaf(offset uint64, value Digest) error {
	if offset >= t.NumLeaves() {
		return fmt.Errorf("%w: %d of %d", ErrLeafOutOfRange, offset, t.NumLeaves())
	}

	t.nodes[NodeIndex(t.depth-1, offset)] = value

	layer, pathOffset := t.depth-1, offset
	for layer > 0 {
		layer, pathOffset = layer-1, pathOffset/2
		t.nodes[NodeIndex(layer, pathOffset)] = hashPair(t.hasher,
			t.nodes[LeftChildIndex(layer, pathOffset)],
			t.nodes[RightChildIndex(layer, pathOffset)])
	}
	return nil
}
