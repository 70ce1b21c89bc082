package merkletree

import "math/bits"

// NodeCount returns the number of nodes in a tree of the given depth,
// 2^depth - 1. NodeCount(layer) is also the index of the first node in that
// layer, which is what makes the breadth-first arithmetic below work.
func NodeCount(depth uint64) uint64 {
	return (1 << depth) - 1
}

// NodeIndex returns the flat arena index of the node at (layer, offset).
// Layer 0 is the root, offset is the zero based position within the layer.
func NodeIndex(layer uint64, offset uint64) uint64 {
	return NodeCount(layer) + offset
}

// ParentIndex returns the arena index of the parent of the node at
// (layer, offset). The layer must be at least 1.
func ParentIndex(layer uint64, offset uint64) uint64 {
	return NodeIndex(layer-1, offset/2)
}

// LeftChildIndex returns the arena index of the left child of the node at
// (layer, offset).
func LeftChildIndex(layer uint64, offset uint64) uint64 {
	return NodeIndex(layer+1, offset*2)
}

// RightChildIndex returns the arena index of the right child of the node at
// (layer, offset).
func RightChildIndex(layer uint64, offset uint64) uint64 {
	return NodeIndex(layer+1, offset*2+1)
}

// LayerOffset resolves a flat arena index back to its (layer, offset) pair.
func LayerOffset(i uint64) (uint64, uint64) {
	layer := Log2Uint64(i + 1)
	return layer, i - NodeCount(layer)
}

// Log2Uint64 efficiently computes log base 2 of num, ignoring all bits below
// the most significant. Log2Uint64(0) is 0.
func Log2Uint64(num uint64) uint64 {
	if num == 0 {
		return 0
	}
	return uint64(bits.Len64(num) - 1)
}
