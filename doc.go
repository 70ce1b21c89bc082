package merkletree

/*

# Fixed-depth binary Merkle tree over a flat node arena

This package implements a saturated (every leaf present) binary Merkle tree of
fixed depth. It follows the same "functional primitives" style as
`go-merklelog/mmr`:

- small, composable functions
- index/position arithmetic instead of linked node objects
- a burden of knowledge on the caller for hot paths

## Flat arena layout

The tree is a single contiguous slice of 32 byte digests, in breadth-first
order. For a node at (layer, offset), with layer 0 the root and layer depth-1
the leaves, the slice index is

	(1 << layer) - 1 + offset

For depth 3:

	           0
	         /   \
	        1     2
	       / \   / \
	      3   4 5   6

No parent or child references are stored. Navigation is pure arithmetic, see
NodeIndex, ParentIndex, LeftChildIndex, RightChildIndex and LayerOffset.

## Saturated initialisation

Every leaf starts with the same value, so every node within a layer is the
same digest as its neighbours. Construction therefore hashes once per layer
and broadcasts the result, O(depth) hash evaluations rather than O(2^depth).
At depth 20 that is 19 hashes instead of about a million, which is what makes
large saturated trees practical to stand up.

## Proofs

InclusionProof collects the sibling digest and path side for each layer below
the root, ordered leaf to root. IncludedRoot replays a proof against a claimed
leaf value and returns the digest the proof commits to. It deliberately does
not compare against anything: the caller decides acceptance against whatever
root it trusts, which may have arrived over a network rather than from a live
Tree. VerifyInclusion is the thin comparison wrapper for when the trusted root
is in hand.

IncludedRoot places the usual burden of knowledge on the caller: a proof of
the wrong length is not detected, it simply reproduces a digest that matches
no meaningful root.

The hash is a pluggable `hash.Hash` with 32 byte output. The reference digest
throughout the tests and the cmd tooling is SHA3-256.

## Concurrency

A Tree is exclusively owned by its creator. SetLeaf mutates state read by
Root and InclusionProof; callers needing concurrent readers must apply their
own synchronisation around the whole Tree.

*/
