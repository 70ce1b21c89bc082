package merkletree

import (
	"fmt"
	"hash"
)

// ProofStep is one layer of an inclusion proof: the sibling digest and which
// side the proven path node itself sits on at that layer.
type ProofStep struct {
	Sibling Digest
	// Left is true when the path node is the left child of its parent, in
	// which case the sibling hashes in on the right.
	Left bool
}

// Proof commits a single leaf value to a root. Steps are ordered leaf to
// root, one per layer below the root, so a proof from a tree of depth d has
// d-1 steps.
type Proof []ProofStep

// InclusionProof collects the proof path for the leaf at offset.
//
// For depth 3 and offset 1, the proof is [H(leaf 0), H(node at (1,1))]:
//
//	           0
//	         /   \
//	        1     2    <- second sibling
//	       / \   / \
//	      3   4 5   6
//	          ^ proven leaf, first sibling is 3
//
// The tree is not mutated.
func (t *Tree) InclusionProof(offset uint64) (Proof, error) {
	if offset >= t.NumLeaves() {
		return nil, fmt.Errorf("%w: %d of %d", ErrLeafOutOfRange, offset, t.NumLeaves())
	}

	proof := make(Proof, 0, t.depth-1)

	layer, pathOffset := t.depth-1, offset
	for layer > 0 {
		siblingOffset := pathOffset + 1
		if pathOffset%2 == 1 {
			siblingOffset = pathOffset - 1
		}
		proof = append(proof, ProofStep{
			Sibling: t.nodes[NodeIndex(layer, siblingOffset)],
			Left:    pathOffset%2 == 0,
		})
		layer, pathOffset = layer-1, pathOffset/2
	}
	return proof, nil
}

// IncludedRoot replays proof against the claimed leaf value and returns the
// root digest the proof commits it to.
//
// No Tree is required: the caller compares the returned digest against
// whatever root it trusts, which need not come from a live tree at all. The
// proof length is trusted implicitly; a proof of the wrong length for the
// root being checked simply produces a digest that will not match it.
func IncludedRoot(hasher hash.Hash, leaf Digest, proof Proof) Digest {
	root := leaf
	for _, step := range proof {
		if step.Left {
			root = hashPair(hasher, root, step.Sibling)
		} else {
			root = hashPair(hasher, step.Sibling, root)
		}
	}
	return root
}

// VerifyInclusion returns true if leaf combined with proof reproduces root.
// See IncludedRoot.
func VerifyInclusion(hasher hash.Hash, root Digest, leaf Digest, proof Proof) bool {
	return IncludedRoot(hasher, leaf, proof) == root
}
