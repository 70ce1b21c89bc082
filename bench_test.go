package merkletree

import (
	"testing"

	"golang.org/x/crypto/sha3"
)

// The benchmark depths match the reference measurement harness: 5, 10 and
// 20. Depth 20 is the case the layer broadcast construction exists for.

func benchmarkNew(b *testing.B, depth uint64) {
	hasher := sha3.New256()
	initial := Uniform(0x00)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := New(hasher, depth, initial); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNew5(b *testing.B)  { benchmarkNew(b, 5) }
func BenchmarkNew10(b *testing.B) { benchmarkNew(b, 10) }
func BenchmarkNew20(b *testing.B) { benchmarkNew(b, 20) }

func BenchmarkSetLeaf(b *testing.B) {
	tree, err := New(sha3.New256(), 20, Uniform(0x00))
	if err != nil {
		b.Fatal(err)
	}
	value := Uniform(0x11)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tree.SetLeaf(5, value); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInclusionProof(b *testing.B) {
	tree, err := New(sha3.New256(), 20, Uniform(0x00))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.InclusionProof(5); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIncludedRoot(b *testing.B) {
	hasher := sha3.New256()
	tree, err := New(hasher, 20, Uniform(0x00))
	if err != nil {
		b.Fatal(err)
	}
	proof, err := tree.InclusionProof(5)
	if err != nil {
		b.Fatal(err)
	}
	leaf := Uniform(0x00)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IncludedRoot(hasher, leaf, proof)
	}
}
