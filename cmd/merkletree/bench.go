package main

import (
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/sha3"

	merkletree "github.com/forestrie/go-merkletree"
)

var benchIterations int

// benchDepths matches the reference measurement harness.
var benchDepths = []uint64{5, 10, 20}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "time the public operations at depths 5, 10 and 20",
	RunE: func(cmd *cobra.Command, args []string) error {
		if benchIterations < 1 {
			benchIterations = 1
		}
		hasher := sha3.New256()
		initial := merkletree.Uniform(0x00)

		for _, depth := range benchDepths {
			if err := timeOp("new", depth, func() error {
				_, err := merkletree.New(hasher, depth, initial)
				return err
			}); err != nil {
				return err
			}
		}

		for _, depth := range benchDepths {
			tree, err := merkletree.New(hasher, depth, initial)
			if err != nil {
				return err
			}
			value := merkletree.Uniform(0x11)

			if err = timeOp("set_leaf", depth, func() error {
				return tree.SetLeaf(5%tree.NumLeaves(), value)
			}); err != nil {
				return err
			}

			var proof merkletree.Proof
			if err = timeOp("inclusion_proof", depth, func() error {
				proof, err = tree.InclusionProof(5 % tree.NumLeaves())
				return err
			}); err != nil {
				return err
			}

			leaf, err := tree.Leaf(5 % tree.NumLeaves())
			if err != nil {
				return err
			}
			if err = timeOp("included_root", depth, func() error {
				merkletree.IncludedRoot(hasher, leaf, proof)
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	benchCmd.Flags().IntVar(&benchIterations, "iterations", 1000, "calls per measured operation")
}

// timeOp runs f benchIterations times and logs the total and per call
// elapsed time.
func timeOp(op string, depth uint64, f func() error) error {
	start := time.Now()
	for i := 0; i < benchIterations; i++ {
		if err := f(); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)
	logger.Info().
		Str("op", op).
		Uint64("depth", depth).
		Int("iterations", benchIterations).
		Dur("total", elapsed).
		Dur("per_call", elapsed/time.Duration(benchIterations)).
		Msg("measured")
	return nil
}
