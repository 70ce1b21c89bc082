// Command merkletree exercises the tree engine from the command line: a
// demonstration walkthrough and a simple measurement harness over the public
// operations.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var logger zerolog.Logger

var rootCmd = &cobra.Command{
	Use:           "merkletree",
	Short:         "fixed-depth Merkle tree demonstration and measurement",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(benchCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}
