package main

import (
	"github.com/spf13/cobra"

	"lexcase/repo"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the case collection with sample data",
	Long: `Seed writes the demo case when the case collection is empty.

Running it against a populated store is a no-op, so it can be invoked
any number of times without duplicating data.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	return repo.SeedSampleCases(st)
}
