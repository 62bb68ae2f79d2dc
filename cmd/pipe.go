package cmd

import (
	"github.com/spf13/cobra"
)

var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Capacity of a single vertical or horizontal branch",
	Long: `Estimate the maximum flow one drainage branch can carry.

Subcommands:
  vertical    - Free-fall drop from the deck (v = √(2gh))
  horizontal  - Sloped pipe, Darcy–Weisbach with one friction correction

The capacity of --branches identical branches is checked against the
required OWS flow of the configured storm.`,
}

func init() {
	rootCmd.AddCommand(pipeCmd)
}
