package cmd

import (
	"fmt"

	"github.com/alexiusacademia/godrain/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of godrain",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("godrain v%s\n", version.Version)
		fmt.Println("Drainage Capacity Checker for oil-water separator inflow")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
