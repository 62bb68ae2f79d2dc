package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/godrain/internal/config"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write a site configuration file with the default parameters",
	Long: `Write an INI file holding every site parameter, ready to be edited
and passed back with --config.

Examples:
  godrain init site.ini
  godrain verify --config site.ini`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "godrain.ini"
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	if err := config.Write(path, config.Default()); err != nil {
		return err
	}
	logger.Info("config written")
	fmt.Printf("Site configuration written to: %s\n", path)
	return nil
}
