package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/godrain/internal/log"
	"github.com/alexiusacademia/godrain/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	logLevel   string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "godrain",
	Short: "Drainage pipe capacity verification for oil-water separators",
	Long: `godrain - Go Drainage Capacity Checker

A CLI tool that checks whether the drainage branches feeding an
oil-water separator (OWS) can carry the peak stormwater flow of a
design storm over the catchment.

This tool helps engineers perform:
  - Required OWS flow sizing from rainfall intensity and catchment area
  - Vertical drop capacity (free-fall, Wyly–Eaton approximation)
  - Horizontal branch capacity (Darcy–Weisbach, Swamee–Jain friction)
  - Sufficiency checks across identical parallel branches
  - Diameter sweeps to find the smallest sufficient pipe

Parameters come from built-in site defaults, an optional INI file
(--config), GODRAIN_* environment variables and command flags,
in increasing order of precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := log.InitLog(logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   godrain v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Drainage Capacity Checker                            ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Verifies that the pipe branches feeding an oil-water")
		fmt.Println("  separator can carry the peak flow of a design storm.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Required OWS flow from rainfall and catchment")
		fmt.Println("    • Vertical and horizontal branch capacity")
		fmt.Println("    • Laminar / turbulent friction factor")
		fmt.Println("    • Diameter sweep with ASCII and image charts")
		fmt.Println("    • XLSX report export")
		fmt.Println()
		fmt.Println("  Use 'godrain --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to site INI file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}
