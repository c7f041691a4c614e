// Package cmd provides the CLI commands for the Zenith application.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"

	// Global flags
	configPath string
	logFile    string
	logLevel   string
	noNotify   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zenith",
	Short: "Zenith - habits, sleep and mindfulness in your terminal",
	Long: `Zenith is a terminal wellbeing tracker with a daily dashboard, a habit
checklist, a sleep tracker, guided meditation and 4-7-8 breathing.

Run "zenith" with no arguments to open the interface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.zenith/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noNotify, "no-notify", false, "Disable desktop notifications")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Zenith\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(sleepCmd)
	rootCmd.AddCommand(configCmd)
}
