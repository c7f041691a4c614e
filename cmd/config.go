package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xvierd/zenith/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
	Long: `Inspect the Zenith configuration. Settings are read from a TOML file and
ZENITH_* environment variables; Zenith never writes the file itself.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			path = p
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		writeConfig(cmd.OutOrStdout(), app.config)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}

func writeConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Meditation:")
	for i, p := range cfg.Meditation.GetPresets() {
		fmt.Fprintf(w, "  [%d] %-8s %s\n", i+1, p.Name, p.Duration)
	}
	fmt.Fprintf(w, "  Tick interval:   %s\n", cfg.Meditation.TickInterval)
	fmt.Fprintln(w, "Breathing:")
	fmt.Fprintf(w, "  Tick interval:   %s\n", cfg.Breathing.TickInterval)

	notifStatus := "off"
	if cfg.Notifications.Enabled {
		notifStatus = "on"
		if cfg.Notifications.Sound {
			notifStatus = "on (with sound)"
		}
	}
	fmt.Fprintf(w, "Notifications:     %s\n", notifStatus)

	logDest := cfg.Log.File
	if logDest == "" {
		logDest = "discarded"
	}
	fmt.Fprintf(w, "Log:               %s (%s)\n", cfg.Log.Level, logDest)

	fmt.Fprintf(w, "Habits:            %d seeded\n", len(cfg.Content.Habits))
	fmt.Fprintln(w, "Emergency contacts:")
	for _, c := range cfg.Content.Contacts {
		fmt.Fprintf(w, "  %-18s %s\n", c.Name, c.Contact)
	}
}
