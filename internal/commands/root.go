package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configPath string
	dataDir    string
)

// noAppAnnotation marks commands that run without opening the data store
const noAppAnnotation = "logbook/no-app"

var rootCmd = &cobra.Command{
	Use:   "logbook",
	Short: "A CLI tracker for daily items and gym workouts",
	Long: `logbook keeps two personal logs in one local database:
items you count against a daily limit (caffeine, medication, habits) and
gym workouts on a fixed machine roster with trends and session history.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[noAppAnnotation] != "" {
			return nil
		}
		return openApp()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeApp()
	},
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Annotations: map[string]string{noAppAnnotation: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("logbook %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	// failing commands skip the post-run hook
	return multierr.Append(err, closeApp())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <data dir>/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.logbook)")

	// items tracker
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	// workout logger
	rootCmd.AddCommand(workoutCmd)

	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
