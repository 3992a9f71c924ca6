package app

import (
	"github.com/spf13/cobra"
)

var (
	templatesPath string
	dbPath        string
	verbose       bool

	// RootCmd is the root command for stackprobe
	RootCmd = &cobra.Command{
		Use:   "stackprobe",
		Short: "Technology stack detection with confidence scoring",
		Long: `stackprobe detects the technology stack of a codebase by combining
three independent filesystem signals — file extensions, configuration
files, and directory structure — into a weighted confidence score, then
selects the matching analysis profile from a template catalog.

A technology is accepted when its confidence clears the catalog's
threshold (default 0.7); otherwise the generic fallback profile is used.

Examples:
  # Detect the technology of the current directory
  stackprobe detect

  # Detect a specific codebase and export the result as JSON
  stackprobe detect ~/src/carddemo --json

  # Show the per-method score breakdown
  stackprobe detect --explain

  # Audit the detection result
  stackprobe validate ~/src/carddemo

  # Print the analysis patterns for the detected technology
  stackprobe patterns ~/src/carddemo

  # Re-run detection whenever the codebase changes
  stackprobe watch ~/src/carddemo`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&templatesPath, "templates", "",
		"technology template catalog (default: technology_templates.json, JSON or YAML)")
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "",
		"history database path (default: ~/.stackprobe/stackprobe.db)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2

	// Register subcommands
	RootCmd.AddCommand(detectCmd)
	RootCmd.AddCommand(validateCmd)
	RootCmd.AddCommand(patternsCmd)
	RootCmd.AddCommand(templatesCmd)
	RootCmd.AddCommand(historyCmd)
	RootCmd.AddCommand(watchCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}
