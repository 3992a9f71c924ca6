package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/stackprobe/internal/analyzer"
	"github.com/blackwell-systems/stackprobe/internal/output"
)

var (
	patternsJSON bool

	patternsCmd = &cobra.Command{
		Use:   "patterns [codebase]",
		Short: "Print the analysis configuration for a codebase",
		Long: `Run detection and print the analysis configuration derived from the
chosen profile: file pattern groups, regex patterns, integration points,
and the per-analysis-type sections generated from them.`,
		Example: `  # Show analysis sections for the current directory
  stackprobe patterns

  # Export the full analysis configuration as JSON
  stackprobe patterns ~/src/carddemo --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPatterns,
	}
)

func init() {
	patternsCmd.Flags().BoolVar(&patternsJSON, "json", false, "print the analysis configuration as JSON")
}

func runPatterns(cmd *cobra.Command, args []string) error {
	root, err := codebaseRoot(args)
	if err != nil {
		return err
	}

	a, _, err := newAnalyzer()
	if err != nil {
		return err
	}

	result, err := a.Detect(root)
	if err != nil {
		return err
	}

	cfg := analyzer.ConfiguredPatterns(result)

	if patternsJSON {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode analysis configuration: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Profile: %s\n\n", result.Profile.Name)
	fmt.Print(output.RenderAnalysisSections(cfg))
	return nil
}
