package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/stackprobe/internal/analyzer"
	"github.com/blackwell-systems/stackprobe/internal/output"
)

var validateCmd = &cobra.Command{
	Use:   "validate [codebase]",
	Short: "Audit the detection result for a codebase",
	Long: `Run detection and audit the outcome.

The report classifies confidence as high (>= 0.8), medium (>= 0.6), or
low, flags results below 0.5 confidence as invalid, and pairs each
warning with a recommendation. The valid/invalid gate is deliberately
separate from the detection threshold.`,
	Example: `  # Validate detection of the current directory
  stackprobe validate

  # Validate a specific codebase
  stackprobe validate ~/src/carddemo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
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

	report := analyzer.Validate(result)

	fmt.Print(output.RenderDecision(result))
	fmt.Println()
	fmt.Print(output.RenderValidationReport(report))
	return nil
}
