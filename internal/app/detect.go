package app

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/stackprobe/internal/output"
	"github.com/blackwell-systems/stackprobe/internal/store"
)

var (
	detectJSON    bool
	detectExplain bool
	detectRecord  bool

	detectCmd = &cobra.Command{
		Use:   "detect [codebase]",
		Short: "Detect the technology stack of a codebase",
		Long: `Detect the technology stack of a codebase (default: current directory).

Three independent signals are scored per technology — the share of files
with configured extensions, the presence of configured marker files, and
matching directory structure — and combined into a weighted confidence.
The top candidate is accepted when its confidence meets the catalog's
threshold; otherwise the generic fallback profile is selected.`,
		Example: `  # Detect the current directory
  stackprobe detect

  # Export the full result document as JSON
  stackprobe detect ~/src/carddemo --json

  # Show all candidates with per-method scores
  stackprobe detect --explain

  # Record the outcome in the local history database
  stackprobe detect --record`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDetect,
	}
)

func init() {
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "print the result document as JSON")
	detectCmd.Flags().BoolVar(&detectExplain, "explain", false, "show ranked candidates with per-method scores")
	detectCmd.Flags().BoolVar(&detectRecord, "record", false, "record the run in the history database")
}

func runDetect(cmd *cobra.Command, args []string) error {
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

	if detectRecord {
		if err := recordRun(result.Root, result.DetectedTechnology, result.Confidence,
			result.FallbackUsed, result.TemplateMissing, result.FileCount); err != nil {
			return err
		}
	}

	if detectJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Print(output.RenderDecision(result))
	if detectExplain {
		fmt.Println()
		fmt.Print(output.RenderCandidateTable(result.Candidates))
	}
	return nil
}

func recordRun(root, tech string, confidence float64, fallback, missing bool, files int) error {
	path, err := getDBPath()
	if err != nil {
		return err
	}

	db, err := store.New(path)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	if err := db.CreateSchema(); err != nil {
		return err
	}

	_, err = db.InsertRun(&store.DetectionRun{
		Root:               root,
		DetectedTechnology: tech,
		Confidence:         confidence,
		FallbackUsed:       fallback,
		TemplateMissing:    missing,
		FileCount:          files,
		CreatedAt:          time.Now().UTC(),
	})
	return err
}
