package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/stackprobe/internal/output"
	"github.com/blackwell-systems/stackprobe/internal/store"
)

var (
	historyLimit int
	historyRoot  string

	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "List recorded detection runs",
		Long: `List detection runs recorded with 'stackprobe detect --record',
newest first. Use --root to narrow the listing to one codebase.`,
		Example: `  # Show the last 20 runs
  stackprobe history

  # Show runs for one codebase
  stackprobe history --root ~/src/carddemo

  # Show the last 5 runs
  stackprobe history --limit 5`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}
)

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to list")
	historyCmd.Flags().StringVar(&historyRoot, "root", "", "only list runs for this codebase root")
}

func runHistory(cmd *cobra.Command, args []string) error {
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

	root := historyRoot
	if root != "" {
		root, err = codebaseRoot([]string{root})
		if err != nil {
			return err
		}
	}

	runs, err := db.ListRuns(root, historyLimit)
	if err != nil {
		return err
	}

	fmt.Print(output.RenderRunTable(runs))
	return nil
}
