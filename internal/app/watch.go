package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/stackprobe/internal/output"
	"github.com/blackwell-systems/stackprobe/internal/watcher"
)

var (
	watchDebounce time.Duration

	watchCmd = &cobra.Command{
		Use:   "watch [codebase]",
		Short: "Re-run detection when the codebase changes",
		Long: `Watch a codebase and re-run detection after changes settle.

Each pass prints the outcome; a change in the detected technology or in
the fallback decision is called out explicitly. Runs in the foreground
until interrupted.`,
		Example: `  # Watch the current directory
  stackprobe watch

  # Watch with a longer settle period
  stackprobe watch ~/src/carddemo --debounce 10s`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}
)

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce,
		"quiet period after the last change before re-detecting")
}

func runWatch(cmd *cobra.Command, args []string) error {
	root, err := codebaseRoot(args)
	if err != nil {
		return err
	}

	a, _, err := newAnalyzer()
	if err != nil {
		return err
	}

	last, err := a.Detect(root)
	if err != nil {
		return err
	}
	fmt.Print(output.RenderDecision(last))

	redetect := func() {
		result, err := a.Detect(root)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: detection failed: %v\n", err)
			return
		}

		if result.DetectedTechnology != last.DetectedTechnology ||
			result.FallbackUsed != last.FallbackUsed {
			fmt.Printf("\ndecision changed: %s -> %s\n",
				last.DetectedTechnology, result.DetectedTechnology)
			fmt.Print(output.RenderDecision(result))
		} else if result.Confidence != last.Confidence {
			fmt.Printf("confidence changed: %.2f -> %.2f (%s)\n",
				last.Confidence, result.Confidence, result.DetectedTechnology)
		}
		last = result
	}

	w, err := watcher.New(root, watchDebounce, redetect)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}

	fmt.Printf("\nwatching %s (Ctrl-C to stop)\n", root)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	fmt.Fprintf(os.Stderr, "received signal %v, shutting down...\n", sig)

	return w.Stop()
}
