package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var flagWatchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recompute the summary whenever the input file changes",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&flagWatchInterval, "interval", 2*time.Second, "Polling interval")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path, err := resolveInput()
	if err != nil {
		return err
	}

	// First render before entering the poll loop.
	if err := runSummary(cmd, args); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	lastMod := info.ModTime()

	fmt.Printf("\n  Watching %s (every %s). Ctrl-C to stop.\n", path, flagWatchInterval)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ticker := time.NewTicker(flagWatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\n  Stopped.")
			return nil
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				// File may be mid-rewrite; report and keep polling.
				fmt.Fprintf(os.Stderr, "  %v\n", err)
				continue
			}
			if !info.ModTime().After(lastMod) {
				continue
			}
			lastMod = info.ModTime()

			fmt.Printf("\n  %s changed, recomputing...\n", path)
			if err := runSummary(cmd, args); err != nil {
				// A half-written file should not kill the watch.
				fmt.Fprintf(os.Stderr, "  %v\n", err)
			}
		}
	}
}
