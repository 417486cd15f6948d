package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"snapcheck/internal/golden"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file...]",
	Short: "Re-compare files against their goldens whenever either changes",
	Long: `Watches each output file and its golden counterpart and re-runs the
comparison on every write. Useful while iterating on a baseline.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&goldenDir, "golden-dir", "", "directory holding golden files")
	watchCmd.Flags().StringVar(&goldenExt, "ext", "golden", "golden file extension")
	watchCmd.Flags().BoolVar(&valueAgnostic, "value-agnostic", false, "compare shape, folding literal values into placeholders")
}

func runWatch(cmd *cobra.Command, args []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the containing directories so atomic renames and goldens
	// that do not exist yet are still observed; events are filtered
	// back to the output file they belong to.
	sources := make(map[string]string, len(args)*2)
	dirs := make(map[string]struct{})
	for _, path := range args {
		sources[path] = path
		sources[goldenPathFor(path)] = path
		dirs[filepath.Dir(path)] = struct{}{}
		dirs[filepath.Dir(goldenPathFor(path))] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		logger.Debug("watching", zap.String("dir", dir))
	}

	cmp := golden.NewComparator(false, logger)
	for _, path := range args {
		reportWatch(cmp, path)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if src, ok := sources[ev.Name]; ok {
				reportWatch(cmp, src)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		case <-sig:
			return nil
		}
	}
}

func reportWatch(cmp *golden.Comparator, path string) {
	if err := compareOne(cmp, path); err != nil {
		if !errors.Is(err, errMismatch) {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
		}
		return
	}
	fmt.Printf("OK   %s\n", path)
}
