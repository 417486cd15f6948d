package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"snapcheck/internal/golden"
)

var (
	goldenDir     string
	goldenExt     string
	updateGoldens bool
	ciMode        bool
	valueAgnostic bool
)

// errMismatch marks comparison failures whose diff has already been
// printed, so callers do not report them twice.
var errMismatch = errors.New("content mismatch")

var compareCmd = &cobra.Command{
	Use:   "compare [file...]",
	Short: "Compare output files against their golden baselines",
	Long: `Compares each file's content against its golden counterpart. The
golden path is the file with its extension replaced (default .golden);
multi-extension names keep their extensions and gain the golden one.
With --golden-dir set, the derived name is looked up there instead.

Files are compared concurrently; each artifact is owned by exactly one
comparison. With --update, current content atomically replaces the
baselines instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&goldenDir, "golden-dir", "", "directory holding golden files")
	compareCmd.Flags().StringVar(&goldenExt, "ext", "golden", "golden file extension")
	compareCmd.Flags().BoolVar(&updateGoldens, "update", false, "rewrite golden files from current content")
	compareCmd.Flags().BoolVar(&ciMode, "ci", false, "treat missing golden files as hard failures")
	compareCmd.Flags().BoolVar(&valueAgnostic, "value-agnostic", false, "compare shape, folding literal values into placeholders")
}

// goldenPathFor derives the golden counterpart of an output file. A
// multi-extension name like box.kt.txt keeps all of its extensions and
// gains the golden one; a single extension is replaced.
func goldenPathFor(path string) string {
	var derived string
	if golden.IsMultiExtensionName(filepath.Base(path)) {
		derived = path + "." + goldenExt
	} else {
		derived = golden.ReplaceExtension(path, goldenExt)
	}
	if goldenDir != "" {
		return filepath.Join(goldenDir, filepath.Base(derived))
	}
	return derived
}

func runCompare(cmd *cobra.Command, args []string) error {
	cmp := golden.NewComparator(ciMode || policy.CI, logger)

	var g errgroup.Group
	for _, path := range args {
		path := path
		g.Go(func() error {
			return compareOne(cmp, path)
		})
	}
	return g.Wait()
}

func compareOne(cmp *golden.Comparator, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	actual := string(data)
	goldenPath := goldenPathFor(path)

	if updateGoldens {
		return updateOne(goldenPath, actual)
	}

	if valueAgnostic {
		err = cmp.AssertValueAgnostic(goldenPath, actual)
	} else {
		err = cmp.Assert(goldenPath, actual, nil)
	}
	if err != nil {
		var mismatch *golden.MismatchError
		if errors.As(err, &mismatch) {
			fmt.Fprintf(os.Stderr, "FAIL %s\n%s", goldenPath, mismatch.Diff)
			return fmt.Errorf("%s differs from %s: %w", path, goldenPath, errMismatch)
		}
		return err
	}
	logger.Debug("golden match", zap.String("file", path), zap.String("golden", goldenPath))
	return nil
}

func updateOne(goldenPath, actual string) error {
	cmp := golden.NewComparator(false, logger)
	res, err := cmp.Compare(goldenPath, actual, nil)
	if err != nil {
		var missing *golden.MissingFileError
		if errors.As(err, &missing) && missing.Generated {
			fmt.Printf("generated %s\n", goldenPath)
			return nil
		}
		return err
	}
	if res.Equal() {
		return nil
	}
	if err := golden.WriteFileAtomic(goldenPath, []byte(res.ActualSanitized)); err != nil {
		return err
	}
	fmt.Printf("updated %s\n", goldenPath)
	return nil
}
