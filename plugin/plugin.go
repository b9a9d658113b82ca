package plugin

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Args represents the plugin's configurable arguments.
type Args struct {
	InputDir              string `envconfig:"PLUGIN_INPUT_DIR"`
	OutputDir             string `envconfig:"PLUGIN_OUTPUT_DIR"`
	Mode                  string `envconfig:"PLUGIN_MODE" default:"convert"`
	ReportFilenamePattern string `envconfig:"PLUGIN_REPORT_FILENAME_PATTERN" default:"*.xml"`
	Strict                bool   `envconfig:"PLUGIN_STRICT"`
	Concurrency           int    `envconfig:"PLUGIN_CONCURRENCY" default:"4"`
	PluginFailIfNoResults bool   `envconfig:"PLUGIN_FAIL_IF_NO_RESULTS"`
	FailedErrors          int    `envconfig:"PLUGIN_FAILED_ERRORS"`
	FailedSkips           int    `envconfig:"PLUGIN_FAILED_SKIPS"`
	ThresholdMode         int    `envconfig:"PLUGIN_THRESHOLD_MODE"`
	Level                 string `envconfig:"PLUGIN_LOG_LEVEL"`
}

var errNoFiles = errors.New("no files found matching the report filename pattern")

// ValidateInputs ensures the user inputs meet the plugin requirements.
func ValidateInputs(args Args) error {
	if args.InputDir == "" {
		return errors.New("missing required parameter: InputDir. Please specify the directory holding the Tessy XML reports")
	}
	if args.OutputDir == "" {
		return errors.New("missing required parameter: OutputDir. Please specify the directory to write the reports to")
	}
	info, err := os.Stat(args.InputDir)
	if err != nil {
		return fmt.Errorf("input directory %q is not accessible: %w", args.InputDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input directory %q is not a directory", args.InputDir)
	}
	if sameDir(args.InputDir, args.OutputDir) {
		return errors.New("input and output directory must differ, the reports would be overwritten")
	}
	if args.Mode != ModeConvert && args.Mode != ModeAnonymize {
		return fmt.Errorf("invalid Mode %q. It must be %q or %q", args.Mode, ModeConvert, ModeAnonymize)
	}
	if args.Concurrency < 1 {
		return errors.New("concurrency must be at least 1")
	}
	if args.FailedErrors < 0 || args.FailedSkips < 0 {
		return errors.New("threshold values must be non-negative. Check the configured values for errors and skipped tests")
	}
	switch args.ThresholdMode {
	case ThresholdModeNone, ThresholdModeAbsolute, ThresholdModePercentage:
	default:
		return errors.New("invalid ThresholdMode value. It must be 0 (disabled), 1 (absolute) or 2 (percentage). Check the configuration")
	}
	return nil
}

// Exec converts or anonymizes every report found in the input directory.
// A failing file is logged and skipped; the returned error lists all of them
// once every file was processed.
func Exec(ctx context.Context, args Args) error {
	files, err := locateFiles(args.InputDir, args.ReportFilenamePattern)
	if errors.Is(err, errNoFiles) {
		if args.PluginFailIfNoResults {
			return errors.New("no Tessy XML report files found. Check the input directory and report file pattern")
		}
		logrus.Warn("No Tessy XML report files found, continuing execution as PluginFailIfNoResults is false")
		return nil
	}
	if err != nil {
		logrus.WithError(err).Error("Error locating files")
		return errors.New("failed to locate files: " + err.Error())
	}

	if err := os.MkdirAll(args.OutputDir, 0o755); err != nil {
		logrus.WithError(err).WithField("Directory", args.OutputDir).Error("Failed to create output directory")
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	results, err := processFiles(ctx, files, args)
	if args.Mode == ModeAnonymize {
		logrus.Infof("Anonymized %d of %d files", results.Files, len(files))
		return err
	}

	logTotals(results, len(files))
	if err != nil {
		return err
	}

	if err := validateThresholds(results, args); err != nil {
		logrus.WithFields(logrus.Fields{
			"Total Tests": results.Tests,
			"Errors":      results.Errors,
			"Skipped":     results.Skipped,
		}).Error(err.Error())
		return err
	}
	return nil
}

// locateFiles identifies files in dir matching the given pattern, sorted by name.
func locateFiles(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		logrus.WithError(err).WithField("Pattern", pattern).Error("Error occurred while searching for files")
		return nil, errors.New("failed to search for files: " + err.Error())
	}

	var files []string
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && info.Mode().IsRegular() {
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return nil, errNoFiles
	}
	return files, nil
}

// processFiles runs processFile over files with at most args.Concurrency
// files in flight. Per-file failures are collected, not propagated; a
// cancelled context is appended to them.
func processFiles(ctx context.Context, files []string, args Args) (Results, error) {
	var (
		mu      sync.Mutex
		total   Results
		failed  *multierror.Error
		workers = args.Concurrency
	)
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results, err := processFile(file, args)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logrus.WithField("File", file).WithError(err).Error("Error processing file")
				failed = multierror.Append(failed, fmt.Errorf("%s: %w", file, err))
				return nil
			}
			total.add(results)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return total, multierror.Append(failed, err)
	}
	return total, failed.ErrorOrNil()
}

func sameDir(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
