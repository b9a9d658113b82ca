package plugin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/drone/drone-tessy/tessy"
	"github.com/drone/drone-tessy/xmltree"
)

// processFile converts or anonymizes one report and writes the result under
// the same base name into the output directory. Failures are returned, the
// caller logs them.
func processFile(filename string, args Args) (Results, error) {
	logrus.Infof("Processing file: %s", filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		return Results{}, errors.New("failed to read file: " + err.Error())
	}

	outPath := filepath.Join(args.OutputDir, filepath.Base(filename))
	if args.Mode == ModeAnonymize {
		return anonymizeFile(outPath, data)
	}
	return convertFile(filename, outPath, data, args.Strict)
}

func convertFile(filename, outPath string, data []byte, strict bool) (Results, error) {
	conv, err := tessy.Convert(data, xmltree.WithHeader(), xmltree.WithIndent("  "))
	if err != nil {
		return Results{}, fmt.Errorf("failed to parse Tessy XML: %w", err)
	}

	for _, w := range conv.Warnings {
		logrus.WithFields(logrus.Fields{
			"File": filename,
			"Node": w.Node,
		}).Warn(w.Message)
	}
	if strict && len(conv.Warnings) > 0 {
		return Results{}, &tessy.StructuralGapError{Warnings: conv.Warnings}
	}

	if err := writeOutput(outPath, conv.Output); err != nil {
		return Results{}, fmt.Errorf("failed to write JUnit report: %w", err)
	}

	for _, suite := range conv.Report.TestSuites {
		logSuiteSummary(suite)
	}
	logrus.WithField("File", outPath).Debug("JUnit report written")
	return reportResults(conv.Report), nil
}

func anonymizeFile(outPath string, data []byte) (Results, error) {
	out, err := tessy.AnonymizeBytes(data, xmltree.WithHeader())
	if err != nil {
		return Results{}, fmt.Errorf("failed to parse Tessy XML: %w", err)
	}
	if err := writeOutput(outPath, out); err != nil {
		return Results{}, fmt.Errorf("failed to write anonymized report: %w", err)
	}
	logrus.Infof("Anonymized file saved to: %s", outPath)
	return Results{Files: 1}, nil
}

// writeOutput replaces path with data through a temporary file in the same
// directory, so readers never observe a partial report.
func writeOutput(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
