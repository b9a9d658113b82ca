package plugin

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/drone/drone-tessy/junit"
)

// logSuiteSummary logs the counts of a converted suite.
func logSuiteSummary(suite *junit.TestSuite) {
	logrus.Infof("\n===============================================")
	logrus.Infof("\nSuite: %s", suite.Name)
	logrus.Infof("\nTotal Tests: %d | Errors: %d | Skips: %d | Test Cases: %d", suite.Tests, suite.Errors, suite.Skipped, len(suite.TestCases))
	logrus.Infof("\n===============================================")
}

// logTotals logs the aggregated counts of a batch.
func logTotals(results Results, files int) {
	logrus.Infof("\n===============================================")
	logrus.Infof("\nConverted Files: %d/%d | Suites: %d", results.Files, files, results.Suites)
	logrus.Infof("\nTotal Tests Results: %d | Errors: %d | Skips: %d | Test Cases: %d", results.Tests, results.Errors, results.Skipped, results.TestCases)
	logrus.Infof("\n===============================================")
}

// validateThresholds validates test report thresholds based on aggregate results.
func validateThresholds(results Results, args Args) error {
	switch args.ThresholdMode {
	case ThresholdModeNone:
		return nil
	case ThresholdModeAbsolute:
		if err := validateAbsoluteThresholds(results, args); err != nil {
			return errors.New("absolute threshold validation failed: " + err.Error())
		}
	case ThresholdModePercentage:
		if err := validatePercentageThresholds(results, args); err != nil {
			return errors.New("percentage threshold validation failed: " + err.Error())
		}
	default:
		return fmt.Errorf("invalid ThresholdMode: %d, expected 0 (disabled), 1 (absolute) or 2 (percentage)", args.ThresholdMode)
	}
	return nil
}

// validateAbsoluteThresholds checks absolute thresholds.
func validateAbsoluteThresholds(results Results, args Args) error {
	if args.FailedErrors > 0 && results.Errors > args.FailedErrors {
		return fmt.Errorf("number of erroneous tests (%d) exceeded the error threshold (%d)", results.Errors, args.FailedErrors)
	}
	if args.FailedSkips > 0 && results.Skipped > args.FailedSkips {
		return fmt.Errorf("number of skipped tests (%d) exceeded the skip threshold (%d)", results.Skipped, args.FailedSkips)
	}
	return nil
}

// validatePercentageThresholds checks percentage-based thresholds.
func validatePercentageThresholds(results Results, args Args) error {
	if results.Tests == 0 {
		return nil // No tests to validate
	}

	errorRate := float64(results.Errors) / float64(results.Tests) * 100
	skipRate := float64(results.Skipped) / float64(results.Tests) * 100

	if args.FailedErrors > 0 && errorRate > float64(args.FailedErrors) {
		return fmt.Errorf("error rate (%.2f%%) exceeded the threshold (%.2f%%)", errorRate, float64(args.FailedErrors))
	}
	if args.FailedSkips > 0 && skipRate > float64(args.FailedSkips) {
		return fmt.Errorf("skip rate (%.2f%%) exceeded the threshold (%.2f%%)", skipRate, float64(args.FailedSkips))
	}
	return nil
}
