package plugin

import "github.com/drone/drone-tessy/junit"

// Modes of operation.
const (
	ModeConvert   = "convert"
	ModeAnonymize = "anonymize"
)

// Threshold modes. ThresholdModeNone disables threshold validation.
const (
	ThresholdModeNone       = 0
	ThresholdModeAbsolute   = 1
	ThresholdModePercentage = 2
)

// Results aggregates the converted reports.
type Results struct {
	Files     int
	Suites    int
	Tests     int
	Errors    int
	Skipped   int
	TestCases int
}

func (r *Results) add(other Results) {
	r.Files += other.Files
	r.Suites += other.Suites
	r.Tests += other.Tests
	r.Errors += other.Errors
	r.Skipped += other.Skipped
	r.TestCases += other.TestCases
}

// reportResults counts the suites of a JUnit report.
func reportResults(report *junit.TestSuites) Results {
	results := Results{Files: 1}
	for _, suite := range report.TestSuites {
		results.Suites++
		results.Tests += suite.Tests
		results.Errors += suite.Errors
		results.Skipped += suite.Skipped
		results.TestCases += len(suite.TestCases)
	}
	return results
}
