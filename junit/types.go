// Package junit models the JUnit XML report produced for CI dashboards.
package junit

import "encoding/xml"

// DefaultSuitesName is the name given to every generated testsuites root.
const DefaultSuitesName = "tessy tests"

// TestSuites is the root of a JUnit report.
type TestSuites struct {
	Name       string
	TestSuites []*TestSuite
	// Extra holds attributes with no typed field, written after the known ones.
	Extra []xml.Attr
}

// TestSuite defines a JUnit testsuite.
type TestSuite struct {
	Name      string
	Errors    int
	Failures  int
	Skipped   int
	Tests     int
	Time      float64
	Timestamp string
	Hostname  string
	TestCases []*TestCase
	Extra     []xml.Attr

	// UUID identifies the source module. It is not serialized.
	UUID string
}

// TestCase defines a JUnit testcase.
type TestCase struct {
	Classname string
	Name      string
	Time      float64
	Extra     []xml.Attr

	// UUID identifies the source test case. It is not serialized.
	UUID string
}
