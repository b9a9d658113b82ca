package tessy

import (
	"github.com/drone/drone-tessy/junit"
	"github.com/drone/drone-tessy/xmltree"
)

// Map builds a JUnit report from a parsed Tessy report.
//
// Map never fails: when an anchor node (report, summary, info, statistic) is
// missing it stops, records a Warning and returns what was built so far, which
// is always a serializable report. A summary without statistic yields no
// testsuite even when its info was readable.
func Map(root *xmltree.Node) (*junit.TestSuites, []Warning) {
	report := junit.NewTestSuites(junit.DefaultSuitesName)

	if root == nil || root.Tag != tagReport {
		return report, []Warning{gap(tagReport, MsgMissingReport)}
	}

	summary := root.Find(tagSummary)
	if summary == nil {
		return report, []Warning{gap(tagSummary, MsgMissingSummary)}
	}

	infoNode := summary.Find(tagInfo)
	if infoNode == nil {
		return report, []Warning{gap(tagInfo, MsgMissingInfo)}
	}
	info := readInfo(infoNode)

	statNode := summary.Find(tagStatistic)
	if statNode == nil {
		return report, []Warning{gap(tagStatistic, MsgMissingStatistic)}
	}
	stat := readStatistic(statNode)

	suite := report.AddTestSuite(newTestSuite(info, stat))
	for _, object := range root.FindAll(tagTestObject) {
		for _, tc := range object.FindAll(tagTestCase) {
			suite.AddTestCase(newTestCase(readTestCase(tc)))
		}
	}

	return report, nil
}

// newTestSuite maps info and statistic onto a testsuite. Counts are copied
// from the statistic, never recounted from the test cases.
func newTestSuite(info Info, stat Statistic) *junit.TestSuite {
	return &junit.TestSuite{
		Name:      info.ModuleName,
		Errors:    stat.NotOK,
		Failures:  0,
		Skipped:   stat.NotExecuted,
		Tests:     stat.Total,
		Time:      0.0,
		Timestamp: info.Date + "T" + info.Time,
		Hostname:  info.Host,
		UUID:      info.ModuleUUID,
	}
}

// newTestCase maps a Tessy test case. Tessy has no class grouping nor a
// usable duration, hence the fixed classname and time.
func newTestCase(tc TestCase) *junit.TestCase {
	return &junit.TestCase{
		Classname: "",
		Name:      tc.Name,
		Time:      0.0,
		UUID:      tc.UUID,
	}
}
