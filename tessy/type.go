// Package tessy converts Tessy test reports into JUnit reports and scrubs
// identifying text from them.
package tessy

import (
	"strconv"
	"strings"

	"github.com/drone/drone-tessy/xmltree"
)

// Element and attribute names of a Tessy report.
const (
	tagReport     = "report"
	tagSummary    = "summary"
	tagInfo       = "info"
	tagStatistic  = "statistic"
	tagTestObject = "testobject"
	tagTestCase   = "testcase"
)

// Info represents the summary/info element of a Tessy report.
type Info struct {
	ProjectName string
	ModuleName  string
	ModuleUUID  string
	Date        string
	Time        string
	Host        string
}

// Statistic represents the summary/statistic element of a Tessy report.
type Statistic struct {
	Total       int
	NotOK       int
	NotExecuted int
}

// TestCase represents a testcase element below a testobject.
type TestCase struct {
	Name string
	UUID string
}

func readInfo(n *xmltree.Node) Info {
	return Info{
		ProjectName: n.GetOr("project_name", "unknown_project"),
		ModuleName:  n.GetOr("module_name", "unknown_module"),
		ModuleUUID:  n.GetOr("module_uuid", "unknown_uuid"),
		Date:        n.GetOr("date", ""),
		Time:        n.GetOr("time", ""),
		Host:        n.GetOr("host", ""),
	}
}

func readStatistic(n *xmltree.Node) Statistic {
	return Statistic{
		Total:       atoi(n.GetOr("total", "")),
		NotOK:       atoi(n.GetOr("notok", "")),
		NotExecuted: atoi(n.GetOr("notexecuted", "")),
	}
}

func readTestCase(n *xmltree.Node) TestCase {
	return TestCase{
		Name: n.GetOr("name", ""),
		UUID: n.GetOr("uuid", ""),
	}
}

// atoi parses a count, treating missing or malformed values as 0.
func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
