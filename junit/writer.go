package junit

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/drone/drone-tessy/xmltree"
)

// FormatFloat renders f in its shortest form, keeping at least one
// fractional digit so 0 is written as "0.0".
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// Node renders the report as a generic tree.
func (s *TestSuites) Node() *xmltree.Node {
	n := xmltree.NewNode("testsuites", withExtra(s.Extra,
		xmltree.Attr("name", s.Name),
	)...)
	for _, suite := range s.TestSuites {
		n.Append(suite.Node())
	}
	return n
}

// Node renders the suite as a generic tree.
func (s *TestSuite) Node() *xmltree.Node {
	n := xmltree.NewNode("testsuite", withExtra(s.Extra,
		xmltree.Attr("name", s.Name),
		xmltree.Attr("errors", strconv.Itoa(s.Errors)),
		xmltree.Attr("failures", strconv.Itoa(s.Failures)),
		xmltree.Attr("skipped", strconv.Itoa(s.Skipped)),
		xmltree.Attr("tests", strconv.Itoa(s.Tests)),
		xmltree.Attr("time", FormatFloat(s.Time)),
		xmltree.Attr("timestamp", s.Timestamp),
		xmltree.Attr("hostname", s.Hostname),
	)...)
	for _, tc := range s.TestCases {
		n.Append(tc.Node())
	}
	return n
}

// Node renders the test case as a generic tree.
func (c *TestCase) Node() *xmltree.Node {
	return xmltree.NewNode("testcase", withExtra(c.Extra,
		xmltree.Attr("classname", c.Classname),
		xmltree.Attr("name", c.Name),
		xmltree.Attr("time", FormatFloat(c.Time)),
	)...)
}

func withExtra(extra []xml.Attr, known ...xml.Attr) []xml.Attr {
	return append(known, extra...)
}

// Serialize renders the report as XML text.
func Serialize(s *TestSuites, opts ...xmltree.Option) []byte {
	return xmltree.Marshal(s.Node(), opts...)
}

// WriteReport write a report in JUnit format to the output writer
func WriteReport(w io.Writer, s *TestSuites, opts ...xmltree.Option) error {
	return xmltree.Write(w, s.Node(), opts...)
}
