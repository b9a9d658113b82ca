package junit

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/drone/drone-tessy/xmltree"
)

// NewTestSuites instantiate a TestSuites root
func NewTestSuites(name string) *TestSuites {
	return &TestSuites{Name: name}
}

// NewTestSuite instantiate a TestSuite
func NewTestSuite(name string) *TestSuite {
	return &TestSuite{Name: name}
}

// NewTestCase instantiate a TestCase
func NewTestCase(classname, name string) *TestCase {
	return &TestCase{Classname: classname, Name: name}
}

// AddTestSuite appends suite and returns it.
func (s *TestSuites) AddTestSuite(suite *TestSuite) *TestSuite {
	s.TestSuites = append(s.TestSuites, suite)
	return suite
}

// AddTestCase appends tc and returns it.
func (s *TestSuite) AddTestCase(tc *TestCase) *TestCase {
	s.TestCases = append(s.TestCases, tc)
	return tc
}

// Set overrides an attribute before serialization. Known keys update the
// typed field and must parse as its type; other keys land in Extra.
func (s *TestSuites) Set(key, value string) error {
	if key == "name" {
		s.Name = value
		return nil
	}
	s.Extra = setExtra(s.Extra, key, value)
	return nil
}

// Set overrides an attribute before serialization. Known keys update the
// typed field and must parse as its type; other keys land in Extra.
func (s *TestSuite) Set(key, value string) error {
	switch key {
	case "name":
		s.Name = value
	case "errors", "failures", "skipped", "tests":
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		*s.count(key) = n
	case "time":
		f, err := parseFloat(key, value)
		if err != nil {
			return err
		}
		s.Time = f
	case "timestamp":
		s.Timestamp = value
	case "hostname":
		s.Hostname = value
	default:
		s.Extra = setExtra(s.Extra, key, value)
	}
	return nil
}

func (s *TestSuite) count(key string) *int {
	switch key {
	case "errors":
		return &s.Errors
	case "failures":
		return &s.Failures
	case "skipped":
		return &s.Skipped
	}
	return &s.Tests
}

// Set overrides an attribute before serialization. Known keys update the
// typed field and must parse as its type; other keys land in Extra.
func (c *TestCase) Set(key, value string) error {
	switch key {
	case "classname":
		c.Classname = value
	case "name":
		c.Name = value
	case "time":
		f, err := parseFloat(key, value)
		if err != nil {
			return err
		}
		c.Time = f
	default:
		c.Extra = setExtra(c.Extra, key, value)
	}
	return nil
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("attribute %s: %w", key, err)
	}
	return n, nil
}

func parseFloat(key, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("attribute %s: %w", key, err)
	}
	return f, nil
}

func setExtra(extra []xml.Attr, key, value string) []xml.Attr {
	for i := range extra {
		if extra[i].Name.Local == key {
			extra[i].Value = value
			return extra
		}
	}
	return append(extra, xmltree.Attr(key, value))
}
