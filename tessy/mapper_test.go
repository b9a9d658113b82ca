package tessy

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/drone/drone-tessy/junit"
	"github.com/drone/drone-tessy/xmltree"
)

func mustParse(t *testing.T, text string) *xmltree.Node {
	t.Helper()
	root, err := xmltree.Parse(text)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	return root
}

func TestMap(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *junit.TestSuites
		warnings []Warning
	}{
		{
			name:     "NotAReport",
			input:    `<testsuites/>`,
			expected: &junit.TestSuites{Name: "tessy tests"},
			warnings: []Warning{{Kind: StructuralGap, Node: "report", Message: MsgMissingReport}},
		},
		{
			name:     "MissingSummary",
			input:    `<report/>`,
			expected: &junit.TestSuites{Name: "tessy tests"},
			warnings: []Warning{{Kind: StructuralGap, Node: "summary", Message: MsgMissingSummary}},
		},
		{
			name:     "MissingInfo",
			input:    `<report><summary><statistic total="3"/></summary><testobject><testcase name="a"/></testobject></report>`,
			expected: &junit.TestSuites{Name: "tessy tests"},
			warnings: []Warning{{Kind: StructuralGap, Node: "info", Message: MsgMissingInfo}},
		},
		{
			name:     "MissingStatistic",
			input:    `<report><summary><info module_name="m"/></summary><testobject><testcase name="a"/></testobject></report>`,
			expected: &junit.TestSuites{Name: "tessy tests"},
			warnings: []Warning{{Kind: StructuralGap, Node: "statistic", Message: MsgMissingStatistic}},
		},
		{
			name:  "AllDefaults",
			input: `<report><summary><info/><statistic/></summary></report>`,
			expected: &junit.TestSuites{
				Name: "tessy tests",
				TestSuites: []*junit.TestSuite{{
					Name:      "unknown_module",
					Timestamp: "T",
					UUID:      "unknown_uuid",
				}},
			},
		},
		{
			name: "NonNumericStatistic",
			input: `<report><summary><info module_name="m"/>` +
				`<statistic total="eight" notok="" notexecuted=" 2 "/></summary></report>`,
			expected: &junit.TestSuites{
				Name: "tessy tests",
				TestSuites: []*junit.TestSuite{{
					Name:      "m",
					Skipped:   2,
					Timestamp: "T",
					UUID:      "unknown_uuid",
				}},
			},
		},
		{
			name: "FlattensTestObjects",
			input: `<report>
				<testobject><testcase name="before_summary" uuid="u0"/></testobject>
				<summary><info module_name="m" module_uuid="mu" date="d" time="t" host="h"/><statistic total="1" notok="2" notexecuted="3"/></summary>
				<testobject><testcase name="a" uuid="u1"/><other/><testcase uuid="u2"/></testobject>
				<testobject/>
				<testcase name="not_in_testobject"/>
				<testobject><group><testcase name="nested"/></group><testcase name="b"/></testobject>
			</report>`,
			expected: &junit.TestSuites{
				Name: "tessy tests",
				TestSuites: []*junit.TestSuite{{
					Name:      "m",
					Errors:    2,
					Skipped:   3,
					Tests:     1,
					Timestamp: "dTt",
					Hostname:  "h",
					UUID:      "mu",
					TestCases: []*junit.TestCase{
						{Name: "before_summary", UUID: "u0"},
						{Name: "a", UUID: "u1"},
						{Name: "", UUID: "u2"},
						{Name: "b"},
					},
				}},
			},
		},
		{
			name:     "AnchorsNotNested",
			input:    `<report><summary><wrapper><info/><statistic/></wrapper></summary></report>`,
			expected: &junit.TestSuites{Name: "tessy tests"},
			warnings: []Warning{{Kind: StructuralGap, Node: "info", Message: MsgMissingInfo}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			report, warnings := Map(mustParse(t, tc.input))

			if diff := cmp.Diff(tc.expected, report); diff != "" {
				t.Errorf("Map() report mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.warnings, warnings); diff != "" {
				t.Errorf("Map() warnings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMapNilRoot(t *testing.T) {
	report, warnings := Map(nil)
	if len(report.TestSuites) != 0 || len(warnings) != 1 || warnings[0].Message != MsgMissingReport {
		t.Errorf("Map(nil) = %+v, %+v", report, warnings)
	}
}

func TestConvertExample(t *testing.T) {
	data, err := os.ReadFile("../testdata/tessy-report.xml")
	if err != nil {
		t.Fatalf("Failed to read test data: %v", err)
	}

	conv, err := Convert(data)
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	want := `<testsuites name="tessy tests">` +
		`<testsuite name="Test_Merge_Dicts" errors="0" failures="0" skipped="0" tests="8" time="0.0" timestamp="2024-11-26T13:08:11+0100" hostname="BUILD-PC-042">` +
		`<testcase classname="" name="test_merge_dictionaries" time="0.0"/>` +
		`</testsuite></testsuites>`
	if got := string(conv.Output); got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
	if len(conv.Warnings) != 0 {
		t.Errorf("Convert() unexpected warnings: %v", conv.Warnings)
	}

	again, err := Convert(data)
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	if string(again.Output) != string(conv.Output) {
		t.Errorf("Convert() is not deterministic")
	}
}

func TestConvertString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		warnings int
		err      bool
	}{
		{
			name:     "EmptyReport",
			input:    `<report/>`,
			expected: `<testsuites name="tessy tests"/>`,
			warnings: 1,
		},
		{
			name:     "EmptyButValid",
			input:    `<report><summary><info/><statistic/></summary></report>`,
			expected: `<testsuites name="tessy tests"><testsuite name="unknown_module" errors="0" failures="0" skipped="0" tests="0" time="0.0" timestamp="T" hostname=""/></testsuites>`,
		},
		{
			name:  "Malformed",
			input: `<report><summary>`,
			err:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, warnings, err := ConvertString(tc.input)
			if tc.err {
				var perr *xmltree.ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("ConvertString() error = %v, want *xmltree.ParseError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ConvertString() unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("ConvertString() = %q, want %q", got, tc.expected)
			}
			if len(warnings) != tc.warnings {
				t.Errorf("ConvertString() returned %d warnings, want %d", len(warnings), tc.warnings)
			}
		})
	}
}

func TestStructuralGapError(t *testing.T) {
	err := &StructuralGapError{Warnings: []Warning{{Kind: StructuralGap, Node: "summary", Message: MsgMissingSummary}}}
	if got, want := err.Error(), "structural gap: missing summary in report"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestConvertLargeReport(t *testing.T) {
	const numTestCases = 10000

	var sb strings.Builder
	sb.WriteString(`<report><summary><info module_name="Large"/><statistic total="10000"/></summary>`)
	for i := 0; i < numTestCases; i++ {
		if i%100 == 0 {
			sb.WriteString("<testobject>")
		}
		fmt.Fprintf(&sb, `<testcase name="case-%d"/>`, i)
		if i%100 == 99 {
			sb.WriteString("</testobject>")
		}
	}
	sb.WriteString("</report>")

	conv, err := Convert([]byte(sb.String()))
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	cases := conv.Report.TestSuites[0].TestCases
	if len(cases) != numTestCases {
		t.Fatalf("Convert() produced %d test cases, want %d", len(cases), numTestCases)
	}
	for i, tc := range cases {
		if want := fmt.Sprintf("case-%d", i); tc.Name != want {
			t.Fatalf("test case %d = %q, want %q", i, tc.Name, want)
		}
	}
}
