package tessy

import (
	"github.com/drone/drone-tessy/junit"
	"github.com/drone/drone-tessy/xmltree"
)

// Conversion is the outcome of converting one Tessy document.
type Conversion struct {
	Report   *junit.TestSuites
	Warnings []Warning
	Output   []byte
}

// Convert parses a Tessy document, maps it and serializes the JUnit report.
// Only a malformed document is an error; structural gaps are reported as
// warnings next to a (possibly empty) report.
func Convert(data []byte, opts ...xmltree.Option) (*Conversion, error) {
	root, err := xmltree.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	report, warnings := Map(root)
	return &Conversion{
		Report:   report,
		Warnings: warnings,
		Output:   junit.Serialize(report, opts...),
	}, nil
}

// ConvertString is Convert for text input and output.
func ConvertString(text string) (string, []Warning, error) {
	conv, err := Convert([]byte(text))
	if err != nil {
		return "", nil, err
	}
	return string(conv.Output), conv.Warnings, nil
}
