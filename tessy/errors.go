package tessy

import (
	"fmt"
	"strings"
)

// Warning messages for missing anchor nodes.
const (
	MsgMissingReport    = "missing report in xml file"
	MsgMissingSummary   = "missing summary in report"
	MsgMissingInfo      = "missing info in summary"
	MsgMissingStatistic = "missing statistic in summary"
)

// WarningKind classifies a Warning.
type WarningKind int

// StructuralGap marks a required anchor node (report, summary, info,
// statistic) that is absent, which stops extraction for the rest of the report.
const StructuralGap WarningKind = iota + 1

func (k WarningKind) String() string {
	if k == StructuralGap {
		return "StructuralGap"
	}
	return "Unknown"
}

// Warning is a diagnostic raised while mapping a report. Node names the
// element the warning is about.
type Warning struct {
	Kind    WarningKind
	Node    string
	Message string
}

func gap(node, message string) Warning {
	return Warning{Kind: StructuralGap, Node: node, Message: message}
}

func (w Warning) String() string {
	return w.Message
}

// StructuralGapError turns the warnings of a conversion into an error for
// callers that refuse incomplete reports.
type StructuralGapError struct {
	Warnings []Warning
}

func (e *StructuralGapError) Error() string {
	msgs := make([]string, 0, len(e.Warnings))
	for _, w := range e.Warnings {
		msgs = append(msgs, w.Message)
	}
	return fmt.Sprintf("structural gap: %s", strings.Join(msgs, "; "))
}
