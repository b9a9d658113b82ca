package main

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"

	"github.com/drone/drone-tessy/plugin"
)

func TestRootCmd(t *testing.T) {
	env := plugin.Args{
		InputDir:              "/env/in",
		OutputDir:             "/env/out",
		Mode:                  plugin.ModeAnonymize,
		ReportFilenamePattern: "*.xml",
		Concurrency:           4,
	}

	tests := []struct {
		name     string
		argv     []string
		expected plugin.Args
	}{
		{
			name:     "EnvironmentOnly",
			argv:     []string{},
			expected: env,
		},
		{
			name: "ConvertFlagsOverrideEnvironment",
			argv: []string{"convert", "-i", "in", "-o", "out", "--strict", "--concurrency", "2", "--threshold-mode", "1", "--failed-errors", "3"},
			expected: plugin.Args{
				InputDir:              "in",
				OutputDir:             "out",
				Mode:                  plugin.ModeConvert,
				ReportFilenamePattern: "*.xml",
				Strict:                true,
				Concurrency:           2,
				ThresholdMode:         1,
				FailedErrors:          3,
			},
		},
		{
			name: "Anonymize",
			argv: []string{"anonymize", "--input", "a", "--output", "b", "--pattern", "report_*.xml"},
			expected: plugin.Args{
				InputDir:              "a",
				OutputDir:             "b",
				Mode:                  plugin.ModeAnonymize,
				ReportFilenamePattern: "report_*.xml",
				Concurrency:           4,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := env
			var got plugin.Args
			cmd := newRootCmd(&args, func(_ context.Context, a plugin.Args) error {
				got = a
				return nil
			})
			cmd.SetArgs(tc.argv)

			if err := cmd.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("Execute() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	setLogLevel("debug")
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", logrus.GetLevel())
	}
	setLogLevel("verbose")
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Errorf("unknown level changed the level to %v", logrus.GetLevel())
	}
}
