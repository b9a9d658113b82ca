package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/drone/drone-tessy/plugin"
)

type runFunc func(ctx context.Context, args plugin.Args) error

// newRootCmd builds the command line. Flag defaults come from args, which
// already holds the PLUGIN_* environment, so flags override the environment.
func newRootCmd(args *plugin.Args, run runFunc) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "drone-tessy",
		Short:         "Convert Tessy test reports to JUnit XML",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `drone-tessy converts the XML reports of the Tessy unit test tool into JUnit XML
so CI dashboards can display them. It can also anonymize Tessy reports before
they are shared.

Without a subcommand the mode is taken from PLUGIN_MODE.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), *args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&args.InputDir, "input", "i", args.InputDir, "directory holding the Tessy XML reports")
	flags.StringVarP(&args.OutputDir, "output", "o", args.OutputDir, "directory the reports are written to")
	flags.StringVar(&args.ReportFilenamePattern, "pattern", args.ReportFilenamePattern, "glob selecting the reports inside the input directory")
	flags.IntVar(&args.Concurrency, "concurrency", args.Concurrency, "number of reports processed in parallel")
	flags.StringVar(&args.Level, "log-level", args.Level, "log level (debug, info, warn, error)")

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert Tessy reports to JUnit XML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args.Mode = plugin.ModeConvert
			return run(cmd.Context(), *args)
		},
	}
	convertCmd.Flags().BoolVar(&args.Strict, "strict", args.Strict, "fail reports with missing summary, info or statistic instead of writing an empty JUnit report")
	convertCmd.Flags().BoolVar(&args.PluginFailIfNoResults, "fail-if-no-results", args.PluginFailIfNoResults, "fail when no report matches")
	convertCmd.Flags().IntVar(&args.ThresholdMode, "threshold-mode", args.ThresholdMode, "0 disables thresholds, 1 absolute, 2 percentage")
	convertCmd.Flags().IntVar(&args.FailedErrors, "failed-errors", args.FailedErrors, "error threshold")
	convertCmd.Flags().IntVar(&args.FailedSkips, "failed-skips", args.FailedSkips, "skip threshold")

	anonymizeCmd := &cobra.Command{
		Use:   "anonymize",
		Short: "Scrub identifying text from Tessy reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args.Mode = plugin.ModeAnonymize
			return run(cmd.Context(), *args)
		},
	}

	rootCmd.AddCommand(convertCmd, anonymizeCmd)
	return rootCmd
}
