package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"benchreport/internal/benchmark"
	"benchreport/internal/cmdutils"
	"benchreport/internal/report"
	"benchreport/internal/telemetry"
)

const usage = "Usage: compare-results <results_dir> <v1_name> <v2_name>"

var exit = os.Exit

// UsageError reports missing positional arguments.
type UsageError struct{}

func (e *UsageError) Error() string { return usage }

// ErrRegression is returned by --fail-on-regression when any fixture regressed.
var ErrRegression = errors.New("performance regression detected")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare-results <results_dir> <v1_name> <v2_name>",
		Short: "Compare two benchmark result sets as a Markdown table",
		Long: `Reads every <fixture>_v1.json / <fixture>_v2.json pair in results_dir,
computes the percentage change of the mean and prints a Markdown table.
Changes under 5% are reported as no change. Fixtures missing either file
are skipped.

Labels may start with a dash (compare-results results -O2 -O3); anything
that is not one of the flags below is taken as a positional argument.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 {
				return &UsageError{}
			}
			return nil
		},
		RunE:          runCompare,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmdutils.AddCommonFlags(cmd)
	cmd.Flags().Bool("pretty", false, "Render the table for the terminal")
	cmd.Flags().String("style", "dark", "Terminal style used with --pretty (dark, light, notty, ascii...)")
	cmd.Flags().Bool("fail-on-regression", false, "Exit non-zero if any benchmark regressed")
	cmd.Flags().String("metrics-file", "", "Write Prometheus textfile metrics to this path")
	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	v, err := cmdutils.LoadConfig(cmd)
	if err != nil {
		return err
	}

	dir, v1Name, v2Name := args[0], args[1], args[2]

	rows, err := benchmark.CompareDir(cmdutils.NewFS(), dir)
	if err != nil {
		return err
	}
	telemetry.LogDebug("Compared fixtures", "dir", dir, "count", len(rows))

	out := report.Markdown(v1Name, v2Name, rows)
	if v.GetBool("pretty") {
		rendered, err := report.Render(out, v.GetString("style"), 120)
		if err != nil {
			telemetry.LogError("Falling back to plain markdown", err)
		} else {
			out = rendered
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	if path := v.GetString("metrics-file"); path != "" {
		if err := writeMetrics(path, v1Name, v2Name, rows); err != nil {
			return err
		}
	}

	if v.GetBool("fail-on-regression") {
		if s := benchmark.Summarize(rows); s.Regressed > 0 {
			return fmt.Errorf("%w: %d of %d benchmarks slower", ErrRegression, s.Regressed, len(rows))
		}
	}
	return nil
}

func writeMetrics(path, v1Name, v2Name string, rows []benchmark.Comparison) error {
	m := telemetry.NewComparisonMetrics()
	for _, r := range rows {
		m.ObserveMean(r.Name, v1Name, r.V1Millis)
		m.ObserveMean(r.Name, v2Name, r.V2Millis)
		m.ObserveChange(r.Name, r.Change)
	}
	return m.WriteTextfile(path)
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.InitDefaultHelpFlag()
	cmd.SetArgs(separatePositionals(cmd.Flags(), args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(stdout, usageErr.Error())
		return 1
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

// Execute runs the root command against the process arguments and exits.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if code := run(os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		exit(code)
	}
}
