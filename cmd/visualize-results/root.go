package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"benchreport/internal/chart"
	"benchreport/internal/cmdutils"
	"benchreport/internal/telemetry"
)

const usage = "Usage: visualize-results <result1.json> [result2.json ...] --output <dir> --labels <label1> <label2>"

var exit = os.Exit

// ErrNoFiles is returned when no argument resolves to an existing file,
// including calls whose only arguments are flags.
var ErrNoFiles = errors.New("no files found")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visualize-results <file_or_glob>... [--output <dir>] [--labels <label>...]",
		Short: "Render a grouped bar chart of benchmark results",
		Long: `Reads result files (shell globs are expanded), groups them by fixture and
version and writes <output>/comparison.png.

Files containing _v1 or _v2 take the first or second --labels value
(default v1 and v2). Other files take the label at the position of the
number of fixtures read so far, or their own name when labels run out.
--labels consumes every following argument up to the next flag.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrNoFiles
			}
			return nil
		},
		RunE:          runVisualize,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmdutils.AddCommonFlags(cmd)
	cmd.Flags().StringP("output", "o", "charts", "Directory to write comparison.png into")
	cmd.Flags().StringArray("labels", nil, "Version labels, in order")
	cmd.Flags().String("title", "Performance Comparison", "Chart title")
	cmd.Flags().Int("dpi", 300, "Image resolution in dots per inch")
	cmd.Flags().Float64("width", 12, "Image width in inches")
	cmd.Flags().Float64("height", 6, "Image height in inches")
	cmd.Flags().Bool("summary", false, "Also print the fixture/version matrix as a table")
	return cmd
}

func runVisualize(cmd *cobra.Command, args []string) error {
	v, err := cmdutils.LoadConfig(cmd)
	if err != nil {
		return err
	}
	labels, err := cmd.Flags().GetStringArray("labels")
	if err != nil {
		return err
	}

	fs := cmdutils.NewFS()
	files := resolveFiles(fs, args)
	if !anyExists(fs, files) {
		return ErrNoFiles
	}
	telemetry.LogDebug("Resolved result files", "count", len(files), "labels", labels)

	m, err := chart.Build(fs, files, labels)
	if err != nil {
		return err
	}

	opts := chart.Options{
		Title:  v.GetString("title"),
		Width:  vg.Length(v.GetFloat64("width")) * vg.Inch,
		Height: vg.Length(v.GetFloat64("height")) * vg.Inch,
		DPI:    v.GetInt("dpi"),
	}
	path, err := chart.Save(fs, v.GetString("output"), m, opts)
	if err != nil {
		return err
	}

	if v.GetBool("summary") {
		fmt.Fprintln(cmd.OutOrStdout(), chart.SummaryTable(m))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Chart saved: %s\n", path)
	return nil
}

// run executes the command and returns the process exit code. Usage is
// printed only for a call without any arguments at all.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, usage)
		return 1
	}

	cmd := newRootCmd()
	cmd.SetArgs(foldVariadicFlag(args, "labels"))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrNoFiles):
		fmt.Fprintln(stdout, "No files found")
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
