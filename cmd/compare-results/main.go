// Command compare-results prints a Markdown table comparing the mean
// timings of <fixture>_v1.json and <fixture>_v2.json result pairs.
//
// Usage:
//
//	compare-results <results_dir> <v1_name> <v2_name> [flags]
package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Application Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	Execute()
}
