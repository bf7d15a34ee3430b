package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const summaryRuleWidth = 50

// PrintResults writes the end-of-run summary: the pass count, then one line per failed test.
func PrintResults(out io.Writer, results Results) {
	rule := strings.Repeat("=", summaryRuleWidth)
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "API TEST SUMMARY: %d/%d tests passed\n", results.Passed(), results.Run())
	if len(results.Skipped) > 0 {
		fmt.Fprintf(out, "Skipped: %d\n", len(results.Skipped))
	}
	fmt.Fprintln(out, rule)

	if results.OK() {
		color.New(color.FgGreen).Fprintln(out, "All tests passed!")
		return
	}
	color.New(color.FgRed).Fprintln(out, "Some tests failed:")
	for _, f := range results.Failures {
		fmt.Fprintf(out, "  - %s: %s\n", f.TestID, f.FailureSummary())
	}
}
