package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/neffpaving/site-checks/framework"

	"github.com/fatih/color"
)

type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Fprintf(c.Out, "\nTesting %s...\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.Out, "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestInfo(id framework.TestID, message string) {
	fmt.Fprintf(c.Out, "  %s\n", message)
}

func (c *ConsoleTestLogger) TestFinished(result framework.TestResult, debugOutput framework.CapturedOutput) {
	failed := !result.Success()
	switch {
	case !failed && result.ActualStatus.IsDefined():
		fmt.Fprintf(c.Out, "  %s - Status: %d\n", color.GreenString("PASSED"), result.ActualStatus.IntValue())
	case !failed:
		fmt.Fprintf(c.Out, "  %s\n", color.GreenString("PASSED"))
	case result.Error != "":
		fmt.Fprintf(c.Out, "  %s - Error: %s\n", color.RedString("FAILED"), result.Error)
	case result.ActualStatus.IsDefined():
		fmt.Fprintf(c.Out, "  %s - %s\n", color.RedString("FAILED"), result.FailureSummary())
		fmt.Fprintf(c.Out, "  Response: %s\n", result.Response.JSONString())
	default:
		fmt.Fprintf(c.Out, "  %s: %s\n", color.RedString("FAILED"), result.TestID)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.Out, "  %s: %s\n", color.YellowString("SKIPPED"), id)
	} else {
		fmt.Fprintf(c.Out, "  %s: %s (%s)\n", color.YellowString("SKIPPED"), id, reason)
	}
}
