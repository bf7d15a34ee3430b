package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/neffpaving/site-checks/apiclient"
	"github.com/neffpaving/site-checks/apitests"
	"github.com/neffpaving/site-checks/framework"
	"github.com/neffpaving/site-checks/report"
)

func main() {
	var params commandParams
	if !params.Read(os.Args, os.Stderr) {
		os.Exit(1)
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}
	if params.configPath != "" {
		mainDebugLogger.Printf("Loaded settings from %s", params.configPath)
	}

	// Read has already validated the timeout.
	timeout, _ := params.settings.TimeoutDuration()
	mainDebugLogger.Printf("HTTP client timeout: %s", timeout)
	session := apiclient.NewSession(params.settings.BaseURL, timeout)

	fmt.Printf("Testing Neff Paving API at %s\n", session.BaseURL())
	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	testLogger := &ConsoleTestLogger{
		Out:                  os.Stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	startTime := time.Now()
	results := apitests.RunTestSuite(
		session,
		apitests.Credentials{Username: params.settings.Username, Password: params.settings.Password},
		params.filters.AsFilter,
		testLogger,
	)
	duration := time.Since(startTime)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)

	if params.reportPath != "" {
		if err := report.WriteWorkbook(params.reportPath, results, startTime, duration); err != nil {
			fmt.Fprintf(os.Stderr, "Report error: %s\n", err)
		} else {
			fmt.Printf("Report saved to %s (sheet %q)\n", params.reportPath, report.SheetName(startTime))
		}
	}

	if !results.OK() {
		os.Exit(1)
	}
}
