package framework

import (
	"fmt"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Results is the ordered record of a test run.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Skipped  []TestResult
}

// TestResult is the recorded outcome of one test. For tests that made an HTTP request, the
// exchange fields describe what was expected and what came back.
type TestResult struct {
	TestID         TestID
	ExpectedStatus int
	ActualStatus   ldvalue.OptionalInt
	Response       ldvalue.Value
	Error          string
	Errors         []error
	SkipReason     string
}

// Success is true if nothing went wrong in the test.
func (r TestResult) Success() bool {
	return len(r.Errors) == 0
}

// FailureSummary describes why the test failed, preferring a transport error over a status
// mismatch.
func (r TestResult) FailureSummary() string {
	if r.Error != "" {
		return r.Error
	}
	if r.ExpectedStatus != 0 && r.ActualStatus.IsDefined() && r.ActualStatus.IntValue() != r.ExpectedStatus {
		return fmt.Sprintf("Expected %d, got %d", r.ExpectedStatus, r.ActualStatus.IntValue())
	}
	if len(r.Errors) > 0 {
		return r.Errors[0].Error()
	}
	return ""
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Run returns the number of tests that were executed.
func (r Results) Run() int {
	return len(r.Tests)
}

// Passed returns the number of executed tests that succeeded.
func (r Results) Passed() int {
	n := 0
	for _, t := range r.Tests {
		if t.Success() {
			n++
		}
	}
	return n
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}
