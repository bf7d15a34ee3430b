package framework

import (
	"errors"
	"fmt"
	"runtime/debug"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const filteredOutReason = "excluded by filter parameters"

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the state of a single test. It is similar to Go's *testing.T, but runs outside
// of the Go test runner.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	exchange    exchange
}

type exchange struct {
	expectedStatus int
	actualStatus   ldvalue.OptionalInt
	response       ldvalue.Value
	transportError string
}

// Run executes action in a root context and returns everything its subtests recorded. The
// root context itself does not produce a result.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil && !c.skipped {
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		if len(c.id.Path) == 0 {
			return
		}
		result := c.result()
		if c.skipped {
			c.env.results.Skipped = append(c.env.results.Skipped, result)
			return
		}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

func (c *Context) result() TestResult {
	return TestResult{
		TestID:         c.id,
		ExpectedStatus: c.exchange.expectedStatus,
		ActualStatus:   c.exchange.actualStatus,
		Response:       c.exchange.response,
		Error:          c.exchange.transportError,
		Errors:         c.errors,
		SkipReason:     c.skipReason,
	}
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest. Subtests that the filter rejects are reported as skipped without
// running.
func (c *Context) Run(name string, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.results.Skipped = append(c.env.results.Skipped, TestResult{TestID: id, SkipReason: filteredOutReason})
		c.env.testLogger.TestSkipped(id, filteredOutReason)
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(c1.result(), c1.debugLogger.Output())
	}
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// RecordResponse records the outcome of an HTTP exchange. The test fails if the status differs
// from the expected one; the failure is reported when the test finishes.
func (c *Context) RecordResponse(expectedStatus, actualStatus int, response ldvalue.Value) {
	c.exchange = exchange{
		expectedStatus: expectedStatus,
		actualStatus:   ldvalue.NewOptionalInt(actualStatus),
		response:       response,
	}
	if actualStatus != expectedStatus {
		c.failed = true
		c.errors = append(c.errors, fmt.Errorf("expected status %d, got %d", expectedStatus, actualStatus))
	}
}

// RecordTransportError records an HTTP exchange that produced no response at all.
func (c *Context) RecordTransportError(expectedStatus int, err error) {
	c.exchange = exchange{
		expectedStatus: expectedStatus,
		transportError: err.Error(),
	}
	c.failed = true
	c.errors = append(c.errors, err)
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Info reports a progress message for this test to the test logger immediately, regardless of
// whether debug output is enabled.
func (c *Context) Info(message string, args ...interface{}) {
	c.env.testLogger.TestInfo(c.id, fmt.Sprintf(message, args...))
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
