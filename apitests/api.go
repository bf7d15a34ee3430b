package apitests

import (
	"net/http"

	"github.com/neffpaving/site-checks/apiclient"
	"github.com/neffpaving/site-checks/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const defaultExpectedStatus = http.StatusOK

const notAuthenticatedReason = "admin login failed"

type environment struct {
	session *apiclient.Session
}

// T represents a test in the API test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is
// outside of the Go test runner. Every T shares the suite's apiclient.Session, so a token
// obtained by one test is sent by all later ones.
//
// To make test assertions, you can use the assert and require packages, passing the *T as if
// it were a *testing.T.
type T struct {
	context *framework.Context
	env     *environment
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Info prints a progress message for the test right away, through the suite's test logger.
func (t *T) Info(format string, args ...interface{}) {
	t.context.Info(format, args...)
}

func (t *T) Session() *apiclient.Session {
	return t.env.session
}

// RequireAuthenticated skips this test if no earlier test obtained a bearer token.
func (t *T) RequireAuthenticated() {
	if !t.env.session.HasToken() {
		t.context.SkipWithReason(notAuthenticatedReason)
	}
}

// CheckStatus sends one request to the backend and records the outcome on this test. The test fails
// if the status code is not expectedStatus or if no response could be obtained; neither stops
// the test.
//
// It returns whether the status matched, and the decoded response body. If the request failed,
// the body is an object of the form {"error": "..."}.
func (t *T) CheckStatus(
	method, endpoint string,
	expectedStatus int,
	payload interface{},
	headers http.Header,
) (bool, ldvalue.Value) {
	resp, err := t.env.session.Do(apiclient.Request{
		Method:   method,
		Endpoint: endpoint,
		Body:     payload,
		Headers:  headers,
	}, t.context.DebugLogger())
	if err != nil {
		t.context.RecordTransportError(expectedStatus, err)
		return false, ldvalue.ObjectBuild().Set("error", ldvalue.String(err.Error())).Build()
	}
	t.context.RecordResponse(expectedStatus, resp.StatusCode, resp.Body)
	return resp.StatusCode == expectedStatus, resp.Body
}
