package apitests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neffpaving/site-checks/apiclient"
	"github.com/neffpaving/site-checks/apidef"
	"github.com/neffpaving/site-checks/framework"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCredentials = Credentials{Username: "admin", Password: "admin123"}

func okJSON() http.Handler {
	return httphelpers.HandlerWithJSONResponse(map[string]interface{}{"success": true}, nil)
}

func loginReturningToken(token string) http.Handler {
	return httphelpers.HandlerWithJSONResponse(map[string]interface{}{"token": token}, nil)
}

// fakeBackend answers every endpoint the suite uses. The login endpoint's behavior is up to
// the test.
func fakeBackend(loginHandler http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(apidef.HealthPath, okJSON())
	mux.Handle(apidef.LoginPath, loginHandler)
	mux.Handle(apidef.EstimatesPath, okJSON())
	mux.Handle(apidef.CalculateAreaPath, httphelpers.HandlerWithJSONResponse(map[string]interface{}{"area": 93.5}, nil))
	mux.Handle(apidef.DashboardStatsPath, okJSON())
	mux.Handle(apidef.DashboardActivitiesPath, okJSON())
	return mux
}

type recordedRequest struct {
	method        string
	path          string
	authorization string
	body          []byte
}

func drainRequests(requestsCh <-chan httphelpers.HTTPRequestInfo) []recordedRequest {
	var ret []recordedRequest
	for {
		select {
		case r := <-requestsCh:
			ret = append(ret, recordedRequest{
				method:        r.Request.Method,
				path:          r.Request.URL.Path,
				authorization: r.Request.Header.Get("Authorization"),
				body:          r.Body,
			})
		default:
			return ret
		}
	}
}

func runSuiteAgainst(handler http.Handler, filter framework.Filter) (framework.Results, []recordedRequest) {
	return runSuiteWithLogger(handler, filter, nil)
}

func runSuiteWithLogger(
	handler http.Handler,
	filter framework.Filter,
	testLogger framework.TestLogger,
) (framework.Results, []recordedRequest) {
	recorder, requestsCh := httphelpers.RecordingHandler(handler)
	var results framework.Results
	httphelpers.WithServer(recorder, func(server *httptest.Server) {
		session := apiclient.NewSession(server.URL, 0)
		results = RunTestSuite(session, testCredentials, filter, testLogger)
	})
	return results, drainRequests(requestsCh)
}

// infoRecorder keeps the progress messages each test reported, keyed by test name.
type infoRecorder struct {
	messages map[string][]string
}

func (r *infoRecorder) TestStarted(framework.TestID)                                {}
func (r *infoRecorder) TestError(framework.TestID, error)                           {}
func (r *infoRecorder) TestFinished(framework.TestResult, framework.CapturedOutput) {}
func (r *infoRecorder) TestSkipped(framework.TestID, string)                        {}

func (r *infoRecorder) TestInfo(id framework.TestID, message string) {
	if r.messages == nil {
		r.messages = make(map[string][]string)
	}
	r.messages[id.String()] = append(r.messages[id.String()], message)
}

func names(results []framework.TestResult) []string {
	var ret []string
	for _, r := range results {
		ret = append(ret, r.TestID.String())
	}
	return ret
}

func TestAllTestsPassAgainstHealthyBackend(t *testing.T) {
	results, requests := runSuiteAgainst(fakeBackend(loginReturningToken("secret-token")), nil)

	assert.True(t, results.OK())
	assert.Equal(t, []string{
		"Health Check",
		"Admin Login",
		"Dashboard Stats",
		"Dashboard Activities",
		"Get Estimates",
		"Submit Estimate",
		"Calculate Area",
	}, names(results.Tests))
	assert.Equal(t, 7, results.Passed())
	assert.Empty(t, results.Skipped)

	require.Len(t, requests, 7)
	assert.Equal(t, "", requests[0].authorization)
	assert.Equal(t, "", requests[1].authorization)
	for _, r := range requests[2:] {
		assert.Equal(t, "Bearer secret-token", r.authorization, "request to %s", r.path)
	}
}

func TestRequestsUseExpectedMethodsAndPaths(t *testing.T) {
	_, requests := runSuiteAgainst(fakeBackend(loginReturningToken("t")), nil)

	var actual []string
	for _, r := range requests {
		actual = append(actual, r.method+" "+r.path)
	}
	assert.Equal(t, []string{
		"GET /api/health",
		"POST /api/auth/login",
		"GET /api/admin/dashboard/stats",
		"GET /api/admin/dashboard/activities",
		"GET /api/estimates",
		"POST /api/estimates",
		"POST /api/maps/calculate-area",
	}, actual)

	assert.JSONEq(t, `{"username": "admin", "password": "admin123"}`, string(requests[1].body))

	var estimate apidef.EstimateParams
	require.NoError(t, json.Unmarshal(requests[5].body, &estimate))
	assert.Equal(t, sampleEstimate, estimate)
}

func TestCalculateAreaSendsFourCoordinates(t *testing.T) {
	_, requests := runSuiteAgainst(fakeBackend(loginReturningToken("t")), nil)
	require.NotEmpty(t, requests)

	last := requests[len(requests)-1]
	assert.JSONEq(t, `{"coordinates": [
		{"lat": 40.0, "lng": -83.0},
		{"lat": 40.0, "lng": -82.9},
		{"lat": 39.9, "lng": -82.9},
		{"lat": 39.9, "lng": -83.0}
	]}`, string(last.body))
}

func TestHealthCheckPassesWithAnyBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle(apidef.HealthPath, httphelpers.HandlerWithResponse(200, nil, []byte("OK")))
	results, _ := runSuiteAgainst(mux, nil)

	require.NotEmpty(t, results.Tests)
	health := results.Tests[0]
	assert.Equal(t, "Health Check", health.TestID.String())
	assert.True(t, health.Success())
	assert.Equal(t, "OK", health.Response.GetByKey("text").StringValue())
}

func TestFailedLoginSkipsAuthenticatedTests(t *testing.T) {
	login := httphelpers.HandlerWithResponse(401, nil, []byte(`{"error": "Invalid credentials"}`))
	results, requests := runSuiteAgainst(fakeBackend(login), nil)

	assert.False(t, results.OK())
	assert.Equal(t, []string{"Health Check", "Admin Login", "Submit Estimate", "Calculate Area"}, names(results.Tests))
	assert.Equal(t, 3, results.Passed())
	assert.Equal(t, []string{"Admin Login"}, names(results.Failures))
	assert.Equal(t, "Expected 200, got 401", results.Failures[0].FailureSummary())
	assert.Equal(t, "Invalid credentials", results.Failures[0].Response.GetByKey("error").StringValue())

	assert.Equal(t, []string{"Dashboard Stats", "Dashboard Activities", "Get Estimates"}, names(results.Skipped))
	for _, s := range results.Skipped {
		assert.Equal(t, notAuthenticatedReason, s.SkipReason)
	}

	for _, r := range requests {
		assert.Equal(t, "", r.authorization, "request to %s", r.path)
	}
}

func TestLoginWithoutTokenLeavesSessionUnauthenticated(t *testing.T) {
	for name, login := range map[string]http.Handler{
		"no token field": okJSON(),
		"empty token":    loginReturningToken(""),
		"non-string":     httphelpers.HandlerWithJSONResponse(map[string]interface{}{"token": 42}, nil),
	} {
		t.Run(name, func(t *testing.T) {
			results, requests := runSuiteAgainst(fakeBackend(login), nil)

			assert.True(t, results.OK())
			assert.Equal(t, 4, results.Run())
			assert.Len(t, results.Skipped, 3)
			for _, r := range requests {
				assert.Equal(t, "", r.authorization)
			}
		})
	}
}

func TestLoginOutcomeIsReportedToTestLogger(t *testing.T) {
	for name, p := range map[string]struct {
		login    http.Handler
		expected string
	}{
		"token":    {loginReturningToken("secret-token"), adminLoginSucceededMessage},
		"no token": {okJSON(), adminLoginFailedMessage},
		"rejected": {httphelpers.HandlerWithStatus(401), adminLoginFailedMessage},
	} {
		t.Run(name, func(t *testing.T) {
			logger := &infoRecorder{}
			runSuiteWithLogger(fakeBackend(p.login), nil, logger)

			assert.Equal(t, map[string][]string{"Admin Login": {p.expected}}, logger.messages)
		})
	}
}

func TestUnreachableBackendFailsEveryTest(t *testing.T) {
	server := httptest.NewServer(okJSON())
	session := apiclient.NewSession(server.URL, 0)
	server.Close()

	results := RunTestSuite(session, testCredentials, nil, nil)

	assert.False(t, results.OK())
	assert.Equal(t, 4, results.Run())
	assert.Equal(t, 0, results.Passed())
	assert.Len(t, results.Failures, 4)
	for _, f := range results.Failures {
		assert.NotEmpty(t, f.Error, "test %s", f.TestID)
		assert.False(t, f.ActualStatus.IsDefined())
	}
}

func TestFilteredOutLoginSkipsAuthenticatedTests(t *testing.T) {
	var filters framework.RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("Login"))

	results, requests := runSuiteAgainst(fakeBackend(loginReturningToken("t")), filters.AsFilter)

	assert.True(t, results.OK())
	assert.Equal(t, []string{"Health Check", "Submit Estimate", "Calculate Area"}, names(results.Tests))
	assert.Equal(t, []string{"Admin Login", "Dashboard Stats", "Dashboard Activities", "Get Estimates"},
		names(results.Skipped))
	assert.Len(t, requests, 3)
}
