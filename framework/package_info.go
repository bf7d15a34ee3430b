// Package framework contains the test-run infrastructure that the API test suite is built on.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T, allowing pieces
// of test logic to be associated with a test identifier and to accumulate success/failure
// results. Tests run strictly one after another.
//
// 2. A test that performs an HTTP exchange records the expected status, the observed status
// and the decoded response body (or the transport error) on its context, so the final summary
// can explain each failure.
//
// 3. Debug output for each test is captured and handed to the TestLogger when the test
// finishes, so it can be shown only for failed tests if desired.
//
// The domain-specific code that knows what is being tested is responsible for making the
// requests and deciding the order of tests.
package framework
