package apitests

import (
	"github.com/neffpaving/site-checks/apiclient"
	"github.com/neffpaving/site-checks/framework"
)

// Credentials are the admin account used by the login test.
type Credentials struct {
	Username string
	Password string
}

// RunTestSuite runs every API test, in order, against the backend that session points to.
// Tests that need an admin token are skipped if the login test did not obtain one.
func RunTestSuite(
	session *apiclient.Session,
	credentials Credentials,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{
			context: c,
			env:     &environment{session: session},
		}

		t.Run("Health Check", DoHealthCheckTest)
		t.Run("Admin Login", DoAdminLoginTest(credentials))

		t.Run("Dashboard Stats", DoDashboardStatsTest)
		t.Run("Dashboard Activities", DoDashboardActivitiesTest)
		t.Run("Get Estimates", DoGetEstimatesTest)

		t.Run("Submit Estimate", DoSubmitEstimateTest)
		t.Run("Calculate Area", DoCalculateAreaTest)
	})
}
