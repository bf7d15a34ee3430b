package apitests

import (
	"net/http"

	"github.com/neffpaving/site-checks/apidef"
)

func DoDashboardStatsTest(t *T) {
	t.RequireAuthenticated()
	t.CheckStatus(http.MethodGet, apidef.DashboardStatsPath, defaultExpectedStatus, nil, nil)
}

func DoDashboardActivitiesTest(t *T) {
	t.RequireAuthenticated()
	t.CheckStatus(http.MethodGet, apidef.DashboardActivitiesPath, defaultExpectedStatus, nil, nil)
}
