package apitests

import (
	"net/http"

	"github.com/neffpaving/site-checks/apidef"
)

func DoHealthCheckTest(t *T) {
	t.CheckStatus(http.MethodGet, apidef.HealthPath, defaultExpectedStatus, nil, nil)
}
