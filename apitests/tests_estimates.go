package apitests

import (
	"net/http"

	"github.com/neffpaving/site-checks/apidef"
)

var sampleEstimate = apidef.EstimateParams{
	FirstName:          "Test",
	LastName:           "User",
	Email:              "test@example.com",
	Phone:              "555-123-4567",
	ServiceType:        "residential",
	ProjectAddress:     "123 Test St, Columbus, OH",
	ProjectSize:        "500 sq ft",
	Timeline:           "2weeks",
	ProjectDescription: "Test project for API testing",
}

func DoGetEstimatesTest(t *T) {
	t.RequireAuthenticated()
	t.CheckStatus(http.MethodGet, apidef.EstimatesPath, defaultExpectedStatus, nil, nil)
}

// DoSubmitEstimateTest does not need a token: the estimate form is public.
func DoSubmitEstimateTest(t *T) {
	t.CheckStatus(http.MethodPost, apidef.EstimatesPath, defaultExpectedStatus, sampleEstimate, nil)
}
