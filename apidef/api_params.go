// Package apidef describes the parts of the Neff Paving backend API that the test suite uses.
package apidef

const (
	HealthPath              = "/api/health"
	LoginPath               = "/api/auth/login"
	EstimatesPath           = "/api/estimates"
	CalculateAreaPath       = "/api/maps/calculate-area"
	DashboardStatsPath      = "/api/admin/dashboard/stats"
	DashboardActivitiesPath = "/api/admin/dashboard/activities"
)

// TokenField is the property of a successful login response that holds the bearer token.
const TokenField = "token"

type LoginParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type EstimateParams struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	ServiceType        string `json:"serviceType"`
	ProjectAddress     string `json:"projectAddress"`
	ProjectSize        string `json:"projectSize"`
	Timeline           string `json:"timeline"`
	ProjectDescription string `json:"projectDescription"`
}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type CalculateAreaParams struct {
	Coordinates []Coordinate `json:"coordinates"`
}
