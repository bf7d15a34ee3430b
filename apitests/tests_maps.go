package apitests

import (
	"net/http"

	"github.com/neffpaving/site-checks/apidef"
)

// A square of roughly 0.1 degrees on each side, near Columbus, OH.
var sampleArea = apidef.CalculateAreaParams{
	Coordinates: []apidef.Coordinate{
		{Lat: 40.0, Lng: -83.0},
		{Lat: 40.0, Lng: -82.9},
		{Lat: 39.9, Lng: -82.9},
		{Lat: 39.9, Lng: -83.0},
	},
}

// DoCalculateAreaTest only checks the status; the area value itself is not verified.
func DoCalculateAreaTest(t *T) {
	t.CheckStatus(http.MethodPost, apidef.CalculateAreaPath, defaultExpectedStatus, sampleArea, nil)
}
