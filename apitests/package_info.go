// Package apitests contains the test suite for the Neff Paving backend API.
package apitests
