package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/neffpaving/site-checks/config"
	"github.com/neffpaving/site-checks/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readParams(t *testing.T, args ...string) (commandParams, bool, string) {
	var params commandParams
	var errOut bytes.Buffer
	ok := params.Read(append([]string{"site-checks"}, args...), &errOut)
	return params, ok, errOut.String()
}

func TestReadWithNoArgumentsUsesDefaults(t *testing.T) {
	t.Setenv(config.BaseURLEnvVar, "")
	params, ok, _ := readParams(t)
	require.True(t, ok)

	assert.Equal(t, config.Config{
		BaseURL:  config.DefaultBaseURL,
		Username: config.DefaultUsername,
		Password: config.DefaultPassword,
	}, params.settings)
	assert.False(t, params.debug)
	assert.False(t, params.filters.MustMatch.IsDefined())
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: http://from-file\nusername: file-user\ntimeout: 3s\n"), 0o600))

	params, ok, _ := readParams(t, "-config", path, "-username", "flag-user", "-debug", "-skip", "Area")
	require.True(t, ok)

	assert.Equal(t, "http://from-file", params.settings.BaseURL)
	assert.Equal(t, "flag-user", params.settings.Username)
	assert.Equal(t, config.DefaultPassword, params.settings.Password)
	assert.Equal(t, "3s", params.settings.Timeout)
	assert.True(t, params.debug)
	assert.False(t, params.filters.AsFilter(framework.TestID{Path: []string{"Calculate Area"}}))
}

func TestReadRejectsBadInput(t *testing.T) {
	for name, args := range map[string][]string{
		"unknown flag":    {"-bogus"},
		"bad regex":       {"-run", "("},
		"bad timeout":     {"-timeout", "later"},
		"missing config":  {"-config", filepath.Join(t.TempDir(), "absent.yaml")},
		"extra arguments": {"extra"},
	} {
		t.Run(name, func(t *testing.T) {
			_, ok, errOut := readParams(t, args...)
			assert.False(t, ok)
			assert.NotEmpty(t, errOut)
		})
	}
}
