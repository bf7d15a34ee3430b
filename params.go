package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/neffpaving/site-checks/config"
	"github.com/neffpaving/site-checks/framework"
)

type commandParams struct {
	settings   config.Config
	configPath string
	reportPath string
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
}

// Read parses the command line. Settings given as flags take precedence over the config file,
// which takes precedence over the built-in defaults.
func (c *commandParams) Read(args []string, errOut io.Writer) bool {
	var flagSettings config.Config

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&flagSettings.BaseURL, "url", "",
		fmt.Sprintf("backend base URL (default $%s or %s)", config.BaseURLEnvVar, config.DefaultBaseURL))
	fs.StringVar(&flagSettings.Username, "username", "", "admin username (default \""+config.DefaultUsername+"\")")
	fs.StringVar(&flagSettings.Password, "password", "", "admin password")
	fs.StringVar(&flagSettings.Timeout, "timeout", "", "HTTP client timeout, e.g. 10s (default none)")
	fs.StringVar(&c.configPath, "config", "", "YAML file with base_url, username, password, timeout")
	fs.StringVar(&c.reportPath, "report", "", "write an Excel report of the results to this file")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return false
	}

	var fileSettings config.Config
	if c.configPath != "" {
		loaded, err := config.Load(c.configPath)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return false
		}
		fileSettings = loaded
	}

	c.settings = flagSettings.Merge(fileSettings).Merge(config.Default())
	if _, err := c.settings.TimeoutDuration(); err != nil {
		fmt.Fprintln(errOut, err)
		fs.Usage()
		return false
	}
	return true
}
