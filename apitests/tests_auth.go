package apitests

import (
	"net/http"

	"github.com/neffpaving/site-checks/apidef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	adminLoginSucceededMessage = "Admin login successful, proceeding with authenticated tests"
	adminLoginFailedMessage    = "Admin login failed, skipping authenticated tests"
)

// DoAdminLoginTest logs in with the given credentials. If the login succeeds and the response
// carries a non-empty token, the token is kept on the session for all later tests.
func DoAdminLoginTest(credentials Credentials) func(*T) {
	return func(t *T) {
		ok, body := t.CheckStatus(http.MethodPost, apidef.LoginPath, defaultExpectedStatus, apidef.LoginParams{
			Username: credentials.Username,
			Password: credentials.Password,
		}, nil)
		if !ok {
			t.Info(adminLoginFailedMessage)
			return
		}
		token := body.GetByKey(apidef.TokenField)
		if token.Type() != ldvalue.StringType || token.StringValue() == "" {
			t.Debug("Login response had no %q field", apidef.TokenField)
			t.Info(adminLoginFailedMessage)
			return
		}
		t.Session().SetToken(token.StringValue())
		t.Info(adminLoginSucceededMessage)
	}
}
