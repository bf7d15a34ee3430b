package apiclient

import (
	"net/http"
	"sort"
	"strings"

	"github.com/alessio/shellescape"
)

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

const maskedCredential = "***"

// CurlCommand renders a request as an equivalent curl command line, for debug output. Headers
// are sorted so the output is stable, and the credential in an Authorization header is masked.
func CurlCommand(req *http.Request, body []byte) string {
	var b commandBuilder
	b.add("curl", "-X", req.Method)

	names := make([]string, 0, len(req.Header))
	for name := range req.Header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, value := range req.Header[name] {
			if name == "Authorization" {
				value = maskCredential(value)
			}
			b.add("-H", name+": "+value)
		}
	}

	if len(body) > 0 {
		b.add("-d", string(body))
	}
	b.add(req.URL.String())
	return b.String()
}

// maskCredential keeps the authorization scheme, such as "Bearer", and hides the rest.
func maskCredential(value string) string {
	if i := strings.IndexByte(value, ' '); i > 0 {
		return value[:i+1] + maskedCredential
	}
	return maskedCredential
}
