package testrail

import "regexp"

const (
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
	headerRequestID   = "X-Request-Id"
)

var authorizationHeaderRegexp = regexp.MustCompile(`Authorization:.*`)
