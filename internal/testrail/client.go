// Package testrail holds the API client for TestRail & supporting types. Only the endpoints needed to report test
// results are mapped.
package testrail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"strings"

	testrailsync "github.com/rwx-research/testrail-sync"
	"github.com/rwx-research/testrail-sync/internal/errors"
)

// Client is the main client for the TestRail API.
type Client struct {
	ClientConfig
	RoundTrip func(*http.Request) (*http.Response, error)
}

// NewClient is the preferred constructor for the API client. It makes sure that the configuration is valid & necessary
// defaults are applied.
func NewClient(cfg ClientConfig) (Client, error) {
	cfg = cfg.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return Client{}, err
	}

	client := &http.Client{}

	roundTrip := func(req *http.Request) (*http.Response, error) {
		req.URL.Scheme = "https"
		if cfg.Insecure {
			req.URL.Scheme = "http"
		}

		req.URL.Host = cfg.Host
		req.SetBasicAuth(cfg.User, cfg.APIKey)
		req.Header.Set("User-Agent", fmt.Sprintf("testrail-sync/%s", strings.TrimPrefix(testrailsync.Version, "v")))

		if cfg.Debug {
			hasBody := req.Body != nil
			dump, _ := httputil.DumpRequestOut(req, hasBody)
			sanitizedDump := authorizationHeaderRegexp.ReplaceAll(dump, []byte("Authorization: <redacted>"))
			cfg.Log.Debugf("Executing following HTTP request:\n\n%s\n", sanitizedDump)
		}

		resp, err := client.Do(req)
		if err != nil {
			return resp, errors.NewSystemError("unable to perform HTTP request to %q: %s", req.URL, err)
		}

		if cfg.Debug {
			dump, _ := httputil.DumpResponse(resp, true)
			cfg.Log.Debugf("Received following response:\n\n%s\n", dump)
		}

		return resp, nil
	}

	return Client{cfg, roundTrip}, nil
}

// AddResultForCase adds a new result for the test of case `caseID` in run `runID`. TestRail never overwrites results,
// so calling this twice appends two results to the test.
func (c Client) AddResultForCase(ctx context.Context, runID, caseID string, result Result) (AddedResult, error) {
	if runID == "" {
		return AddedResult{}, errors.NewInputError("missing test run ID")
	}

	if caseID == "" {
		return AddedResult{}, errors.NewInputError("missing test case ID")
	}

	endpoint := fmt.Sprintf("/index.php?/api/v2/add_result_for_case/%s/%s", runID, caseID)

	resp, err := c.postJSON(ctx, endpoint, result)
	if err != nil {
		return AddedResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return AddedResult{}, newAPIError(endpoint, resp)
	}

	var added AddedResult
	if err := json.NewDecoder(resp.Body).Decode(&added); err != nil {
		return AddedResult{}, errors.NewInternalError(
			"unable to parse the response body. Endpoint was %q, Content-Type %q. Original Error: %s",
			endpoint,
			resp.Header.Get(headerContentType),
			err,
		)
	}

	return added, nil
}

func (c Client) postJSON(ctx context.Context, endpoint string, body any) (*http.Response, error) {
	encodedBody, err := json.Marshal(body)
	if err != nil {
		return nil, errors.NewInternalError("unable to construct JSON object for request: %s", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(encodedBody))
	if err != nil {
		return nil, errors.NewInternalError("unable to construct HTTP request: %s", err)
	}

	req.Header.Set(headerContentType, contentTypeJSON)

	id, err := c.NewUUID()
	if err != nil {
		return nil, errors.NewInternalError("unable to generate new UUID: %s", err)
	}
	req.Header.Set(headerRequestID, id.String())

	resp, err := c.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// APIError is returned whenever TestRail responds with an error status code. Message holds the error TestRail
// reported, e.g. "Field :case_id is not a valid test case."
type APIError struct {
	Endpoint   string
	Message    string
	StatusCode int
}

func newAPIError(endpoint string, resp *http.Response) APIError {
	apiErr := APIError{Endpoint: endpoint, StatusCode: resp.StatusCode}

	body, err := io.ReadAll(resp.Body)
	if err == nil {
		respBody := struct {
			Error string `json:"error"`
		}{}

		if json.Unmarshal(body, &respBody) == nil {
			apiErr.Message = respBody.Error
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}

// Error returns the error message of this error
func (e APIError) Error() string {
	return fmt.Sprintf("%s (status code %d)", e.Message, e.StatusCode)
}
