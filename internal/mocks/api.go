package mocks

import (
	"context"

	"github.com/rwx-research/testrail-sync/internal/errors"
	"github.com/rwx-research/testrail-sync/internal/testrail"
)

// API is a mocked implementation of 'testrail.Client'.
type API struct {
	MockAddResultForCase func(context.Context, string, string, testrail.Result) (testrail.AddedResult, error)
}

// AddResultForCase either calls the configured mock of itself or returns an error if that doesn't exist.
func (a *API) AddResultForCase(
	ctx context.Context,
	runID string,
	caseID string,
	result testrail.Result,
) (testrail.AddedResult, error) {
	if a.MockAddResultForCase != nil {
		return a.MockAddResultForCase(ctx, runID, caseID, result)
	}

	return testrail.AddedResult{}, errors.NewConfigurationError("MockAddResultForCase was not configured")
}
