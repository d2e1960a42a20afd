package spdx

import "errors"

// Sentinel errors for registry operations.
// Callers should use errors.Is to check.
var (
	// ErrFetchFailed indicates the registry could not be reached or read.
	ErrFetchFailed = errors.New("spdx: fetch failed")
	// ErrUnexpectedStatus indicates a non-2xx HTTP response from the registry.
	ErrUnexpectedStatus = errors.New("spdx: unexpected HTTP status")
	// ErrDecode indicates the registry response was not valid JSON for the expected shape.
	ErrDecode = errors.New("spdx: malformed registry response")
	// ErrLicenseNotFound indicates no license in the list matches the given identifier.
	ErrLicenseNotFound = errors.New("spdx: no license found matching the ID provided")
)
