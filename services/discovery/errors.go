package discovery

import "errors"

var (
	// ErrFetchTimeout indicates the fetch phase exceeded its hard deadline
	ErrFetchTimeout = errors.New("provider fetch timed out")

	// ErrFetchFailed indicates the backend query failed
	ErrFetchFailed = errors.New("provider fetch failed")

	// ErrLoadMoreUnavailable indicates pagination is not valid right now:
	// a cycle is in progress, a search filter is active, or nearby-ranked
	// results are being shown.
	ErrLoadMoreUnavailable = errors.New("load more unavailable")
)
