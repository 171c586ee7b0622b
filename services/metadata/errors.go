package metadata

import "fmt"

// UpstreamError reports a non-success HTTP response from the TMDB API.
// Failed calls are never cached; the next request for the same key retries
// in full.
type UpstreamError struct {
	Status int
	Reason string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("tmdb api error %d: %s", e.Status, e.Reason)
}
