package fetcher

import "net/http"

// HTTPClient is an interface for making HTTP requests.
// *http.Client satisfies it; tests substitute a mock.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
