package httpx

import "net/http"

// Client is the outbound HTTP surface the service depends on; *http.Client
// satisfies it, tests substitute a mock.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}
