package constants

import "time"

const (
	// DefaultEndpoint is the JSONPlaceholder-compatible API the gateway
	// talks to when nothing else is configured.
	DefaultEndpoint = "https://jsonplaceholder.typicode.com"

	// DefaultHTTPTimeout is set on the gateway's HTTP client to avoid
	// hanging requests.
	DefaultHTTPTimeout = 10 * time.Second

	// DefaultPageSize is the number of rows shown per page when the
	// caller has not picked one.
	DefaultPageSize = 10
)
