package constants

import "errors"

// Errors
var (
	ErrNoEndpoint = errors.New("endpoint not set")
	ErrNoGateway  = errors.New("gateway is not set")
)
