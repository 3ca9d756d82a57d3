package domain

import "errors"

var (
	ErrNoInput           = errors.New("no data provided")
	ErrInvalidJSON       = errors.New("invalid JSON data provided")
	ErrPayloadTooLarge   = errors.New("payload exceeds maximum allowed size")
	ErrTokenRequired     = errors.New("access token required")
	ErrTokenInvalid      = errors.New("token could not be parsed")
	ErrRequestIDRequired = errors.New("request id is required")
	ErrEndpointUnknown   = errors.New("no endpoint matches the token's region and environment")
	ErrUpstreamFailed    = errors.New("upstream request failed")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
