package constants

import "errors"

var (
	// ErrConfig missing or invalid configuration, eg: api key not set
	ErrConfig = errors.New("config error")
	// ErrUpstream non-2xx response, transport failure or timeout
	ErrUpstream = errors.New("upstream error")
	// ErrMissingField expected key absent in response
	ErrMissingField = errors.New("missing field")
	// ErrConversion value could not be converted
	ErrConversion = errors.New("conversion error")
)
