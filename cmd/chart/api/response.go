package api

import (
	"errors"
	"net/http"

	"github.com/nzai/pubapi/constants"
)

// Response api response body
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// statusOf map pipeline errors to http status
func statusOf(err error) int {
	switch {
	case errors.Is(err, constants.ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, constants.ErrMissingField), errors.Is(err, constants.ErrConversion):
		return http.StatusUnprocessableEntity
	case errors.Is(err, constants.ErrConfig):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
