// Package server provides the HTTP REST API for the career advisor.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/career-advisor/internal/benchmark"
	"github.com/jonathan/career-advisor/internal/gap"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Field + " - " + e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var ve *ErrValidation
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, gap.ErrCareerNotFound), errors.Is(err, benchmark.ErrCareerNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
