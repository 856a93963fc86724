package server

import (
	"errors"
	"net/http"

	"github.com/resumify/backend/internal/extract"
)

// HTTPStatus returns the appropriate HTTP status code for an upload
// processing error. Rejected uploads map to 400, documents that open but
// yield no usable text to 422, and everything else to 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, extract.ErrEmptyInput),
		errors.Is(err, extract.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, extract.ErrNoTextExtracted):
		return http.StatusUnprocessableEntity
	}

	var extractErr *extract.Error
	if errors.As(err, &extractErr) {
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}
