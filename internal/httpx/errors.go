package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"bookstore/internal/validation"
)

// JSONFromError maps validation failures to 400 with per-field details and
// anything else to 500.
func JSONFromError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, validation.ErrValidation) {
		fields := validation.Details(err)
		details := make([]ErrorDetail, 0, len(fields))
		for _, f := range fields {
			details = append(details, ErrorDetail{Field: f.Field, Message: f.Message})
		}
		JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}
	JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}

// IntParam parses raw as a decimal integer, writing a 400 response naming
// field when it is malformed.
func IntParam(w http.ResponseWriter, r *http.Request, field, raw string) (int, bool) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		JSONError(w, r, http.StatusBadRequest, "INVALID_PARAMETER", field+" must be an integer",
			[]ErrorDetail{{Field: field, Message: field + " must be an integer"}})
		return 0, false
	}
	return v, true
}
