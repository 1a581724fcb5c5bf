// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/tunematch/internal/recommend"
	"github.com/tomtom215/tunematch/internal/tools"
	"github.com/tomtom215/tunematch/internal/validation"
)

// errInvalidJSON marks request bodies that failed to decode.
var errInvalidJSON = errors.New("invalid JSON body")

// classifyError maps an error to its HTTP status and API error.
func classifyError(err error) (int, *APIError) {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		apiErr := verr.ToAPIError()
		return http.StatusBadRequest, &APIError{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		}
	case recommend.IsValidation(err):
		return http.StatusBadRequest, &APIError{Code: ErrCodeValidation, Message: err.Error()}
	case errors.Is(err, errInvalidJSON):
		return http.StatusBadRequest, &APIError{Code: ErrCodeInvalidJSON, Message: err.Error()}
	case errors.Is(err, tools.ErrUnknownTool):
		return http.StatusBadRequest, &APIError{Code: ErrCodeUnknownTool, Message: err.Error()}
	case errors.Is(err, tools.ErrInvalidArguments):
		return http.StatusBadRequest, &APIError{Code: ErrCodeInvalidArguments, Message: err.Error()}
	default:
		return http.StatusInternalServerError, &APIError{Code: ErrCodeInternalError, Message: "internal error"}
	}
}
