// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

// Package validation provides struct validation using go-playground/validator v10.
//
// The package wraps a thread-safe singleton validator that reports fields by
// their JSON names and translates failures into the VALIDATION_ERROR API
// error shape.
//
// # Quick Start
//
//	type ResolveRequest struct {
//	    Query string `json:"query" validate:"max=1000"`
//	    Limit int    `json:"limit" validate:"omitempty,min=1,max=20"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // apiErr.Code == "VALIDATION_ERROR"
//	}
//
// # Custom Validators
//
//   - notblank: string must contain a non-whitespace character
//
// # Thread Safety
//
// GetValidator initializes the validator once; ValidateStruct may be called
// from any goroutine.
package validation
