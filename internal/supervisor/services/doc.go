// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

// Package services adapts long-running components to suture.Service.
//
// Each service blocks in Serve until its context is canceled, returns
// ctx.Err() on a clean stop, and implements fmt.Stringer so supervisor
// events name it.
package services
