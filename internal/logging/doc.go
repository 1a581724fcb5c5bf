// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

// Package logging provides the process-wide zerolog logger.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("catalog", path).Int("items", n).Msg("catalog loaded")
//	logging.Err(err).Msg("catalog load failed")
//
// # Request Scope
//
// The API middleware stores a request id in the context. Ctx returns the
// stored (or global) logger with that id attached:
//
//	ctx = logging.ContextWithRequestID(ctx, logging.GenerateRequestID())
//	logging.Ctx(ctx).Debug().Msg("resolve")
//
// # Components
//
// Long-lived parts of the service take a child logger tagged with their name:
//
//	logger := logging.WithComponent("supervisor")
//
// # slog
//
// NewSlogLogger returns a *slog.Logger that writes through zerolog, for
// libraries such as sutureslog that only accept slog.
//
// # Configuration
//
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include file:line (default: false)
//
// Always terminate event chains with Msg or Send; an unterminated event is
// never written.
package logging
