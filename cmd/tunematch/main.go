// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

// Command tunematch resolves song titles and recommends similar tracks from a
// local catalog without running the server.
//
//	tunematch resolve "night drive" --limit 3
//	tunematch recommend 4uLU6hMCjMI75M1A2tKUQC 0r7CVbZTWZgbTCYdfa2P31 --top-n 5
//	tunematch tools
//	tunematch call search_tracks '{"query":"blinding lights"}'
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
