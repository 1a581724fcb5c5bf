// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/tunematch/internal/tools"
)

// OutputFormat selects how results are printed.
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

func writeOutput(cmd *cobra.Command, format string, v any) error {
	w := cmd.OutOrStdout()
	switch OutputFormat(format) {
	case FormatJSON:
		return writeJSON(w, v)
	case FormatHuman:
		return writeHuman(w, v)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeHuman prints a table. Types without a table layout fall back to JSON.
func writeHuman(w io.Writer, v any) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	switch out := v.(type) {
	case tools.SearchOutput:
		if len(out.Matches) == 0 {
			_, err := fmt.Fprintln(w, "No matches.")
			return err
		}
		fmt.Fprintln(tw, "SCORE\tTRACK ID\tTITLE")
		for _, m := range out.Matches {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", m.Score, m.TrackID, m.Display)
		}
	case tools.RecommendOutput:
		if len(out.Recommendations) == 0 {
			_, err := fmt.Fprintln(w, "No recommendations.")
			return err
		}
		fmt.Fprintln(tw, "SIMILARITY\tTRACK ID\tTITLE")
		for _, r := range out.Recommendations {
			title := r.Name
			if r.Artist != "" {
				title = strings.Join([]string{r.Name, r.Artist}, " - ")
			}
			fmt.Fprintf(tw, "%.4f\t%s\t%s\n", r.Similarity, r.TrackID, title)
		}
	default:
		return writeJSON(w, v)
	}
	return tw.Flush()
}
