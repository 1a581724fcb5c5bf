// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package main

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/tunematch/internal/logging"
	"github.com/tomtom215/tunematch/internal/recommend"
	"github.com/tomtom215/tunematch/internal/tools"
)

func newResolveCmd(opts *globalOptions) *cobra.Command {
	var (
		limit  int
		cutoff int
	)

	cmd := &cobra.Command{
		Use:   "resolve <query>...",
		Short: "Fuzzy-match free text against catalog titles",
		Long: `Resolve matches a free-text title (optionally with the artist) against
"name - artist" labels and prints the best matches with scores from 0 to 100.

Examples:
  tunematch resolve "blinding lights"
  tunematch resolve night drive --limit 10 --cutoff 50`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := opts.openEngine(cmd)
			if err != nil {
				return err
			}

			req := recommend.ResolveRequest{
				Query: strings.Join(args, " "),
				Limit: limit,
			}
			if cmd.Flags().Changed("cutoff") {
				req.ScoreCutoff = &cutoff
			}

			matches, err := engine.Resolve(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeOutput(cmd, opts.format, tools.SearchOutput{Matches: matches})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum matches, 1-20 (default from config)")
	cmd.Flags().IntVar(&cutoff, "cutoff", 0, "Minimum score, 0-100 (default from config)")
	return cmd
}

func newRecommendCmd(opts *globalOptions) *cobra.Command {
	var topN int

	cmd := &cobra.Command{
		Use:   "recommend <track_id>...",
		Short: "Recommend tracks similar to the given seed tracks",
		Long: `Recommend ranks every catalog track by cosine similarity between its
standardized audio features and the mean of the seeds'. Seeds are never
recommended and unknown ids are ignored.

Examples:
  tunematch recommend 4uLU6hMCjMI75M1A2tKUQC
  tunematch recommend id1 id2 --top-n 20`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := opts.openEngine(cmd)
			if err != nil {
				return err
			}

			results, err := engine.Recommend(cmd.Context(), recommend.RecommendRequest{
				TrackIDs: args,
				TopN:     topN,
			})
			if err != nil {
				return err
			}
			return writeOutput(cmd, opts.format, tools.RecommendOutput{Recommendations: results})
		},
	}

	cmd.Flags().IntVar(&topN, "top-n", 0, "Number of recommendations, 1-50 (default from config)")
	return cmd
}

func newToolsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the assistant tool definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), tools.Definitions(*cfg.EngineConfig()))
		},
	}
}

func newCallCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [arguments-json]",
		Short: "Execute one assistant tool call",
		Long: `Call runs search_tracks or recommend_songs with JSON arguments and prints
the tool result, as the server's /api/v1/tools/call would.

Examples:
  tunematch call search_tracks '{"query":"levitating","limit":3}'
  tunematch call recommend_songs '{"track_ids":["id1"],"top_n":5}'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := opts.openEngine(cmd)
			if err != nil {
				return err
			}

			call := tools.Call{Name: args[0]}
			if len(args) == 2 {
				call.Arguments = json.RawMessage(args[1])
			}

			dispatcher := tools.NewDispatcher(engine, logging.WithComponent("tools"))
			result, err := dispatcher.Dispatch(cmd.Context(), call)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
}
