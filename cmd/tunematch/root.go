// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/tunematch/internal/catalog"
	"github.com/tomtom215/tunematch/internal/config"
	"github.com/tomtom215/tunematch/internal/logging"
	"github.com/tomtom215/tunematch/internal/recommend"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	catalog    string
	duplicates string
	format     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "tunematch",
		Short: "Resolve song titles and recommend similar tracks",
		Long: `tunematch loads a song catalog (CSV, Parquet or DuckDB) and answers the
same requests as the server: fuzzy title resolution, audio-feature
recommendations and assistant tool calls.

Configuration follows the server: config.yaml and environment variables,
overridden by the flags below.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: CONFIG_PATH or config.yaml)")
	flags.StringVar(&opts.catalog, "catalog", "", "Catalog file, overrides CATALOG_PATH")
	flags.StringVar(&opts.duplicates, "duplicates", "", "Duplicate id policy: reject or first")
	flags.StringVar(&opts.format, "format", string(FormatJSON), "Output format (json, human)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level written to stderr")

	cmd.AddCommand(
		newResolveCmd(opts),
		newRecommendCmd(opts),
		newToolsCmd(opts),
		newCallCmd(opts),
	)
	return cmd
}

// loadConfig reads configuration and applies flag overrides.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if o.catalog != "" {
		cfg.Catalog.Path = o.catalog
	}
	if o.duplicates != "" {
		cfg.Catalog.Duplicates = o.duplicates
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	cfg.Logging.Format = logging.FormatConsole
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openEngine loads the catalog and builds an engine over it.
func (o *globalOptions) openEngine(cmd *cobra.Command) (*recommend.Engine, *config.Config, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	logCfg := cfg.LogConfig()
	logCfg.Output = cmd.ErrOrStderr()
	logging.Init(logCfg)

	cat, err := catalog.Load(cmd.Context(), cfg.Catalog.Path, cfg.CatalogSchema())
	if errors.Is(err, catalog.ErrDuplicateID) {
		return nil, nil, fmt.Errorf("load catalog: %w (use --duplicates first to keep the first row per id)", err)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	engine, err := recommend.NewEngine(cat, cfg.EngineConfig(), logging.WithComponent("recommend"))
	if err != nil {
		return nil, nil, err
	}
	return engine, cfg, nil
}
