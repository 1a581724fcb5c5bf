// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tunematch/internal/metrics"
)

// CachePurger drops expired resolver cache entries.
type CachePurger interface {
	PurgeExpired() int
}

// CacheMaintenanceService periodically purges expired resolver cache entries
// and refreshes the uptime gauge.
type CacheMaintenanceService struct {
	purger   CachePurger
	interval time.Duration
	logger   zerolog.Logger
	started  time.Time
}

// NewCacheMaintenanceService creates the service. A non-positive interval
// becomes one minute.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheMaintenanceService(purger CachePurger, interval time.Duration, logger zerolog.Logger) *CacheMaintenanceService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheMaintenanceService{
		purger:   purger,
		interval: interval,
		logger:   logger.With().Str("service", "cache-maintenance").Logger(),
		started:  time.Now(),
	}
}

// Serve implements suture.Service.
func (s *CacheMaintenanceService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.interval).Msg("cache maintenance starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.runOnce()
		}
	}
}

func (s *CacheMaintenanceService) runOnce() {
	if removed := s.purger.PurgeExpired(); removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("purged expired resolver cache entries")
	}
	metrics.AppUptime.Set(time.Since(s.started).Seconds())
}

// String implements fmt.Stringer.
func (s *CacheMaintenanceService) String() string {
	return "cache-maintenance"
}
