// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

/*
Package supervisor runs the service's long-lived components under a suture v4
supervisor tree.

# Tree Layout

	tunematch (root)
	├── engine-layer   cache maintenance
	└── api-layer      HTTP server

A crash in one layer restarts only that layer's services. Supervisor events
are logged through sutureslog, bridged to zerolog with
logging.NewSlogLogger("supervisor").

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	tree.AddEngineService(services.NewCacheMaintenanceService(engine, time.Minute, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx) // returns when ctx is canceled
*/
package supervisor
