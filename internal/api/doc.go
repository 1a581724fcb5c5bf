// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

/*
Package api serves the resolver and recommender over HTTP.

# Routes

	GET  /api/v1/health/live     liveness
	GET  /api/v1/health/ready    readiness (catalog loaded)
	POST /api/v1/resolve         {query, limit?, score_cutoff?}
	POST /api/v1/recommend       {track_ids, top_n?}
	GET  /api/v1/tools           tool definitions
	POST /api/v1/tools/call      {id?, name, arguments}
	GET  /api/v1/tracks/{id}     catalog item
	GET  /api/v1/catalog         catalog statistics
	GET  /metrics                Prometheus

# Response Envelope

Every API response uses the same shape:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "request_id": "...", "query_time_ms": 1},
	  "error": {"code": "VALIDATION_ERROR", "message": "...", "details": {...}}
	}

error is omitted on success and data is null on error.

# Error Codes

  - VALIDATION_ERROR (400): an argument is out of range
  - INVALID_JSON (400): the body is not the expected JSON
  - INVALID_ARGUMENTS (400): tool arguments are not a JSON object
  - UNKNOWN_TOOL (400): tool name is not search_tracks or recommend_songs
  - NOT_FOUND (404): no track with the given id
  - TOO_MANY_REQUESTS (429): rate limit exceeded
  - INTERNAL_ERROR (500): anything else

Empty results are successes with an empty list.
*/
package api
