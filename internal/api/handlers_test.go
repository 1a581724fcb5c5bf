// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tunematch/internal/catalog"
	"github.com/tomtom215/tunematch/internal/recommend"
	"github.com/tomtom215/tunematch/internal/tools"
)

func testItems() []catalog.Item {
	return []catalog.Item{
		{ID: "a", Name: "Song A", Artist: "X", Features: catalog.Vector{0.5, 0.5, 120, 0.5, 0.5, -5}},
		{ID: "b", Name: "Song B", Artist: "Y", Features: catalog.Vector{0.9, 0.9, 140, 0.9, 0.1, -3}},
	}
}

func newTestServer(t *testing.T, config *MiddlewareConfig) http.Handler {
	t.Helper()
	cat, err := catalog.New(testItems(), catalog.DuplicatesReject)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	engine, err := recommend.NewEngine(cat, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if config == nil {
		config = DefaultMiddlewareConfig()
		config.RateLimitDisabled = true
	}
	handler := NewHandler(engine, tools.NewDispatcher(engine, zerolog.Nop()))
	return NewRouter(handler, config).Setup()
}

type testResponse struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata Metadata        `json:"metadata"`
	Error    *APIError       `json:"error"`
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, testResponse) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp testResponse
	if strings.HasPrefix(path, "/api/") {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode %s %s: %v (body %q)", method, path, err, rec.Body.String())
		}
	}
	return rec, resp
}

func TestResolve(t *testing.T) {
	h := newTestServer(t, nil)

	rec, resp := do(t, h, http.MethodPost, "/api/v1/resolve", `{"query":"song a by x","limit":2,"score_cutoff":0}`)
	if rec.Code != http.StatusOK || resp.Status != StatusSuccess {
		t.Fatalf("status = %d %s, body %s", rec.Code, resp.Status, rec.Body.String())
	}

	var data tools.SearchOutput
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Matches) == 0 || data.Matches[0].TrackID != "a" {
		t.Errorf("matches = %+v, want a first", data.Matches)
	}
	if resp.Metadata.RequestID == "" || resp.Metadata.Timestamp.IsZero() {
		t.Errorf("metadata = %+v", resp.Metadata)
	}
	if resp.Error != nil {
		t.Errorf("error = %+v on success", resp.Error)
	}
}

func TestResolve_Errors(t *testing.T) {
	h := newTestServer(t, nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"empty body", "", http.StatusBadRequest, ErrCodeInvalidJSON},
		{"malformed", `{"query":`, http.StatusBadRequest, ErrCodeInvalidJSON},
		{"wrong type", `{"query":"x","limit":"five"}`, http.StatusBadRequest, ErrCodeInvalidJSON},
		{"limit too high", `{"query":"x","limit":21}`, http.StatusBadRequest, ErrCodeValidation},
		{"cutoff too high", `{"query":"x","score_cutoff":101}`, http.StatusBadRequest, ErrCodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/resolve", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			var resp testResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if resp.Status != StatusError || resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("response = %+v, want code %s", resp, tt.wantCode)
			}
			if string(resp.Data) != "null" {
				t.Errorf("data = %s, want null", resp.Data)
			}
		})
	}
}

func TestResolve_ValidationDetails(t *testing.T) {
	h := newTestServer(t, nil)

	_, resp := do(t, h, http.MethodPost, "/api/v1/resolve", `{"query":"x","limit":21}`)
	if resp.Error == nil || resp.Error.Details["field"] != "limit" {
		t.Errorf("error = %+v, want details.field=limit", resp.Error)
	}
}

func TestRecommend(t *testing.T) {
	h := newTestServer(t, nil)

	rec, resp := do(t, h, http.MethodPost, "/api/v1/recommend", `{"track_ids":["a"],"top_n":1}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var data tools.RecommendOutput
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Recommendations) != 1 || data.Recommendations[0].TrackID != "b" {
		t.Errorf("recommendations = %+v, want [b]", data.Recommendations)
	}
}

func TestRecommend_UnknownSeedsGiveEmptyList(t *testing.T) {
	h := newTestServer(t, nil)

	rec, resp := do(t, h, http.MethodPost, "/api/v1/recommend", `{"track_ids":["nope"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := string(resp.Data); got != `{"recommendations":[]}` {
		t.Errorf("data = %s", got)
	}
}

func TestRecommend_TopNOutOfRange(t *testing.T) {
	h := newTestServer(t, nil)

	rec, resp := do(t, h, http.MethodPost, "/api/v1/recommend", `{"track_ids":["a"],"top_n":51}`)
	if rec.Code != http.StatusBadRequest || resp.Error.Code != ErrCodeValidation {
		t.Errorf("status = %d, error = %+v", rec.Code, resp.Error)
	}
}

func TestTrack(t *testing.T) {
	h := newTestServer(t, nil)

	t.Run("found", func(t *testing.T) {
		rec, resp := do(t, h, http.MethodGet, "/api/v1/tracks/b", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var item catalog.Item
		if err := json.Unmarshal(resp.Data, &item); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if item.ID != "b" || item.Name != "Song B" || item.Features[catalog.Tempo] != 140 {
			t.Errorf("item = %+v", item)
		}
	})

	t.Run("missing", func(t *testing.T) {
		rec, resp := do(t, h, http.MethodGet, "/api/v1/tracks/zzz", "")
		if rec.Code != http.StatusNotFound || resp.Error.Code != ErrCodeNotFound {
			t.Errorf("status = %d, error = %+v", rec.Code, resp.Error)
		}
		if resp.Error.Details["track_id"] != "zzz" {
			t.Errorf("details = %v", resp.Error.Details)
		}
	})
}

func TestCatalog(t *testing.T) {
	h := newTestServer(t, nil)

	_, resp := do(t, h, http.MethodGet, "/api/v1/catalog", "")
	var stats recommend.Stats
	if err := json.Unmarshal(resp.Data, &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.Items != 2 || len(stats.Features) != catalog.Dims {
		t.Errorf("stats = %+v", stats)
	}
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, nil)

	for _, path := range []string{"/api/v1/health/live", "/api/v1/health/ready"} {
		t.Run(path, func(t *testing.T) {
			rec, resp := do(t, h, http.MethodGet, path, "")
			if rec.Code != http.StatusOK || resp.Status != StatusSuccess {
				t.Errorf("status = %d %s", rec.Code, resp.Status)
			}
			if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Error("missing security headers")
			}
		})
	}
}

func TestToolDefinitions(t *testing.T) {
	h := newTestServer(t, nil)

	_, resp := do(t, h, http.MethodGet, "/api/v1/tools", "")
	var data struct {
		Tools []tools.Definition `json:"tools"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(data.Tools) != 2 {
		t.Fatalf("tools = %d, want 2", len(data.Tools))
	}
	names := data.Tools[0].Function.Name + "," + data.Tools[1].Function.Name
	if names != "search_tracks,recommend_songs" {
		t.Errorf("names = %s", names)
	}
}

func TestToolCall(t *testing.T) {
	h := newTestServer(t, nil)

	t.Run("search_tracks", func(t *testing.T) {
		rec, resp := do(t, h, http.MethodPost, "/api/v1/tools/call",
			`{"id":"call_1","name":"search_tracks","arguments":"{\"query\":\"song b by y\",\"score_cutoff\":0}"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		var data struct {
			CallID  string `json:"call_id"`
			Name    string `json:"name"`
			Content string `json:"content"`
		}
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if data.CallID != "call_1" || data.Name != tools.NameSearchTracks {
			t.Errorf("data = %+v", data)
		}
		if !strings.HasPrefix(data.Content, `{"matches":[`) || !strings.Contains(data.Content, `"track_id":"b"`) {
			t.Errorf("content = %s", data.Content)
		}
	})

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"unknown tool", `{"name":"play_song","arguments":{}}`, ErrCodeUnknownTool},
		{"array arguments", `{"name":"search_tracks","arguments":[1]}`, ErrCodeInvalidArguments},
		{"fractional top_n", `{"name":"recommend_songs","arguments":{"track_ids":["a"],"top_n":0.5}}`, ErrCodeInvalidArguments},
		{"validation", `{"name":"recommend_songs","arguments":{"track_ids":["a"],"top_n":99}}`, ErrCodeValidation},
		{"bad body", `not json`, ErrCodeInvalidJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := do(t, h, http.MethodPost, "/api/v1/tools/call", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want %s", resp.Error, tt.wantCode)
			}
		})
	}
}
