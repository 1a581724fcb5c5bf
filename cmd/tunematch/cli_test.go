// Tunematch - Song Resolution and Audio-Feature Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tunematch/internal/recommend"
	"github.com/tomtom215/tunematch/internal/tools"
)

const testCatalog = `track_id,track_name,track_artist,danceability,energy,tempo,valence,acousticness,loudness
a,Song A,X,0.5,0.5,120,0.5,0.5,-5
b,Song B,Y,0.9,0.9,140,0.9,0.1,-3
c,Song C,Z,0.55,0.5,122,0.5,0.45,-5
`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songs.csv")
	if err := os.WriteFile(path, []byte(testCatalog), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--catalog", writeCatalog(t)}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func TestResolveCommand(t *testing.T) {
	out, err := run(t, "resolve", "song", "a", "--limit", "1", "--cutoff", "0")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	var got tools.SearchOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(got.Matches) != 1 || got.Matches[0].TrackID != "a" {
		t.Errorf("matches = %+v, want [a]", got.Matches)
	}
}

func TestResolveCommand_InvalidLimit(t *testing.T) {
	if _, err := run(t, "resolve", "song", "--limit", "21"); err == nil {
		t.Error("expected validation error")
	}
}

func TestRecommendCommand(t *testing.T) {
	out, err := run(t, "recommend", "a", "--top-n", "1")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}

	var got tools.RecommendOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(got.Recommendations) != 1 || got.Recommendations[0].TrackID != "c" {
		t.Errorf("recommendations = %+v, want [c]", got.Recommendations)
	}
}

func TestRecommendCommand_HumanFormat(t *testing.T) {
	out, err := run(t, "--format", "human", "recommend", "a")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if !strings.HasPrefix(out, "SIMILARITY") || !strings.Contains(out, "Song C - Z") {
		t.Errorf("output = %q", out)
	}
	if strings.Contains(out, "Song A - X") {
		t.Errorf("seed listed in output: %q", out)
	}
}

func TestRecommendCommand_UnknownFormat(t *testing.T) {
	if _, err := run(t, "--format", "xml", "recommend", "a"); err == nil {
		t.Error("expected unsupported format error")
	}
}

func TestToolsCommand(t *testing.T) {
	out, err := run(t, "tools")
	if err != nil {
		t.Fatalf("tools: %v", err)
	}

	var defs []tools.Definition
	if err := json.Unmarshal([]byte(out), &defs); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(defs) != 2 || defs[0].Function.Name != tools.NameSearchTracks {
		t.Errorf("definitions = %+v", defs)
	}
}

func TestCallCommand(t *testing.T) {
	out, err := run(t, "call", tools.NameRecommendSongs, `{"track_ids":["a"],"top_n":1}`)
	if err != nil {
		t.Fatalf("call: %v", err)
	}

	var got struct {
		CallID string                `json:"call_id"`
		Name   string                `json:"name"`
		Output tools.RecommendOutput `json:"output"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.CallID == "" || got.Name != tools.NameRecommendSongs {
		t.Errorf("result = %+v", got)
	}
	want := []recommend.Result{{TrackID: "c", Name: "Song C", Artist: "Z"}}
	if len(got.Output.Recommendations) != 1 || got.Output.Recommendations[0].TrackID != want[0].TrackID {
		t.Errorf("recommendations = %+v, want %+v", got.Output.Recommendations, want)
	}
}

func TestCallCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown tool", []string{"call", "play_song"}},
		{"malformed arguments", []string{"call", tools.NameSearchTracks, `[1]`}},
		{"invalid arguments", []string{"call", tools.NameRecommendSongs, `{"track_ids":["a"],"top_n":99}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestMissingCatalog(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--catalog", filepath.Join(t.TempDir(), "absent.csv"), "recommend", "a"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for missing catalog")
	}
}

func TestDuplicateIDsHint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dups.csv")
	if err := os.WriteFile(path, []byte(testCatalog+"a,Again,X,0.5,0.5,120,0.5,0.5,-5\n"), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	for _, tc := range []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"reject", []string{"--catalog", path, "recommend", "b"}, true},
		{"first", []string{"--catalog", path, "--duplicates", "first", "recommend", "b"}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tc.args)
			err := cmd.Execute()
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("Execute: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), "--duplicates first") {
				t.Errorf("error = %v, want hint about --duplicates first", err)
			}
		})
	}
}
