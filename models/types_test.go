// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"testing"
)

func TestLeaderText(t *testing.T) {
	tests := []struct {
		leader Leader
		text   string
	}{
		{LeaderNone, "none"},
		{LeaderA, "a"},
		{LeaderB, "b"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := tt.leader.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText() error = %v", err)
			}
			if string(got) != tt.text {
				t.Errorf("MarshalText() = %q, want %q", got, tt.text)
			}

			var back Leader
			if err := back.UnmarshalText(got); err != nil {
				t.Fatalf("UnmarshalText(%q) error = %v", got, err)
			}
			if back != tt.leader {
				t.Errorf("UnmarshalText(%q) = %v, want %v", got, back, tt.leader)
			}
		})
	}
}

func TestLeaderText_Rejects(t *testing.T) {
	if _, err := Leader(7).MarshalText(); err == nil {
		t.Error("MarshalText() accepted Leader(7)")
	}
	if _, err := json.Marshal(LeaderResponse{Leader: Leader(7)}); err == nil {
		t.Error("json.Marshal accepted Leader(7)")
	}

	for _, text := range []string{"c", "A", "", "1"} {
		l := LeaderB
		if err := l.UnmarshalText([]byte(text)); err == nil {
			t.Errorf("UnmarshalText(%q) succeeded", text)
		}
		if l != LeaderB {
			t.Errorf("UnmarshalText(%q) changed the value to %v", text, l)
		}
	}

	var resp LeaderResponse
	if err := json.Unmarshal([]byte(`{"leader":"c"}`), &resp); err == nil {
		t.Error(`json.Unmarshal accepted leader "c"`)
	}
}

func TestLeaderString(t *testing.T) {
	if got := Leader(7).String(); got != "Leader(7)" {
		t.Errorf("String() = %q, want Leader(7)", got)
	}
}

func TestRegionResultWinner(t *testing.T) {
	tests := []struct {
		name string
		r    RegionResult
		want Leader
	}{
		{"a ahead", RegionResult{VotesA: 3, VotesB: 2}, LeaderA},
		{"b ahead", RegionResult{VotesA: 2, VotesB: 3}, LeaderB},
		{"tie", RegionResult{VotesA: 4, VotesB: 4}, LeaderNone},
		{"no votes", RegionResult{}, LeaderNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Winner(); got != tt.want {
				t.Errorf("Winner() = %v, want %v", got, tt.want)
			}
		})
	}
}
