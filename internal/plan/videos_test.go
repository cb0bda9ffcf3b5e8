// ABOUTME: Tests for exercise video resolution.
// ABOUTME: Exact match first, then case-insensitive substring both directions.
package plan

import "testing"

func TestResolveVideoURLExactMatch(t *testing.T) {
	got := ResolveVideoURL("Bench press")
	if got != "https://www.youtube.com/watch?v=rT7DgCr-3pg" {
		t.Errorf("ResolveVideoURL(Bench press) = %q", got)
	}
}

func TestResolveVideoURLNameContainsKey(t *testing.T) {
	// "Barbell bench press" contains the catalog key "bench press".
	got := ResolveVideoURL("Barbell bench press")
	if got != "https://www.youtube.com/watch?v=rT7DgCr-3pg" {
		t.Errorf("ResolveVideoURL(Barbell bench press) = %q", got)
	}
}

func TestResolveVideoURLKeyContainsName(t *testing.T) {
	// "deadlift" is contained in the catalog keys "Deadlift" and
	// "Romanian deadlift"; the longest key wins the substring pass, so the
	// plain "Deadlift" entry only wins on an exact-case match.
	got := ResolveVideoURL("deadlift")
	if got != "https://www.youtube.com/watch?v=2SHsk9AzdjA" {
		t.Errorf("ResolveVideoURL(deadlift) = %q", got)
	}
}

func TestResolveVideoURLCaseInsensitive(t *testing.T) {
	// Both miss the exact-match map and go through the substring pass.
	got := ResolveVideoURL("ROMANIAN DEADLIFT")
	want := ResolveVideoURL("romanian deadlift")
	if got == "" || got != want {
		t.Errorf("case-insensitive lookup differs: %q vs %q", got, want)
	}
}

func TestResolveVideoURLDeterministicTieBreak(t *testing.T) {
	// Repeated lookups must pick the same key even when several match.
	first := ResolveVideoURL("press")
	for i := 0; i < 10; i++ {
		if got := ResolveVideoURL("press"); got != first {
			t.Fatalf("lookup %d returned %q, first returned %q", i, got, first)
		}
	}
}

func TestResolveVideoURLMiss(t *testing.T) {
	if got := ResolveVideoURL("Underwater basket weaving"); got != "" {
		t.Errorf("expected empty url for unknown exercise, got %q", got)
	}
	if got := ResolveVideoURL(""); got != "" {
		t.Errorf("expected empty url for empty name, got %q", got)
	}
}
