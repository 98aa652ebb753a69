package textutil_test

import (
	"testing"

	"mediaclean/internal/textutil"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{`Who Shot Mr. Burns? (Part One)`, "Who Shot Mr. Burns (Part One)"},
		{`a/b\c:d*e?f"g<h>i|j`, "abcdefghij"},
		{"  spaced   out  ", "spaced out"},
		{"tabs\tand\nnewlines", "tabs and newlines"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := textutil.SanitizeName(tc.input); got != tc.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestSanitizeNameIdempotent(t *testing.T) {
	inputs := []string{
		"Breaking Bad",
		"Who Shot Mr. Burns (Part One)",
		"Show Name - S01E01 - Pilot",
	}
	for _, input := range inputs {
		once := textutil.SanitizeName(input)
		twice := textutil.SanitizeName(once)
		if once != twice {
			t.Errorf("SanitizeName not idempotent: %q -> %q -> %q", input, once, twice)
		}
	}
}

func TestFallbackTitle(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"breaking.bad", "Breaking Bad"},
		{"the_wire-s01", "The Wire S01"},
		{"", "Unknown Series"},
		{"???", "Unknown Series"},
	}
	for _, tc := range cases {
		if got := textutil.FallbackTitle(tc.input); got != tc.want {
			t.Errorf("FallbackTitle(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
