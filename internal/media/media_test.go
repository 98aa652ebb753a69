package media_test

import (
	"testing"

	"mediaclean/internal/media"
)

func TestIsVideoFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/downloads/show/episode.mkv", true},
		{"/downloads/show/episode.MKV", true},
		{"/downloads/show/episode.avi", true},
		{"/downloads/show/episode.mp4", true},
		{"/downloads/show/episode.srt", false},
		{"/downloads/show/episode.rar", false},
		{"/downloads/show/episode", false},
		{"/downloads/show/sample.nfo", false},
	}
	for _, tc := range cases {
		if got := media.IsVideoFile(tc.path); got != tc.want {
			t.Errorf("IsVideoFile(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestIsFirstVolumeRAR(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"episode.rar", true},
		{"Episode.RAR", true},
		{"episode.part1.rar", true},
		{"episode.part01.rar", true},
		{"episode.part001.rar", true},
		{"episode.part2.rar", false},
		{"episode.part02.rar", false},
		{"episode.part10.rar", false},
		{"episode.r00", false},
		{"episode.r01", false},
		{"episode.zip", false},
		{"episode.mkv", false},
	}
	for _, tc := range cases {
		if got := media.IsFirstVolumeRAR(tc.path); got != tc.want {
			t.Errorf("IsFirstVolumeRAR(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
