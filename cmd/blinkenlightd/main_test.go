package main

import (
	"runtime/debug"
	"testing"
)

func TestResolveBuildTime(t *testing.T) {
	stamped := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "4f1c2a9"},
		{Key: "vcs.time", Value: "2026-10-19T08:30:00Z"},
	}}

	for _, tc := range []struct {
		name   string
		ldflag string
		bi     *debug.BuildInfo
		want   string
	}{
		{"ldflag", "2026-01-02T03:04:05Z", stamped, "2026-01-02T03:04:05Z"},
		{"vcs", "", stamped, "2026-10-19T08:30:00Z"},
		{"no-vcs", "", &debug.BuildInfo{}, "unknown"},
		{"no-buildinfo", "", nil, "unknown"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveBuildTime(tc.ldflag, tc.bi); got != tc.want {
				t.Fatalf("invalid build time: got=%q, want=%q", got, tc.want)
			}
		})
	}
}
