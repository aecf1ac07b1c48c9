package version

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	testCases := []struct {
		in   string
		zero bool
	}{
		{"2025-03-01T10:00:00Z", false},
		{"2025-03-01T10:00:00", false},
		{"2025-03-01 10:00:00", false},
		{"unknown", true},
		{"", true},
		{"yesterday", true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.zero, parseTime(tc.in).IsZero())
		})
	}
}

func TestBuildInfoFormatting(t *testing.T) {
	b := &BuildInfo{
		Version:   "v0.3.0",
		GitCommit: "1a2b3c4d5e6f",
		BuildTime: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		GoVersion: "go1.24.4",
		Platform:  "linux/amd64",
		Dirty:     true,
	}
	assert.Equal(t, "v0.3.0 (1a2b3c4)", b.Short())
	assert.True(t, b.IsRelease())
	assert.Contains(t, b.String(), "Commit: 1a2b3c4d5e6f (dirty)")
	assert.Contains(t, b.String(), "Built: 2025-03-01T10:00:00Z")

	dev := &BuildInfo{Version: "dev-1a2b3c4", GitCommit: "1a2b3c4d5e6f"}
	assert.Equal(t, "dev-1a2b3c4", dev.Short())
	assert.False(t, dev.IsRelease())
}

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
