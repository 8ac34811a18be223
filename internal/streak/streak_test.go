package streak

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountDays(t *testing.T) {
	tests := []struct {
		name   string
		anchor string
		days   map[string]bool
		want   int
	}{
		{
			name:   "empty history",
			anchor: "2026-03-10",
			days:   map[string]bool{},
			want:   0,
		},
		{
			name:   "three consecutive days ending at anchor",
			anchor: "2026-03-10",
			days:   map[string]bool{"2026-03-08": true, "2026-03-09": true, "2026-03-10": true},
			want:   3,
		},
		{
			name:   "anchor day absent breaks the run",
			anchor: "2026-03-11",
			days:   map[string]bool{"2026-03-08": true, "2026-03-09": true, "2026-03-10": true},
			want:   0,
		},
		{
			name:   "gap one day back resets",
			anchor: "2026-03-10",
			days:   map[string]bool{"2026-03-08": true, "2026-03-10": true},
			want:   1,
		},
		{
			name:   "run crosses a month boundary",
			anchor: "2026-03-01",
			days:   map[string]bool{"2026-02-27": true, "2026-02-28": true, "2026-03-01": true},
			want:   3,
		},
		{
			name:   "malformed anchor",
			anchor: "yesterday",
			days:   map[string]bool{"2026-03-10": true},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountDays(tt.anchor, tt.days))
		})
	}
}

func TestCountStopsAtFirstGap(t *testing.T) {
	present := map[string]bool{
		"2026-01-05": true,
		"2026-01-04": true,
		// 2026-01-03 missing
		"2026-01-02": true,
		"2026-01-01": true,
	}
	assert.Equal(t, 2, CountDays("2026-01-05", present))
}
