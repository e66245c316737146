package services

import (
	"testing"
	"time"
)

func TestFormatUptime(t *testing.T) {
	t.Parallel()

	cases := []struct {
		uptime time.Duration
		want   string
	}{
		{0, "0d 0h 0m"},
		{59 * time.Second, "0d 0h 0m"},
		{90 * time.Minute, "0d 1h 30m"},
		{26*time.Hour + 5*time.Minute, "1d 2h 5m"},
		{73*time.Hour + 59*time.Minute, "3d 1h 59m"},
	}

	for _, tc := range cases {
		if got := formatUptime(tc.uptime); got != tc.want {
			t.Errorf("formatUptime(%v) = %q, want %q", tc.uptime, got, tc.want)
		}
	}
}
