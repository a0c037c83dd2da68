package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"5m", 5 * time.Minute},
		{"90s", 90 * time.Second},
		{"", time.Hour},
		{"soon", time.Hour},
		{"-5m", time.Hour},
		{"0s", time.Hour},
	}
	for _, tt := range tests {
		if got := ParseDuration(tt.in, time.Hour); got != tt.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
