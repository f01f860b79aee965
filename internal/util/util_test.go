package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{500 * time.Microsecond, "<1ms"},
		{42 * time.Millisecond, "42ms"},
		{3*time.Second + 7*time.Millisecond, "3s7ms"},
		{2*time.Minute + 1*time.Second, "2min1s"},
		{time.Hour + time.Minute + time.Second + time.Millisecond, "1h1min1s1ms"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.d))
		})
	}
}
