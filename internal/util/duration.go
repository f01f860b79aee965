package util

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders a duration as a compact composite like
// "1h2min3s4ms". Sub-millisecond durations render as "<1ms".
func FormatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return "<1ms"
	}

	var b strings.Builder
	if h := d / time.Hour; h > 0 {
		fmt.Fprintf(&b, "%dh", h)
		d -= h * time.Hour
	}
	if m := d / time.Minute; m > 0 {
		fmt.Fprintf(&b, "%dmin", m)
		d -= m * time.Minute
	}
	if s := d / time.Second; s > 0 {
		fmt.Fprintf(&b, "%ds", s)
		d -= s * time.Second
	}
	if ms := d / time.Millisecond; ms > 0 {
		fmt.Fprintf(&b, "%dms", ms)
	}
	return b.String()
}
