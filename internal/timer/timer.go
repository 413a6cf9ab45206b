// Package timer converts study time to display strings and drives the
// once-a-second refresh of live timers.
package timer

import (
	"fmt"
	"math"
	"time"
)

// FormatDuration renders seconds as HH:MM:SS. Hours are not capped at 99.
// Negative input renders as 00:00:00.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		return "00:00:00"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// LiveElapsedSeconds returns the whole seconds between start and now,
// rounding half up.
func LiveElapsedSeconds(start, now time.Time) int {
	return ElapsedMillis(start.UnixMilli(), now.UnixMilli())
}

// ElapsedMillis is LiveElapsedSeconds on epoch-millisecond instants.
func ElapsedMillis(startMs, nowMs int64) int {
	return int(math.Floor(float64(nowMs-startMs)/1000 + 0.5))
}
