package chat

import (
	"fmt"
	"time"
)

// FormatRelative renders ts relative to now: "Just now", "5m ago", "3h ago",
// or the calendar date (M/D/YYYY) for anything a day or older.
func FormatRelative(ts, now time.Time) string {
	minutes := int(now.Sub(ts) / time.Minute)
	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case minutes < 24*60:
		return fmt.Sprintf("%dh ago", minutes/60)
	default:
		return ts.In(now.Location()).Format("1/2/2006")
	}
}
