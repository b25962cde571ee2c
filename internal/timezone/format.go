package timezone

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// DefaultReferenceTime is the current wall clock in zoneID (UTC when unknown).
func DefaultReferenceTime(p Provider, zoneID string, now time.Time) WallClock {
	loc := time.UTC
	if zone, err := p.FindZone(zoneID); err == nil && zone.Location != nil {
		loc = zone.Location
	}
	return WallClockOf(now.In(loc))
}

// FormatTimeWithOffset renders a reading as "01:30 PM (UTC+5.5)".
func FormatTimeWithOffset(w WallClock, loc *time.Location) string {
	hours := math.Round(OffsetAt(loc, w).Hours()*100) / 100
	sign := ""
	if hours >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s (UTC%s%s)", w.naive().Format("03:04 PM"), sign, strconv.FormatFloat(hours, 'f', -1, 64))
}
