package timezone

import (
	"fmt"
	"time"
)

const (
	wallClockLayout      = "2006-01-02T15:04:05"
	wallClockShortLayout = "2006-01-02T15:04"
)

// WallClock is a calendar date and time of day with no UTC offset attached.
type WallClock struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// WallClockOf reads the wall clock of t in t's own location.
func WallClockOf(t time.Time) WallClock {
	return WallClock{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// ParseWallClock accepts "2006-01-02T15:04:05" or "2006-01-02T15:04".
func ParseWallClock(s string) (WallClock, error) {
	for _, layout := range []string{wallClockLayout, wallClockShortLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return WallClockOf(t), nil
		}
	}
	return WallClock{}, fmt.Errorf("invalid wall clock %q; use YYYY-MM-DDTHH:MM[:SS]", s)
}

// naive places the reading on the UTC timeline as if it had no offset.
func (w WallClock) naive() time.Time {
	return time.Date(w.Year, w.Month, w.Day, w.Hour, w.Minute, w.Second, 0, time.UTC)
}

// In interprets the reading in loc.
func (w WallClock) In(loc *time.Location) time.Time {
	return time.Date(w.Year, w.Month, w.Day, w.Hour, w.Minute, w.Second, 0, loc)
}

func (w WallClock) String() string {
	return w.naive().Format(wallClockLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (w WallClock) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *WallClock) UnmarshalText(b []byte) error {
	parsed, err := ParseWallClock(string(b))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
