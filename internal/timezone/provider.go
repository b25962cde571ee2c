package timezone

import (
	"errors"
	"slices"
	"time"
)

// ErrZoneNotFound is returned by a Provider for identifiers it does not know.
var ErrZoneNotFound = errors.New("timezone: zone not found")

// Entry is one catalog row.
type Entry struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// Zone is the provider-owned handle for a zone's offset and DST rules.
// Location is shared with the provider and must not be modified.
type Zone struct {
	ID          string
	DisplayName string
	Location    *time.Location
}

// Provider abstracts the timezone database.
type Provider interface {
	ListZones() []Entry
	FindZone(id string) (Zone, error)
}

// UTC is the zone substituted when a reference zone cannot be resolved.
var UTC = Zone{ID: "UTC", DisplayName: utcDisplayName, Location: time.UTC}

// OffsetAt returns the UTC offset loc applies to the wall-clock reading w.
// A reading repeated by a fall-back transition resolves to standard time; a
// reading skipped by a spring-forward transition takes the standard offset.
func OffsetAt(loc *time.Location, w WallClock) time.Duration {
	naive := w.naive()

	type candidate struct {
		offset time.Duration
		dst    bool
	}
	var seen, valid []candidate
	for _, probe := range []time.Duration{-12 * time.Hour, 0, 12 * time.Hour} {
		t := naive.Add(probe).In(loc)
		_, off := t.Zone()
		c := candidate{offset: time.Duration(off) * time.Second, dst: t.IsDST()}
		if slices.Contains(seen, c) {
			continue
		}
		seen = append(seen, c)
		if WallClockOf(naive.Add(-c.offset).In(loc)) == w {
			valid = append(valid, c)
		}
	}

	pool := valid
	if len(pool) == 0 {
		pool = seen
	}
	for _, c := range pool {
		if !c.dst {
			return c.offset
		}
	}
	return pool[0].offset
}
