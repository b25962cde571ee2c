package timezone

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/maypok86/otter/v2"
	"github.com/ringsaturn/tzf"
)

const utcDisplayName = "(UTC) Coordinated Universal Time"

// displayYear anchors the standard-offset lookup so display names do not
// change with the calendar.
const displayYear = 2024

// TZDB is the Provider backed by the IANA database embedded in the binary.
// Zone identifiers are enumerated from the tzf boundary dataset; loaded
// locations are kept in an otter cache so every caller shares one handle.
type TZDB struct {
	names     []string
	locations *otter.Cache[string, *time.Location]
}

// NewTZDB enumerates every zone known to the tzf dataset.
func NewTZDB() (*TZDB, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("loading timezone boundaries: %w", err)
	}
	return NewTZDBFromNames(finder.TimezoneNames()), nil
}

// NewTZDBFromNames builds a TZDB over an explicit list of IANA identifiers.
// UTC is always listed.
func NewTZDBFromNames(names []string) *TZDB {
	seen := map[string]struct{}{UTC.ID: {}}
	list := []string{UTC.ID}
	for _, name := range names {
		if _, ok := seen[name]; ok || name == "" {
			continue
		}
		seen[name] = struct{}{}
		list = append(list, name)
	}

	return &TZDB{
		names: list,
		locations: otter.Must(&otter.Options[string, *time.Location]{
			MaximumSize:     2048,
			InitialCapacity: len(list),
		}),
	}
}

// ListZones returns every listed zone that the embedded database can load.
func (db *TZDB) ListZones() []Entry {
	entries := make([]Entry, 0, len(db.names))
	for _, name := range db.names {
		zone, err := db.FindZone(name)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{ID: zone.ID, DisplayName: zone.DisplayName})
	}
	return entries
}

// FindZone loads id from the embedded database.
func (db *TZDB) FindZone(id string) (Zone, error) {
	loc, err := db.load(id)
	if err != nil {
		return Zone{}, err
	}
	return Zone{ID: id, DisplayName: displayName(id, loc), Location: loc}, nil
}

func (db *TZDB) load(id string) (*time.Location, error) {
	if loc, ok := db.locations.GetIfPresent(id); ok {
		return loc, nil
	}
	// LoadLocation maps "" to UTC and "Local" to the host zone; neither is an identifier.
	if id == "" || id == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrZoneNotFound, id)
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrZoneNotFound, id)
	}
	db.locations.Set(id, loc)
	return loc, nil
}

// displayName renders "(UTC+05:30) Kolkata" using the zone's standard offset.
func displayName(id string, loc *time.Location) string {
	if id == UTC.ID {
		return utcDisplayName
	}
	return fmt.Sprintf("(UTC%s) %s", formatOffset(standardOffset(loc)), cityName(id))
}

func standardOffset(loc *time.Location) time.Duration {
	probe := time.Date(displayYear, time.January, 1, 12, 0, 0, 0, loc)
	if probe.IsDST() {
		probe = time.Date(displayYear, time.July, 1, 12, 0, 0, 0, loc)
	}
	_, offset := probe.Zone()
	return time.Duration(offset) * time.Second
}

func cityName(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		id = id[i+1:]
	}
	return strings.ReplaceAll(id, "_", " ")
}

// formatOffset formats an offset as "+05:30" or "-08:00".
func formatOffset(d time.Duration) string {
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}
	minutes := int(d / time.Minute)
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}
