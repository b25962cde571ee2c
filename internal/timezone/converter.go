package timezone

import "time"

// DisplayRecord is one target zone's view of the shared reference instant.
type DisplayRecord struct {
	ZoneID               string    `json:"zoneId"`
	DisplayName          string    `json:"displayName"`
	LocalTime            WallClock `json:"localTime"`
	IsWithinWorkingHours bool      `json:"isWithinWorkingHours"`
	Zone                 Zone      `json:"-"`
}

// Converter projects a reference wall-clock reading onto target zones.
// It performs no I/O beyond provider lookups and is safe for concurrent use
// when the provider is.
type Converter struct {
	provider Provider
	catalog  *Catalog
}

// NewConverter returns a Converter over provider, restricted to catalog.
func NewConverter(provider Provider, catalog *Catalog) *Converter {
	return &Converter{provider: provider, catalog: catalog}
}

// ReferenceZone resolves id, substituting UTC when the provider cannot.
func (c *Converter) ReferenceZone(id string) Zone {
	zone, err := c.provider.FindZone(id)
	if err != nil || zone.Location == nil {
		return UTC
	}
	return zone
}

// Instant interprets ref as a reading taken in refZoneID and returns the UTC
// instant it denotes.
func (c *Converter) Instant(ref WallClock, refZoneID string) time.Time {
	zone := c.ReferenceZone(refZoneID)
	return ref.naive().Add(-OffsetAt(zone.Location, ref))
}

// Convert returns a record for every catalog zone listed in targets, in
// catalog order. Targets the provider cannot resolve are omitted.
func (c *Converter) Convert(ref WallClock, refZoneID string, targets []string) []DisplayRecord {
	instant := c.Instant(ref, refZoneID)

	wanted := make(map[string]struct{}, len(targets))
	for _, id := range targets {
		wanted[id] = struct{}{}
	}

	records := make([]DisplayRecord, 0, len(wanted))
	for _, entry := range c.catalog.entries {
		if _, ok := wanted[entry.ID]; !ok {
			continue
		}
		zone, err := c.provider.FindZone(entry.ID)
		if err != nil || zone.Location == nil {
			continue
		}

		local := WallClockOf(instant.In(zone.Location))
		records = append(records, DisplayRecord{
			ZoneID:               entry.ID,
			DisplayName:          entry.DisplayName,
			LocalTime:            local,
			IsWithinWorkingHours: IsWorkingHours(local.Hour),
			Zone:                 zone,
		})
	}
	return records
}

// Missing lists the requested targets that have no record, in request order.
func Missing(targets []string, records []DisplayRecord) []string {
	have := make(map[string]struct{}, len(records))
	for _, r := range records {
		have[r.ZoneID] = struct{}{}
	}
	var missing []string
	for _, id := range targets {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
			have[id] = struct{}{}
		}
	}
	return missing
}
