package weather

import (
	"strings"

	"github.com/i474232898/timezone-weather/internal/timezone"
)

// ZoneFinder looks up zone display names for unmapped identifiers.
type ZoneFinder interface {
	FindZone(id string) (timezone.Zone, error)
}

// zoneLocations pins each well-known zone to its representative city.
var zoneLocations = map[string]Location{
	"Europe/London":       {City: "London", Latitude: 51.5074, Longitude: -0.1278},
	"America/New_York":    {City: "New York", Latitude: 40.7128, Longitude: -74.0060},
	"Europe/Madrid":       {City: "Madrid", Latitude: 40.4168, Longitude: -3.7038},
	"Australia/Sydney":    {City: "Sydney", Latitude: -33.8688, Longitude: 151.2093},
	"Europe/Warsaw":       {City: "Warsaw", Latitude: 52.2297, Longitude: 21.0122},
	"Asia/Kolkata":        {City: "New Delhi", Latitude: 28.6139, Longitude: 77.2090},
	"America/Los_Angeles": {City: "Los Angeles", Latitude: 34.0522, Longitude: -118.2437},
	"America/Chicago":     {City: "Chicago", Latitude: 41.8781, Longitude: -87.6298},
	"America/Denver":      {City: "Denver", Latitude: 39.7392, Longitude: -104.9903},
	"Asia/Shanghai":       {City: "Beijing", Latitude: 39.9042, Longitude: 116.4074},
	"Asia/Tokyo":          {City: "Tokyo", Latitude: 35.6762, Longitude: 139.6503},
	"Asia/Singapore":      {City: "Singapore", Latitude: 1.3521, Longitude: 103.8198},
	"Europe/Paris":        {City: "Paris", Latitude: 48.8566, Longitude: 2.3522},
	"Europe/Berlin":       {City: "Berlin", Latitude: 52.5200, Longitude: 13.4050},
	"Europe/Kyiv":         {City: "Kyiv", Latitude: 50.4501, Longitude: 30.5234},
	"Europe/Moscow":       {City: "Moscow", Latitude: 55.7558, Longitude: 37.6173},
	"Asia/Dubai":          {City: "Dubai", Latitude: 25.2048, Longitude: 55.2708},
	"Africa/Cairo":        {City: "Cairo", Latitude: 30.0444, Longitude: 31.2357},
	"Africa/Johannesburg": {City: "Johannesburg", Latitude: -26.2041, Longitude: 28.0473},
	"Pacific/Auckland":    {City: "Auckland", Latitude: -36.8485, Longitude: 174.7633},
}

// UnknownCity names a zone that neither the table nor the provider knows.
const UnknownCity = "Unknown"

// Resolver maps zone identifiers to forecast coordinates.
type Resolver struct {
	zones ZoneFinder
}

// NewResolver returns a Resolver that falls back to zones for display names.
func NewResolver(zones ZoneFinder) *Resolver {
	return &Resolver{zones: zones}
}

// Resolve returns the table entry for zoneID, or a Fallback location whose
// city is taken from the zone's "(UTC+hh:mm) City" display name.
func (r *Resolver) Resolve(zoneID string) Location {
	if loc, ok := zoneLocations[zoneID]; ok {
		return loc
	}
	return Location{City: r.fallbackCity(zoneID), Fallback: true}
}

func (r *Resolver) fallbackCity(zoneID string) string {
	if r.zones == nil {
		return UnknownCity
	}
	zone, err := r.zones.FindZone(zoneID)
	if err != nil {
		return UnknownCity
	}
	parts := strings.FieldsFunc(zone.DisplayName, func(c rune) bool { return c == '(' || c == ')' })
	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		return UnknownCity
	}
	return strings.TrimSpace(parts[1])
}
