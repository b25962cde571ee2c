package weather

import (
	"context"
	"errors"
)

// ErrMissingCurrent is returned by a Provider whose response lacks the
// current-conditions object.
var ErrMissingCurrent = errors.New("weather: response has no current conditions")

// ErrLocationUnresolved marks a zone with no forecast coordinates.
var ErrLocationUnresolved = errors.New("weather: zone has no known location")

// Reading is one provider's current conditions in metric units.
type Reading struct {
	ProviderName string
	ObservedAt   string

	TemperatureC float64
	HumidityPct  float64
	PrecipMm     float64
	WindSpeedKmh float64
	WeatherCode  int
}

// Provider abstracts the forecast source (e.g. Open-Meteo).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, loc Location) (Reading, error)
}
