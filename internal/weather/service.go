package weather

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/i474232898/timezone-weather/internal/logger"
)

var errNoProvider = errors.New("weather: no provider configured")

// Service resolves zones to locations and reads their current weather.
// Every call makes at most one provider request; nothing is cached.
type Service struct {
	provider Provider
	resolver *Resolver
	timeout  time.Duration
	log      *logger.Logger
}

// NewService creates a Service. A zero timeout leaves deadlines to the caller.
func NewService(provider Provider, resolver *Resolver, timeout time.Duration, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		provider: provider,
		resolver: resolver,
		timeout:  timeout,
		log:      log,
	}
}

// Fetch returns the weather record for zoneID. Failures are reported through
// HasError; Fetch never returns an error.
func (s *Service) Fetch(ctx context.Context, zoneID string) WeatherData {
	return s.FetchResult(ctx, zoneID).Data
}

// FetchResult is Fetch with the failure cause preserved.
func (s *Service) FetchResult(ctx context.Context, zoneID string) Result {
	loc := s.resolver.Resolve(zoneID)
	data := WeatherData{
		LocationName: loc.City,
		ZoneID:       zoneID,
		IsLoading:    true,
	}
	if loc.Fallback {
		data.IsLoading = false
		data.HasError = true
		return Result{Data: data, Outcome: OutcomeUnlocated, Err: fmt.Errorf("%w: %s", ErrLocationUnresolved, zoneID)}
	}
	data.Latitude = loc.Latitude
	data.Longitude = loc.Longitude

	if s.provider == nil {
		data.IsLoading = false
		data.HasError = true
		return Result{Data: data, Outcome: OutcomeFetchFailed, Err: errNoProvider}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	r, err := s.provider.Fetch(ctx, loc)
	if err != nil {
		s.log.Debugw("weather fetch failed", "provider", s.provider.Name(), "zone", zoneID, "city", loc.City, "error", err)
		data.IsLoading = false
		data.HasError = true
		return Result{Data: data, Outcome: OutcomeFetchFailed, Err: fmt.Errorf("%s: %w", s.provider.Name(), err)}
	}

	data.Temperature = r.TemperatureC
	data.WeatherCode = r.WeatherCode
	data.WindSpeed = r.WindSpeedKmh
	data.Humidity = r.HumidityPct
	data.Precipitation = r.PrecipMm
	data.ObservationTime = r.ObservedAt
	data.IsLoading = false
	data.HasError = false
	return Result{Data: data, Outcome: OutcomeOK}
}

// FetchAll fetches every zone concurrently and returns the records keyed by
// zone ID.
func (s *Service) FetchAll(ctx context.Context, zoneIDs []string) map[string]WeatherData {
	results := s.FetchAllResults(ctx, zoneIDs)
	out := make(map[string]WeatherData, len(results))
	for id, r := range results {
		out[id] = r.Data
	}
	return out
}

// FetchAllResults fans out one goroutine per distinct zone. Each fetch gets
// its own timeout, so a slow zone does not hold up or cancel the others.
func (s *Service) FetchAllResults(ctx context.Context, zoneIDs []string) map[string]Result {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		seen    = make(map[string]struct{}, len(zoneIDs))
		results = make(map[string]Result, len(zoneIDs))
	)

	for _, id := range zoneIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		wg.Add(1)
		go func(id string) {
			defer wg.Done()

			r := s.FetchResult(ctx, id)

			mu.Lock()
			results[id] = r
			mu.Unlock()
		}(id)
	}

	wg.Wait()
	return results
}
