package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/timezone-weather/internal/logger"
	"github.com/i474232898/timezone-weather/internal/weather"
)

// ZoneSource yields the zones to probe on each run.
type ZoneSource interface {
	Selected() []string
}

// Fetcher is the part of weather.Service the probe uses.
type Fetcher interface {
	FetchAllResults(ctx context.Context, zoneIDs []string) map[string]weather.Result
}

// Scheduler periodically probes weather for the selected zones and logs the
// outcome of each fetch. Results are not kept.
type Scheduler struct {
	scheduler *gocron.Scheduler
	fetcher   Fetcher
	zones     ZoneSource
	interval  time.Duration
	timeout   time.Duration
	log       *logger.Logger
}

// New creates a new Scheduler. A zero interval disables it.
func New(zones ZoneSource, fetcher Fetcher, interval time.Duration, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		fetcher:   fetcher,
		zones:     zones,
		interval:  interval,
		timeout:   30 * time.Second,
		log:       log.Named("scheduler"),
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.log.Infow("weather probe disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.Probe(ctx)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.log.Infow("weather probe scheduled", "interval", s.interval)
	return nil
}

// Probe fetches every selected zone once and returns the number of failures.
func (s *Scheduler) Probe(ctx context.Context) int {
	ids := s.zones.Selected()
	if len(ids) == 0 {
		s.log.Debugw("no zones selected; nothing to probe")
		return 0
	}

	s.log.Debugw("running weather probe", "zones", len(ids))
	failed := 0
	for id, r := range s.fetcher.FetchAllResults(ctx, ids) {
		if r.Outcome != weather.OutcomeOK {
			failed++
			s.log.Warnw("weather probe failed", "zone", id, "outcome", r.Outcome.String(), "error", r.Err)
			continue
		}
		s.log.Debugw("weather probe ok", "zone", id, "temperature", r.Data.Temperature, "code", r.Data.WeatherCode)
	}
	s.log.Infow("completed weather probe", "zones", len(ids), "failed", failed)
	return failed
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
