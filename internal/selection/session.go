// Package selection holds the user's chosen zones and display mode for a
// session and persists them through a store.KV.
package selection

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/i474232898/timezone-weather/internal/logger"
	"github.com/i474232898/timezone-weather/internal/store"
)

const (
	selectedZonesKey = "selected_timezones"
	displayModeKey   = "display_mode"
)

// DefaultZoneIDs seeds the selection before anything is loaded.
var DefaultZoneIDs = []string{
	"Europe/London",
	"America/New_York",
	"Europe/Madrid",
	"Australia/Sydney",
	"Europe/Warsaw",
	"Asia/Kolkata",
}

// Session is the selection state for one user session. Writers are
// serialized and hold the lock until the store write returns.
type Session struct {
	mu          sync.RWMutex
	kv          store.KV
	log         *logger.Logger
	selected    map[string]struct{}
	mode        DisplayMode
	initialized bool
}

// NewSession returns a session seeded with DefaultZoneIDs and Grid mode.
func NewSession(kv store.KV, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		kv:       kv,
		log:      log,
		selected: toSet(DefaultZoneIDs),
		mode:     Grid,
	}
}

// Initialize loads persisted values on its first call only. Missing or
// malformed values leave the current defaults in place.
func (s *Session) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return
	}
	s.initialized = true

	ids, err := store.GetJSON[[]string](ctx, s.kv, selectedZonesKey)
	switch {
	case err != nil:
		s.log.Debugw("selection: keeping default zones", "error", err)
	case len(ids) > 0:
		s.selected = toSet(ids)
	}

	name, err := store.GetJSON[string](ctx, s.kv, displayModeKey)
	if err != nil {
		s.log.Debugw("selection: keeping default display mode", "error", err)
		return
	}
	if name == "" {
		return
	}
	mode, err := ParseDisplayMode(name)
	if err != nil {
		s.log.Debugw("selection: ignoring stored display mode", "value", name, "error", err)
		return
	}
	s.mode = mode
}

// Selected returns the selected zone IDs in sorted order.
func (s *Session) Selected() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.selected)
}

// IsSelected reports whether id is part of the selection.
func (s *Session) IsSelected(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.selected[id]
	return ok
}

// SetSelected replaces the selection and persists it. The in-memory change
// is kept even if the store write fails.
func (s *Session) SetSelected(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = toSet(ids)
	if err := store.SetJSON(ctx, s.kv, selectedZonesKey, sortedKeys(s.selected)); err != nil {
		return fmt.Errorf("persist selected zones: %w", err)
	}
	return nil
}

// DisplayMode returns the current display mode.
func (s *Session) DisplayMode() DisplayMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetDisplayMode replaces the display mode and persists its name.
func (s *Session) SetDisplayMode(ctx context.Context, mode DisplayMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = mode
	if err := store.SetJSON(ctx, s.kv, displayModeKey, mode.String()); err != nil {
		return fmt.Errorf("persist display mode: %w", err)
	}
	return nil
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
