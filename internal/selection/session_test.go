package selection

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"testing"

	"github.com/i474232898/timezone-weather/internal/store"
)

// failingKV fails every write and serves reads from an inner store.
type failingKV struct {
	*store.MemoryStore
}

func (f failingKV) Set(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

// countingKV counts reads so idempotency can be observed.
type countingKV struct {
	*store.MemoryStore
	mu    sync.Mutex
	reads int
}

func (c *countingKV) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	c.reads++
	c.mu.Unlock()
	return c.MemoryStore.Get(ctx, key)
}

func sortedDefaults() []string {
	out := append([]string(nil), DefaultZoneIDs...)
	sort.Strings(out)
	return out
}

func TestSessionDefaults(t *testing.T) {
	s := NewSession(store.NewMemoryStore(), nil)
	if got := s.Selected(); !reflect.DeepEqual(got, sortedDefaults()) {
		t.Errorf("Selected() = %v, want %v", got, sortedDefaults())
	}
	if s.DisplayMode() != Grid {
		t.Errorf("DisplayMode() = %v, want Grid", s.DisplayMode())
	}
	if len(DefaultZoneIDs) != 6 {
		t.Errorf("expected six seed zones, got %d", len(DefaultZoneIDs))
	}
}

func TestSessionInitializeLoadsStoredValues(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	if err := store.SetJSON(ctx, kv, selectedZonesKey, []string{"Asia/Tokyo", "UTC", "Asia/Tokyo"}); err != nil {
		t.Fatal(err)
	}
	if err := store.SetJSON(ctx, kv, displayModeKey, "Compact"); err != nil {
		t.Fatal(err)
	}

	s := NewSession(kv, nil)
	s.Initialize(ctx)

	if got := s.Selected(); !reflect.DeepEqual(got, []string{"Asia/Tokyo", "UTC"}) {
		t.Errorf("Selected() = %v", got)
	}
	if s.DisplayMode() != Compact {
		t.Errorf("DisplayMode() = %v, want Compact", s.DisplayMode())
	}
}

func TestSessionInitializeIgnoresBadValues(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		mode     string
	}{
		{"empty list and empty mode", `[]`, `""`},
		{"malformed json", `{oops`, `{oops`},
		{"wrong types", `"Europe/London"`, `42`},
		{"unknown mode", `null`, `"Carousel"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := store.NewMemoryStore()
			_ = kv.Set(ctx, selectedZonesKey, []byte(tt.selected))
			_ = kv.Set(ctx, displayModeKey, []byte(tt.mode))

			s := NewSession(kv, nil)
			s.Initialize(ctx)

			if got := s.Selected(); !reflect.DeepEqual(got, sortedDefaults()) {
				t.Errorf("Selected() = %v, want defaults", got)
			}
			if s.DisplayMode() != Grid {
				t.Errorf("DisplayMode() = %v, want Grid", s.DisplayMode())
			}
		})
	}
}

func TestSessionInitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	kv := &countingKV{MemoryStore: store.NewMemoryStore()}
	s := NewSession(kv, nil)

	s.Initialize(ctx)
	reads := kv.reads
	if err := store.SetJSON(ctx, kv.MemoryStore, selectedZonesKey, []string{"UTC"}); err != nil {
		t.Fatal(err)
	}
	s.Initialize(ctx)

	if kv.reads != reads {
		t.Errorf("second Initialize read the store (%d -> %d reads)", reads, kv.reads)
	}
	if s.IsSelected("UTC") {
		t.Error("second Initialize must not reload values")
	}
}

func TestSessionSetSelectedPersists(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	s := NewSession(kv, nil)

	if err := s.SetSelected(ctx, []string{"Europe/Paris", "Asia/Tokyo", "Europe/Paris"}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetDisplayMode(ctx, List); err != nil {
		t.Fatal(err)
	}

	raw, err := kv.Get(ctx, selectedZonesKey)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `["Asia/Tokyo","Europe/Paris"]` {
		t.Errorf("stored selection = %s", raw)
	}
	raw, err = kv.Get(ctx, displayModeKey)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `"List"` {
		t.Errorf("stored display mode = %s", raw)
	}

	fresh := NewSession(kv, nil)
	fresh.Initialize(ctx)
	if got := fresh.Selected(); !reflect.DeepEqual(got, []string{"Asia/Tokyo", "Europe/Paris"}) {
		t.Errorf("reloaded selection = %v", got)
	}
	if fresh.DisplayMode() != List {
		t.Errorf("reloaded mode = %v", fresh.DisplayMode())
	}
}

func TestSessionWriteFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	s := NewSession(failingKV{MemoryStore: store.NewMemoryStore()}, nil)

	if err := s.SetSelected(ctx, []string{"UTC"}); err == nil {
		t.Fatal("expected persistence error")
	}
	if got := s.Selected(); !reflect.DeepEqual(got, []string{"UTC"}) {
		t.Errorf("Selected() = %v, want [UTC]", got)
	}
	if err := s.SetDisplayMode(ctx, Compact); err == nil {
		t.Fatal("expected persistence error")
	}
	if s.DisplayMode() != Compact {
		t.Errorf("DisplayMode() = %v, want Compact", s.DisplayMode())
	}
}

func TestSessionConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	s := NewSession(kv, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.SetSelected(ctx, []string{fmt.Sprintf("Zone/%02d", i)})
			_ = s.Selected()
		}(i)
	}
	wg.Wait()

	stored, err := store.GetJSON[[]string](ctx, kv, selectedZonesKey)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(stored, s.Selected()) {
		t.Errorf("store %v and memory %v diverged", stored, s.Selected())
	}
}

func TestDisplayModeText(t *testing.T) {
	for _, mode := range []DisplayMode{Grid, List, Compact} {
		b, err := mode.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back DisplayMode
		if err := back.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if back != mode {
			t.Errorf("%v round-tripped to %v", mode, back)
		}
	}
	if _, err := ParseDisplayMode("compact"); err != nil {
		t.Errorf("lower-case names should parse: %v", err)
	}
	if _, err := DisplayMode(7).MarshalText(); err == nil {
		t.Error("out-of-range mode should not marshal")
	}
}
