package timezone

import (
	"fmt"
	"time"
)

// staticProvider serves fixed-offset zones; ghosts are listed but fail FindZone.
type staticProvider struct {
	zones  map[string]Zone
	order  []string
	ghosts map[string]string
}

func newStaticProvider(zones ...Zone) *staticProvider {
	p := &staticProvider{zones: make(map[string]Zone), ghosts: make(map[string]string)}
	for _, z := range zones {
		p.zones[z.ID] = z
		p.order = append(p.order, z.ID)
	}
	return p
}

func (p *staticProvider) withGhost(id, displayName string) *staticProvider {
	p.ghosts[id] = displayName
	p.order = append(p.order, id)
	return p
}

func (p *staticProvider) ListZones() []Entry {
	entries := make([]Entry, 0, len(p.order))
	for _, id := range p.order {
		if z, ok := p.zones[id]; ok {
			entries = append(entries, Entry{ID: id, DisplayName: z.DisplayName})
			continue
		}
		entries = append(entries, Entry{ID: id, DisplayName: p.ghosts[id]})
	}
	return entries
}

func (p *staticProvider) FindZone(id string) (Zone, error) {
	z, ok := p.zones[id]
	if !ok {
		return Zone{}, fmt.Errorf("%w: %s", ErrZoneNotFound, id)
	}
	return z, nil
}

func fixedZone(id, displayName string, offset time.Duration) Zone {
	return Zone{ID: id, DisplayName: displayName, Location: time.FixedZone(id, int(offset/time.Second))}
}

func testProvider() *staticProvider {
	return newStaticProvider(
		UTC,
		fixedZone("Asia/Kolkata", "(UTC+05:30) Chennai, Kolkata, Mumbai, New Delhi", 5*time.Hour+30*time.Minute),
		fixedZone("Asia/Tokyo", "(UTC+09:00) Osaka, Sapporo, Tokyo", 9*time.Hour),
		fixedZone("America/Bogota", "(UTC-05:00) Bogota, Lima, Quito", -5*time.Hour),
	)
}
