package timezone

import (
	"slices"
	"sort"
)

// Catalog is the immutable, display-name ordered list of known zones.
type Catalog struct {
	entries []Entry
	index   map[string]struct{}
}

// NewCatalog snapshots the provider's zones. Duplicate identifiers keep
// their first occurrence.
func NewCatalog(p Provider) *Catalog {
	zones := p.ListZones()
	c := &Catalog{
		entries: make([]Entry, 0, len(zones)),
		index:   make(map[string]struct{}, len(zones)),
	}
	for _, z := range zones {
		if _, dup := c.index[z.ID]; dup {
			continue
		}
		c.index[z.ID] = struct{}{}
		c.entries = append(c.entries, z)
	}

	sort.SliceStable(c.entries, func(i, j int) bool {
		if c.entries[i].DisplayName != c.entries[j].DisplayName {
			return c.entries[i].DisplayName < c.entries[j].DisplayName
		}
		return c.entries[i].ID < c.entries[j].ID
	})
	return c
}

// List returns a copy of the catalog.
func (c *Catalog) List() []Entry {
	return slices.Clone(c.entries)
}

// Contains reports whether id is in the catalog.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Len returns the number of zones.
func (c *Catalog) Len() int {
	return len(c.entries)
}
