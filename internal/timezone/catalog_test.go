package timezone

import (
	"sort"
	"testing"
	"time"
)

func TestCatalogSortedByDisplayName(t *testing.T) {
	catalog := NewCatalog(NewTZDBFromNames([]string{"Pacific/Auckland", "America/Chicago", "Asia/Tokyo", "Europe/London"}))
	list := catalog.List()
	if !sort.SliceIsSorted(list, func(i, j int) bool { return list[i].DisplayName < list[j].DisplayName }) {
		t.Errorf("catalog not sorted: %+v", list)
	}
	if catalog.Len() != 5 {
		t.Errorf("Len() = %d, want 5", catalog.Len())
	}
}

func TestCatalogEmptyProvider(t *testing.T) {
	catalog := NewCatalog(newStaticProvider())
	if catalog.Len() != 0 || len(catalog.List()) != 0 {
		t.Errorf("expected empty catalog, got %+v", catalog.List())
	}
	if catalog.Contains("UTC") {
		t.Error("empty catalog should not contain UTC")
	}
}

func TestCatalogDeduplicatesAndIsImmutable(t *testing.T) {
	p := newStaticProvider(
		fixedZone("B", "(UTC+01:00) Same", time.Hour),
		fixedZone("A", "(UTC+01:00) Same", time.Hour),
	)
	p.order = append(p.order, "A")
	catalog := NewCatalog(p)

	list := catalog.List()
	if len(list) != 2 || list[0].ID != "A" || list[1].ID != "B" {
		t.Fatalf("unexpected catalog %+v", list)
	}
	list[0].ID = "mutated"
	if catalog.List()[0].ID != "A" {
		t.Error("List() must return a copy")
	}
}
