package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	value := []byte(`["Europe/London"]`)
	if err := s.Set(ctx, "k", value); err != nil {
		t.Fatal(err)
	}
	value[0] = 'X'

	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `["Europe/London"]` {
		t.Errorf("stored value was aliased: %s", got)
	}
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := SetJSON(ctx, s, "ids", []string{"Asia/Tokyo", "UTC"}); err != nil {
		t.Fatal(err)
	}
	ids, err := GetJSON[[]string](ctx, s, "ids")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != "Asia/Tokyo" {
		t.Errorf("GetJSON = %v", ids)
	}

	if err := s.Set(ctx, "broken", []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	if _, err := GetJSON[[]string](ctx, s, "broken"); err == nil {
		t.Error("expected decode error")
	}
	if _, err := GetJSON[string](ctx, s, "absent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
