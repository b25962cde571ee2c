package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetJSON decodes the value under key into T.
func GetJSON[T any](ctx context.Context, kv KV, key string) (T, error) {
	var out T
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %q: %w", key, err)
	}
	return out, nil
}

// SetJSON encodes value and stores it under key.
func SetJSON(ctx context.Context, kv KV, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return kv.Set(ctx, key, raw)
}
