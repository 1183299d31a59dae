package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Collection keys. Each names one JSON document in the kv table.
const (
	KeyPlans      = "hafazan_plans"
	KeyProgress   = "hafazan_progress"
	KeySettings   = "hafazan_settings"
	KeyMurajaah   = "hafazan_murajaah"
	KeyActivities = "hafazan_activities"
)

// loadDocument decodes the document at key over a value built by fallback.
// An absent key yields the fallback. Malformed JSON is logged and also yields
// a fresh fallback value.
func loadDocument[T any](ctx context.Context, kv KVStore, log *slog.Logger, key string, fallback func() T) (T, error) {
	doc := fallback()
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return doc, nil
	}
	if err != nil {
		var zero T
		return zero, err
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.WarnContext(ctx, "malformed collection, using empty", "key", key, "error", err)
		return fallback(), nil
	}
	return doc, nil
}

func saveDocument(ctx context.Context, kv KVStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return kv.Put(ctx, key, raw)
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// millisToTime converts a JavaScript-style epoch millisecond stamp.
func millisToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

func timeToMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func intPtr(v int) *int {
	return &v
}
