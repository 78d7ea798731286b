// Package store keeps the last-used inputs of each calculator so they can be
// restored on the next run. Entries older than the freshness window are ignored.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/TwistedSD/Financial-Calculators/internal/config"
	"github.com/TwistedSD/Financial-Calculators/internal/domain"
)

// DefaultFreshness is how long saved inputs stay restorable.
const DefaultFreshness = 7 * 24 * time.Hour

// ErrNotFound is returned when nothing was saved for a calculator, or the saved
// entry is older than the freshness window.
var ErrNotFound = errors.New("saved inputs not found")

// Store persists one parameter record per calculator kind.
type Store interface {
	Save(ctx context.Context, kind domain.Kind, params any) error
	Load(ctx context.Context, kind domain.Kind, into any) error
	Delete(ctx context.Context, kind domain.Kind) error
	Close() error
}

// nowFunc is overridable in tests.
var nowFunc = time.Now

// record is the stored envelope around a parameter record.
type record struct {
	SavedAt time.Time       `json:"saved_at"`
	Params  json.RawMessage `json:"params"`
}

func encodeParams(params any) ([]byte, time.Time, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("encode params: %w", err)
	}
	return raw, nowFunc().UTC(), nil
}

func encodeRecord(params any) ([]byte, time.Time, error) {
	raw, savedAt, err := encodeParams(params)
	if err != nil {
		return nil, time.Time{}, err
	}
	data, err := json.Marshal(record{SavedAt: savedAt, Params: raw})
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("encode record: %w", err)
	}
	return data, savedAt, nil
}

func decodeRecord(data []byte, freshness time.Duration, into any) error {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return decodeParams(rec.SavedAt, rec.Params, freshness, into)
}

func decodeParams(savedAt time.Time, params []byte, freshness time.Duration, into any) error {
	if !fresh(savedAt, freshness) {
		return ErrNotFound
	}
	if err := json.Unmarshal(params, into); err != nil {
		return fmt.Errorf("decode params: %w", err)
	}
	return nil
}

func fresh(savedAt time.Time, freshness time.Duration) bool {
	if freshness <= 0 {
		freshness = DefaultFreshness
	}
	return nowFunc().Sub(savedAt) <= freshness
}

// Open builds the backend selected by the application config.
func Open(ctx context.Context, cfg config.AppConfig) (Store, error) {
	switch cfg.Store {
	case config.StoreMemory, "":
		return NewMemoryStore(cfg.Freshness), nil
	case config.StoreSQLite:
		s, err := OpenSQLite(cfg.SQLitePath, cfg.Freshness)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StoreRedis:
		s, err := OpenRedis(ctx, cfg.RedisAddr, cfg.Freshness)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}
