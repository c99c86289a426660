// Package kv holds the key-value stores habitbox persists its lists to.
package kv

import (
	"errors"
	"fmt"
	"strings"

	"habitbox/internal/config"
)

var ErrUnknownBackend = errors.New("kv: unknown backend")

// Store is a synchronous string key-value store. Get reports ok=false for a
// key that was never set.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Close() error
}

// Open returns the backend selected by cfg.Backend.
func Open(cfg config.Config) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", config.BackendSQLite:
		return OpenSQLite(cfg.DBPath)
	case config.BackendDiskv:
		return OpenDiskv(cfg.DiskvDir)
	case config.BackendRedis:
		return OpenRedis(RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	case config.BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
