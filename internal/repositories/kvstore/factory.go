package kvstore

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/pocketmoney/pocket_money_app/internal/core/ports/repositories"
)

// Backend selects which driver backs the ledger documents.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendSQLite   Backend = "sqlite"
	BackendRedis    Backend = "redis"
	BackendPostgres Backend = "postgres"
)

// IsValid reports whether b names a known backend.
func (b Backend) IsValid() bool {
	switch b {
	case BackendMemory, BackendSQLite, BackendRedis, BackendPostgres:
		return true
	}
	return false
}

// Options carries the per-backend connection settings.
type Options struct {
	SQLiteDBPath string
	RedisURL     string
	DatabaseURL  string
}

// New creates the KVStore named by backend. Unknown backends are a startup
// error, not a silent fallback.
func New(ctx context.Context, backend Backend, opts Options, logger *slog.Logger) (portsrepo.KVStore, error) {
	switch backend {
	case BackendMemory:
		logger.Warn("Using in-memory store; ledger state will not survive a restart")
		return NewMemoryStore(), nil
	case BackendSQLite:
		store, err := NewSQLiteStore(opts.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		logger.Info("Initialized sqlite store", slog.String("db_path", opts.SQLiteDBPath))
		return store, nil
	case BackendRedis:
		store, err := NewRedisStore(ctx, opts.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("initialize redis store: %w", err)
		}
		logger.Info("Initialized redis store")
		return store, nil
	case BackendPostgres:
		store, err := NewPostgresStore(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("initialize postgres store: %w", err)
		}
		logger.Info("Initialized postgres store")
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
