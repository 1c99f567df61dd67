package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pocketmoney/pocket_money_app/internal/apperrors"
	"github.com/pocketmoney/pocket_money_app/internal/core/domain"
	portsrepo "github.com/pocketmoney/pocket_money_app/internal/core/ports/repositories"
)

const (
	saveAttempts = 3
	backoffBase  = 50 * time.Millisecond
)

// LedgerRepository serializes the ledger state as three independently flushed
// JSON documents plus a launch flag, over an abstract key-value store. Writes
// are retried with doubling backoff; a final failure is wrapped as a
// persistence error for the engine to translate into its degraded-mode signal.
type LedgerRepository struct {
	store  portsrepo.KVStore
	logger *slog.Logger
}

// NewLedgerRepository creates a repository over the given store.
func NewLedgerRepository(store portsrepo.KVStore, logger *slog.Logger) *LedgerRepository {
	return &LedgerRepository{store: store, logger: logger}
}

var _ portsrepo.LedgerRepository = (*LedgerRepository)(nil)

// Load reads the full snapshot. Absent keys are a legitimate first-run state.
// Date fields come back from their stored RFC 3339 text form, and a stored
// profile is unmarshalled over the default profile so fields added in later
// schema versions (e.g. a new term in the rate table) are backfilled.
func (r *LedgerRepository) Load(ctx context.Context) (*portsrepo.LedgerSnapshot, error) {
	snapshot := &portsrepo.LedgerSnapshot{}

	data, err := r.store.Get(ctx, portsrepo.KeyTransactions)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		// first run
	case err != nil:
		return nil, fmt.Errorf("%w: read transactions: %w", apperrors.ErrPersistence, err)
	default:
		if err := json.Unmarshal(data, &snapshot.Transactions); err != nil {
			return nil, fmt.Errorf("%w: decode transactions: %w", apperrors.ErrPersistence, err)
		}
	}

	data, err = r.store.Get(ctx, portsrepo.KeyDeposits)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("%w: read deposits: %w", apperrors.ErrPersistence, err)
	default:
		if err := json.Unmarshal(data, &snapshot.Deposits); err != nil {
			return nil, fmt.Errorf("%w: decode deposits: %w", apperrors.ErrPersistence, err)
		}
	}

	data, err = r.store.Get(ctx, portsrepo.KeyUserProfile)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("%w: read profile: %w", apperrors.ErrPersistence, err)
	default:
		// Deep-merge migration: unmarshalling over the default profile only
		// overwrites fields present in the stored document, and map entries
		// merge key-by-key, so new terms keep their default rates.
		profile := domain.DefaultUserProfile()
		if err := json.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("%w: decode profile: %w", apperrors.ErrPersistence, err)
		}
		snapshot.Profile = &profile
		snapshot.HasLaunched = true
	}

	if _, err := r.store.Get(ctx, portsrepo.KeyHasLaunched); err == nil {
		snapshot.HasLaunched = true
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%w: read launch flag: %w", apperrors.ErrPersistence, err)
	}

	return snapshot, nil
}

// SaveTransactions flushes the transaction log document.
func (r *LedgerRepository) SaveTransactions(ctx context.Context, transactions []domain.Transaction) error {
	return r.saveJSON(ctx, portsrepo.KeyTransactions, transactions)
}

// SaveDeposits flushes the deposit collection document.
func (r *LedgerRepository) SaveDeposits(ctx context.Context, deposits []domain.FixedDeposit) error {
	return r.saveJSON(ctx, portsrepo.KeyDeposits, deposits)
}

// SaveProfile flushes the profile document.
func (r *LedgerRepository) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	return r.saveJSON(ctx, portsrepo.KeyUserProfile, profile)
}

// MarkLaunched records that onboarding has completed.
func (r *LedgerRepository) MarkLaunched(ctx context.Context) error {
	return r.setWithRetry(ctx, portsrepo.KeyHasLaunched, []byte("true"))
}

// Clear removes every persisted key, returning the store to first-launch state.
func (r *LedgerRepository) Clear(ctx context.Context) error {
	keys := []string{
		portsrepo.KeyTransactions,
		portsrepo.KeyDeposits,
		portsrepo.KeyUserProfile,
		portsrepo.KeyHasLaunched,
	}
	for _, key := range keys {
		if err := r.store.Delete(ctx, key); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: delete %q: %w", apperrors.ErrPersistence, key, err)
		}
	}
	return nil
}

func (r *LedgerRepository) saveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode %q: %w", apperrors.ErrPersistence, key, err)
	}
	return r.setWithRetry(ctx, key, data)
}

func (r *LedgerRepository) setWithRetry(ctx context.Context, key string, data []byte) error {
	backoff := backoffBase
	var lastErr error

	for attempt := 1; attempt <= saveAttempts; attempt++ {
		lastErr = r.store.Set(ctx, key, data)
		if lastErr == nil {
			return nil
		}

		r.logger.Warn("Store write failed",
			slog.String("key", key),
			slog.Int("attempt", attempt),
			slog.String("error", lastErr.Error()))

		if attempt < saveAttempts {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return fmt.Errorf("%w: write %q: %w", apperrors.ErrPersistence, key, ctx.Err())
			}
			backoff *= 2
		}
	}

	return fmt.Errorf("%w: write %q after %d attempts: %w", apperrors.ErrPersistence, key, saveAttempts, lastErr)
}
