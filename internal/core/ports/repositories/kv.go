package repositories

import "context"

// Storage keys for the independently flushed ledger documents.
const (
	KeyTransactions = "transactions"
	KeyDeposits     = "deposits"
	KeyUserProfile  = "userProfile"
	KeyHasLaunched  = "hasLaunched"
)

// KVStore is the durable key-value capability the ledger persists into.
// Get returns apperrors.ErrNotFound when the key is absent; absence is a
// legitimate first-run state, not a failure.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
