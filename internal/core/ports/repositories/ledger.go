package repositories

import (
	"context"

	"github.com/pocketmoney/pocket_money_app/internal/core/domain"
)

// LedgerSnapshot is the full persisted ledger state as read at startup.
type LedgerSnapshot struct {
	Transactions []domain.Transaction
	Deposits     []domain.FixedDeposit
	Profile      *domain.UserProfile // nil until onboarding completes
	HasLaunched  bool
}

// LedgerRepository persists the ledger documents. Each collection is flushed
// independently; Load reassembles all of them, tolerating absent keys.
type LedgerRepository interface {
	Load(ctx context.Context) (*LedgerSnapshot, error)
	SaveTransactions(ctx context.Context, transactions []domain.Transaction) error
	SaveDeposits(ctx context.Context, deposits []domain.FixedDeposit) error
	SaveProfile(ctx context.Context, profile domain.UserProfile) error
	MarkLaunched(ctx context.Context) error
	// Clear removes every persisted key, returning the store to first-launch state.
	Clear(ctx context.Context) error
}
