package services

import (
	"context"

	"github.com/pocketmoney/pocket_money_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade is the full surface the ledger engine exposes to callers.
// The engine exclusively owns the transaction log and deposit collection; all
// mutation funnels through these operations.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
	DepositSvc
	ProfileSvc
}

// LedgerReaderSvc covers the read-only balance and listing operations.
type LedgerReaderSvc interface {
	Balance() decimal.Decimal
	AvailableBalance() decimal.Decimal
	TotalSavings() decimal.Decimal
	Transactions() []domain.Transaction
	Deposits() []domain.FixedDeposit
	// Degraded reports whether the most recent flush ultimately failed and the
	// in-memory state is ahead of the durable store.
	Degraded() bool
}

// LedgerWriterSvc covers transaction-log mutation.
type LedgerWriterSvc interface {
	AddTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
	ClearAllData(ctx context.Context) error
}

// DepositSvc covers the fixed-term deposit operations.
type DepositSvc interface {
	CreateDeposit(ctx context.Context, amount, termMonths decimal.Decimal) (*domain.FixedDeposit, error)
	WithdrawDeposit(ctx context.Context, depositID string) (*domain.FixedDeposit, error)
	// CheckAndCreditMaturedDeposits credits every active deposit whose maturity
	// has passed, exactly once each, and returns the count newly credited.
	CheckAndCreditMaturedDeposits(ctx context.Context) (int, error)
	GetInterestRateForTerm(termMonths decimal.Decimal) decimal.Decimal
}

// ProfileSvc covers the parent-configured profile and onboarding state.
type ProfileSvc interface {
	Profile() *domain.UserProfile
	IsFirstLaunch() bool
	CompleteOnboarding(ctx context.Context, profile domain.UserProfile) error
	UpdateUserProfile(ctx context.Context, profile domain.UserProfile) error
	UpdateTermInterestRates(ctx context.Context, rates domain.TermInterestRates) error
	UpdateInterestRate(ctx context.Context, rate decimal.Decimal) error
	VerifyParentalPassword(password string) bool
}

// ReportingSvcFacade produces the spending summaries shown on the summary screen.
type ReportingSvcFacade interface {
	TopCategories(ctx context.Context) []domain.CategorySummary
	CurrentMonthSummary(ctx context.Context) domain.MonthSummary
}
