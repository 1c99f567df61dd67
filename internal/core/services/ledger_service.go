package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/pocketmoney/pocket_money_app/internal/apperrors"
	"github.com/pocketmoney/pocket_money_app/internal/core/domain"
	portsrepo "github.com/pocketmoney/pocket_money_app/internal/core/ports/repositories"
	portssvc "github.com/pocketmoney/pocket_money_app/internal/core/ports/services"
	"github.com/pocketmoney/pocket_money_app/internal/middleware"
	"github.com/shopspring/decimal"
)

var (
	ErrAmountNotPositive = fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	ErrInvalidTerm       = fmt.Errorf("%w: term length must be positive", apperrors.ErrValidation)
	ErrUnknownType       = fmt.Errorf("%w: unknown transaction type", apperrors.ErrValidation)
	ErrUnknownCategory   = fmt.Errorf("%w: unknown category", apperrors.ErrValidation)
	ErrProfileNotSet     = fmt.Errorf("%w: user profile has not been set up", apperrors.ErrNotFound)
	ErrDepositNotFound   = fmt.Errorf("%w: deposit", apperrors.ErrNotFound)
	ErrInsufficientFunds = apperrors.ErrInsufficientBalance
	ErrNegativeRate      = fmt.Errorf("%w: interest rate must not be negative", apperrors.ErrValidation)
)

// LedgerService owns the transaction log and deposit collection. Every
// mutation goes through its methods, each of which holds the single mutex: that
// one choke point is what makes the dedup and idempotence invariants
// enforceable no matter how scheduler ticks and HTTP calls interleave.
type LedgerService struct {
	mu sync.Mutex

	repo     portsrepo.LedgerRepository
	clock    portssvc.Clock
	notifier portssvc.MaturityNotifier // may be nil
	rates    RatePolicy

	transactions []domain.Transaction // most-recent-first
	deposits     []domain.FixedDeposit
	profile      *domain.UserProfile
	firstLaunch  bool

	// degraded is set when a flush ultimately failed: the in-memory state is
	// then ahead of the store. Operations keep working; callers can surface a
	// "not saved" signal.
	degraded bool
}

// NewLedgerService loads the persisted snapshot and runs one maturation sweep
// so deposits that matured while the process was down are credited immediately.
func NewLedgerService(ctx context.Context, repo portsrepo.LedgerRepository, clock portssvc.Clock, notifier portssvc.MaturityNotifier) (*LedgerService, error) {
	snapshot, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger state: %w", err)
	}

	s := &LedgerService{
		repo:         repo,
		clock:        clock,
		notifier:     notifier,
		transactions: snapshot.Transactions,
		deposits:     snapshot.Deposits,
		profile:      snapshot.Profile,
		firstLaunch:  !snapshot.HasLaunched,
	}

	if _, err := s.CheckAndCreditMaturedDeposits(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// Balance recomputes the ledger balance by folding over the whole transaction
// log. No cached counter is trusted as source of truth.
func (s *LedgerService) Balance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balanceLocked()
}

func (s *LedgerService) balanceLocked() decimal.Decimal {
	total := decimal.Zero
	for _, txn := range s.transactions {
		total = total.Add(txn.SignedAmount())
	}
	return total
}

// AvailableBalance is the spendable, non-negative portion of the balance. A
// conceptually negative balance from bad data is clamped for presentation and
// spending checks only; the log itself is not corrected.
func (s *LedgerService) AvailableBalance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.availableBalanceLocked()
}

func (s *LedgerService) availableBalanceLocked() decimal.Decimal {
	balance := s.balanceLocked()
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}

// TotalSavings sums the principal of active deposits. Matured and withdrawn
// deposits are excluded: their principal has already moved back into the
// transaction log.
func (s *LedgerService) TotalSavings() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, dep := range s.deposits {
		if dep.Status == domain.StatusActive {
			total = total.Add(dep.Amount)
		}
	}
	return total
}

// Transactions returns a copy of the log, most recent first.
func (s *LedgerService) Transactions() []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Deposits returns a copy of the deposit collection.
func (s *LedgerService) Deposits() []domain.FixedDeposit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.FixedDeposit, len(s.deposits))
	copy(out, s.deposits)
	return out
}

// Degraded reports whether the most recent flush ultimately failed.
func (s *LedgerService) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// AddTransaction validates and appends a transaction to the log. For
// deposit_matured transactions it is an idempotent insert: if a credit for the
// same deposit already exists the call is a no-op. This is the sole
// enforcement point for the at-most-one-credit-per-deposit invariant, so
// callers (including the scheduler) may call it redundantly without risk.
func (s *LedgerService) AddTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !txn.Amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}
	if !txn.Type.IsValid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownType, txn.Type)
	}
	if !txn.Category.IsValid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownCategory, txn.Category)
	}
	if txn.Type == domain.Expense && txn.Amount.GreaterThan(s.availableBalanceLocked()) {
		return nil, fmt.Errorf("%w: spending %s exceeds available %s",
			ErrInsufficientFunds, txn.Amount, s.availableBalanceLocked())
	}

	if txn.Type == domain.DepositMatured && txn.DepositID != "" && s.hasMaturedCreditLocked(txn.DepositID) {
		existing := s.maturedCreditLocked(txn.DepositID)
		return existing, nil
	}

	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	if txn.Date.IsZero() {
		txn.Date = s.clock.Now()
	}

	s.prependTransactionLocked(txn)
	s.persistTransactionsLocked(ctx)
	return &txn, nil
}

// CreateDeposit locks amount away for the elected term. The interest rate is
// resolved now and captured on the deposit; later rate-table changes do not
// affect it. The deposit and its founding transaction are applied atomically
// under the engine mutex.
func (s *LedgerService) CreateDeposit(ctx context.Context, amount, termMonths decimal.Decimal) (*domain.FixedDeposit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}
	if !termMonths.IsPositive() {
		return nil, ErrInvalidTerm
	}
	if amount.GreaterThan(s.availableBalanceLocked()) {
		return nil, fmt.Errorf("%w: deposit of %s exceeds available %s",
			ErrInsufficientFunds, amount, s.availableBalanceLocked())
	}

	rate := s.rates.RateForTerm(s.profile, termMonths)
	now := s.clock.Now()

	deposit := domain.FixedDeposit{
		ID:           uuid.NewString(),
		Amount:       amount,
		InterestRate: rate,
		TermMonths:   termMonths,
		StartDate:    now,
		MaturityDate: now.AddDate(0, 0, domain.TermDays(termMonths)),
		Status:       domain.StatusActive,
		TotalReturn:  domain.TotalReturn(amount, rate, termMonths),
	}
	s.deposits = append(s.deposits, deposit)

	s.prependTransactionLocked(domain.Transaction{
		ID:        uuid.NewString(),
		Title:     fmt.Sprintf("Fixed Deposit (%s months)", termMonths),
		Amount:    amount,
		Type:      domain.Deposit,
		Category:  domain.CategoryDeposit,
		Date:      now,
		DepositID: deposit.ID,
	})

	s.persistDepositsLocked(ctx)
	s.persistTransactionsLocked(ctx)
	return &deposit, nil
}

// WithdrawDeposit realizes a deposit's funds. A matured deposit only changes
// status: its principal plus interest was already credited by the maturation
// path. An active deposit is returned early at principal only, with no
// interest. Withdrawing an already-withdrawn deposit is a no-op.
func (s *LedgerService) WithdrawDeposit(ctx context.Context, depositID string) (*domain.FixedDeposit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.deposits {
		if s.deposits[i].ID == depositID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w %s", ErrDepositNotFound, depositID)
	}

	dep := &s.deposits[idx]
	switch dep.Status {
	case domain.StatusWithdrawn:
		out := *dep
		return &out, nil

	case domain.StatusMatured:
		dep.Status = domain.StatusWithdrawn
		s.persistDepositsLocked(ctx)
		out := *dep
		return &out, nil

	default: // active: early withdrawal, principal only
		dep.Status = domain.StatusWithdrawn
		s.prependTransactionLocked(domain.Transaction{
			ID:       uuid.NewString(),
			Title:    "Deposit Withdrawn",
			Amount:   dep.Amount,
			Type:     domain.Income,
			Category: domain.CategoryDeposit,
			Date:     s.clock.Now(),
		})
		s.persistDepositsLocked(ctx)
		s.persistTransactionsLocked(ctx)
		out := *dep
		return &out, nil
	}
}

// CheckAndCreditMaturedDeposits finds every active deposit whose maturity has
// passed, marks it matured and credits its total return, exactly once each.
// The periodic scheduler, the startup sweep and the manual trigger all funnel
// through here, and repeats are safe: the credit is deduplicated by scanning
// the log for an existing (deposit_matured, depositId) transaction.
func (s *LedgerService) CheckAndCreditMaturedDeposits(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	credited := 0
	var notify []domain.FixedDeposit

	for i := range s.deposits {
		dep := &s.deposits[i]
		if dep.Status != domain.StatusActive || now.Before(dep.MaturityDate) {
			continue
		}

		dep.Status = domain.StatusMatured
		if s.hasMaturedCreditLocked(dep.ID) {
			continue
		}

		s.prependTransactionLocked(domain.Transaction{
			ID:        uuid.NewString(),
			Title:     "Deposit Matured!",
			Amount:    dep.TotalReturn,
			Type:      domain.DepositMatured,
			Category:  domain.CategoryDeposit,
			Date:      now,
			DepositID: dep.ID,
		})
		credited++
		notify = append(notify, *dep)
	}

	if credited > 0 {
		s.persistDepositsLocked(ctx)
		s.persistTransactionsLocked(ctx)
		s.notifyMaturedLocked(ctx, notify)
	}
	return credited, nil
}

// GetInterestRateForTerm resolves the annual rate a new deposit of the given
// term would lock in right now.
func (s *LedgerService) GetInterestRateForTerm(termMonths decimal.Decimal) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rates.RateForTerm(s.profile, termMonths)
}

// Profile returns a copy of the user profile, or nil before onboarding.
func (s *LedgerService) Profile() *domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	out := *s.profile
	out.TermInterestRates = make(domain.TermInterestRates, len(s.profile.TermInterestRates))
	for k, v := range s.profile.TermInterestRates {
		out.TermInterestRates[k] = v
	}
	return &out
}

// IsFirstLaunch reports whether onboarding has not yet completed.
func (s *LedgerService) IsFirstLaunch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firstLaunch
}

// CompleteOnboarding stores the initial profile and marks the first launch done.
func (s *LedgerService) CompleteOnboarding(ctx context.Context, profile domain.UserProfile) error {
	return s.UpdateUserProfile(ctx, profile)
}

// UpdateUserProfile replaces the parent-configured profile.
func (s *LedgerService) UpdateUserProfile(ctx context.Context, profile domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile.InterestRate.IsNegative() {
		return ErrNegativeRate
	}
	for _, rate := range profile.TermInterestRates {
		if rate.IsNegative() {
			return ErrNegativeRate
		}
	}

	s.profile = &profile
	s.firstLaunch = false
	s.persistProfileLocked(ctx)
	return nil
}

// UpdateTermInterestRates replaces the per-term rate table. Existing deposits
// keep the rate captured at their creation.
func (s *LedgerService) UpdateTermInterestRates(ctx context.Context, rates domain.TermInterestRates) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return ErrProfileNotSet
	}
	for _, rate := range rates {
		if rate.IsNegative() {
			return ErrNegativeRate
		}
	}

	s.profile.TermInterestRates = rates
	s.persistProfileLocked(ctx)
	return nil
}

// UpdateInterestRate replaces the generic default annual rate.
func (s *LedgerService) UpdateInterestRate(ctx context.Context, rate decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return ErrProfileNotSet
	}
	if rate.IsNegative() {
		return ErrNegativeRate
	}

	s.profile.InterestRate = rate
	s.persistProfileLocked(ctx)
	return nil
}

// VerifyParentalPassword compares the given password against the stored shared
// secret. Returns false when no profile exists yet.
func (s *LedgerService) VerifyParentalPassword(password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile != nil && s.profile.ParentalPassword == password
}

// ClearAllData wipes transactions, deposits and profile, in memory and in the
// store, returning the account to its first-launch state.
func (s *LedgerService) ClearAllData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = nil
	s.deposits = nil
	s.profile = nil
	s.firstLaunch = true

	if err := s.repo.Clear(ctx); err != nil {
		logger := middleware.GetLoggerFromCtx(ctx)
		logger.Error("Failed to clear persisted ledger state", slog.String("error", err.Error()))
		s.degraded = true
		return nil
	}
	s.degraded = false
	return nil
}

// --- internals (callers hold s.mu) ---

func (s *LedgerService) prependTransactionLocked(txn domain.Transaction) {
	s.transactions = append([]domain.Transaction{txn}, s.transactions...)
}

func (s *LedgerService) hasMaturedCreditLocked(depositID string) bool {
	return s.maturedCreditLocked(depositID) != nil
}

// maturedCreditLocked is a linear scan over the log; cheap at this scale and
// the whole enforcement of the one-credit-per-deposit invariant.
func (s *LedgerService) maturedCreditLocked(depositID string) *domain.Transaction {
	for i := range s.transactions {
		if s.transactions[i].Type == domain.DepositMatured && s.transactions[i].DepositID == depositID {
			return &s.transactions[i]
		}
	}
	return nil
}

// persist*Locked flush one document each. A final failure is logged and flips
// the degraded flag, but never fails the mutation: the durability trade-off is
// that a crash before a successful flush loses the most recent write.
func (s *LedgerService) persistTransactionsLocked(ctx context.Context) {
	s.noteFlush(ctx, "transactions", s.repo.SaveTransactions(ctx, s.transactions))
}

func (s *LedgerService) persistDepositsLocked(ctx context.Context) {
	s.noteFlush(ctx, "deposits", s.repo.SaveDeposits(ctx, s.deposits))
}

func (s *LedgerService) persistProfileLocked(ctx context.Context) {
	if s.profile == nil {
		return
	}
	err := s.repo.SaveProfile(ctx, *s.profile)
	if err == nil {
		err = s.repo.MarkLaunched(ctx)
	}
	s.noteFlush(ctx, "userProfile", err)
}

func (s *LedgerService) noteFlush(ctx context.Context, document string, err error) {
	if err != nil {
		logger := middleware.GetLoggerFromCtx(ctx)
		logger.Error("Failed to flush ledger document",
			slog.String("document", document), slog.String("error", err.Error()))
		s.degraded = true
		return
	}
	s.degraded = false
}

func (s *LedgerService) notifyMaturedLocked(ctx context.Context, deposits []domain.FixedDeposit) {
	if s.notifier == nil || s.profile == nil || !s.profile.NotificationsEnabled {
		return
	}
	logger := middleware.GetLoggerFromCtx(ctx)
	for _, dep := range deposits {
		if err := s.notifier.DepositMatured(ctx, dep); err != nil {
			logger.Warn("Failed to publish maturity notification",
				slog.String("deposit_id", dep.ID), slog.String("error", err.Error()))
		}
	}
}
