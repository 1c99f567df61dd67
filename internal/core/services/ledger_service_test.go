package services_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pocketmoney/pocket_money_app/internal/apperrors"
	"github.com/pocketmoney/pocket_money_app/internal/core/domain"
	portsrepo "github.com/pocketmoney/pocket_money_app/internal/core/ports/repositories"
	"github.com/pocketmoney/pocket_money_app/internal/core/services"
	"github.com/pocketmoney/pocket_money_app/internal/repositories/kvstore"
	"github.com/pocketmoney/pocket_money_app/internal/repositories/persist"
)

// fakeClock is a manually advanced clock for exercising maturation.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	clock   *fakeClock
	repo    *persist.LedgerRepository
	service *services.LedgerService
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.clock = newFakeClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	suite.repo = persist.NewLedgerRepository(kvstore.NewMemoryStore(), logger)

	svc, err := services.NewLedgerService(context.Background(), suite.repo, suite.clock, nil)
	suite.Require().NoError(err)
	suite.service = svc
}

func (suite *LedgerServiceTestSuite) addIncome(amount float64) {
	_, err := suite.service.AddTransaction(context.Background(), domain.Transaction{
		Title:    "Pocket money",
		Amount:   decimal.NewFromFloat(amount),
		Type:     domain.Income,
		Category: domain.CategoryPocketMoney,
	})
	suite.Require().NoError(err)
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestNewService_StartsEmpty() {
	suite.True(suite.service.Balance().IsZero())
	suite.True(suite.service.AvailableBalance().IsZero())
	suite.True(suite.service.TotalSavings().IsZero())
	suite.Empty(suite.service.Transactions())
	suite.Empty(suite.service.Deposits())
	suite.True(suite.service.IsFirstLaunch())
	suite.False(suite.service.Degraded())
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_IncomeAndExpense() {
	ctx := context.Background()
	suite.addIncome(100)

	suite.True(suite.service.Balance().Equal(decimal.NewFromInt(100)))

	txn, err := suite.service.AddTransaction(ctx, domain.Transaction{
		Title:    "Comics",
		Amount:   decimal.NewFromInt(30),
		Type:     domain.Expense,
		Category: domain.CategoryEntertainment,
	})
	suite.Require().NoError(err)
	suite.NotEmpty(txn.ID)
	suite.Equal(suite.clock.Now(), txn.Date)

	suite.True(suite.service.Balance().Equal(decimal.NewFromInt(70)))

	// Most recent first
	log := suite.service.Transactions()
	suite.Require().Len(log, 2)
	suite.Equal("Comics", log[0].Title)
	suite.Equal("Pocket money", log[1].Title)
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_RejectsInvalid() {
	ctx := context.Background()

	_, err := suite.service.AddTransaction(ctx, domain.Transaction{
		Title:    "Zero",
		Amount:   decimal.Zero,
		Type:     domain.Income,
		Category: domain.CategoryOther,
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.AddTransaction(ctx, domain.Transaction{
		Title:    "Negative",
		Amount:   decimal.NewFromInt(-5),
		Type:     domain.Income,
		Category: domain.CategoryOther,
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.AddTransaction(ctx, domain.Transaction{
		Title:    "Bad type",
		Amount:   decimal.NewFromInt(5),
		Type:     domain.TransactionType("refund"),
		Category: domain.CategoryOther,
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.AddTransaction(ctx, domain.Transaction{
		Title:    "Bad category",
		Amount:   decimal.NewFromInt(5),
		Type:     domain.Income,
		Category: domain.Category("Toys"),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.Empty(suite.service.Transactions())
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_InsufficientBalance() {
	ctx := context.Background()
	suite.addIncome(20)

	_, err := suite.service.AddTransaction(ctx, domain.Transaction{
		Title:    "Too expensive",
		Amount:   decimal.NewFromInt(50),
		Type:     domain.Expense,
		Category: domain.CategoryEntertainment,
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)

	// Log untouched
	suite.Len(suite.service.Transactions(), 1)
	suite.True(suite.service.Balance().Equal(decimal.NewFromInt(20)))
}

func (suite *LedgerServiceTestSuite) TestCreateDeposit_LocksFundsAndRate() {
	ctx := context.Background()
	suite.addIncome(100)

	deposit, err := suite.service.CreateDeposit(ctx, decimal.NewFromInt(60), decimal.NewFromInt(1))
	suite.Require().NoError(err)
	suite.Require().NotNil(deposit)

	// 1-month default rate is 10%; total return = 60 + 60*10*1/1200 = 60.5
	suite.True(deposit.InterestRate.Equal(decimal.NewFromInt(10)))
	suite.True(deposit.TotalReturn.Equal(decimal.NewFromFloat(60.5)))
	suite.Equal(domain.StatusActive, deposit.Status)
	suite.Equal(suite.clock.Now().AddDate(0, 0, 30), deposit.MaturityDate)

	suite.True(suite.service.Balance().Equal(decimal.NewFromInt(40)))
	suite.True(suite.service.AvailableBalance().Equal(decimal.NewFromInt(40)))
	suite.True(suite.service.TotalSavings().Equal(decimal.NewFromInt(60)))

	// Founding transaction links back to the deposit
	log := suite.service.Transactions()
	suite.Require().Len(log, 2)
	suite.Equal(domain.Deposit, log[0].Type)
	suite.Equal(deposit.ID, log[0].DepositID)
	suite.Equal("Fixed Deposit (1 months)", log[0].Title)
}

func (suite *LedgerServiceTestSuite) TestCreateDeposit_Rejections() {
	ctx := context.Background()
	suite.addIncome(50)

	_, err := suite.service.CreateDeposit(ctx, decimal.NewFromInt(60), decimal.NewFromInt(1))
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)

	_, err = suite.service.CreateDeposit(ctx, decimal.Zero, decimal.NewFromInt(1))
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateDeposit(ctx, decimal.NewFromInt(10), decimal.Zero)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.Empty(suite.service.Deposits())
}

func (suite *LedgerServiceTestSuite) TestMaturation_CreditsExactlyOnce() {
	ctx := context.Background()
	suite.addIncome(100)

	deposit, err := suite.service.CreateDeposit(ctx, decimal.NewFromInt(60), decimal.NewFromInt(1))
	suite.Require().NoError(err)

	// Nothing matures before the maturity date
	credited, err := suite.service.CheckAndCreditMaturedDeposits(ctx)
	suite.Require().NoError(err)
	suite.Zero(credited)

	suite.clock.Advance(31 * 24 * time.Hour)

	credited, err = suite.service.CheckAndCreditMaturedDeposits(ctx)
	suite.Require().NoError(err)
	suite.Equal(1, credited)

	// 40 available + 60.5 credited
	suite.True(suite.service.Balance().Equal(decimal.NewFromFloat(100.5)))
	suite.True(suite.service.TotalSavings().IsZero())

	deposits := suite.service.Deposits()
	suite.Require().Len(deposits, 1)
	suite.Equal(domain.StatusMatured, deposits[0].Status)

	// Repeat sweeps never double-credit
	credited, err = suite.service.CheckAndCreditMaturedDeposits(ctx)
	suite.Require().NoError(err)
	suite.Zero(credited)
	suite.True(suite.service.Balance().Equal(decimal.NewFromFloat(100.5)))

	log := suite.service.Transactions()
	suite.Require().Len(log, 3)
	suite.Equal(domain.DepositMatured, log[0].Type)
	suite.Equal(deposit.ID, log[0].DepositID)
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_DuplicateMaturityCreditIsNoOp() {
	ctx := context.Background()
	suite.addIncome(100)

	deposit, err := suite.service.CreateDeposit(ctx, decimal.NewFromInt(60), decimal.NewFromInt(1))
	suite.Require().NoError(err)

	suite.clock.Advance(31 * 24 * time.Hour)
	_, err = suite.service.CheckAndCreditMaturedDeposits(ctx)
	suite.Require().NoError(err)

	// A redundant manual credit returns the existing transaction untouched
	existing := suite.service.Transactions()[0]
	txn, err := suite.service.AddTransaction(ctx, domain.Transaction{
		Title:     "Deposit Matured!",
		Amount:    deposit.TotalReturn,
		Type:      domain.DepositMatured,
		Category:  domain.CategoryDeposit,
		DepositID: deposit.ID,
	})
	suite.Require().NoError(err)
	suite.Equal(existing.ID, txn.ID)
	suite.Len(suite.service.Transactions(), 3)
}

func (suite *LedgerServiceTestSuite) TestWithdrawDeposit_MaturedChangesStatusOnly() {
	ctx := context.Background()
	suite.addIncome(100)

	deposit, err := suite.service.CreateDeposit(ctx, decimal.NewFromInt(60), decimal.NewFromInt(1))
	suite.Require().NoError(err)

	suite.clock.Advance(31 * 24 * time.Hour)
	_, err = suite.service.CheckAndCreditMaturedDeposits(ctx)
	suite.Require().NoError(err)

	before := suite.service.Balance()
	logLen := len(suite.service.Transactions())

	withdrawn, err := suite.service.WithdrawDeposit(ctx, deposit.ID)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusWithdrawn, withdrawn.Status)

	// Funds were already credited at maturation; no new transaction
	suite.True(suite.service.Balance().Equal(before))
	suite.Len(suite.service.Transactions(), logLen)

	// Withdrawing again is a no-op
	again, err := suite.service.WithdrawDeposit(ctx, deposit.ID)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusWithdrawn, again.Status)
	suite.Len(suite.service.Transactions(), logLen)
}

func (suite *LedgerServiceTestSuite) TestWithdrawDeposit_EarlyReturnsPrincipalOnly() {
	ctx := context.Background()
	suite.addIncome(100)

	deposit, err := suite.service.CreateDeposit(ctx, decimal.NewFromInt(60), decimal.NewFromInt(3))
	suite.Require().NoError(err)

	withdrawn, err := suite.service.WithdrawDeposit(ctx, deposit.ID)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusWithdrawn, withdrawn.Status)

	// Principal back, no interest: 100 - 60 + 60
	suite.True(suite.service.Balance().Equal(decimal.NewFromInt(100)))
	suite.True(suite.service.TotalSavings().IsZero())

	log := suite.service.Transactions()
	suite.Require().Len(log, 3)
	suite.Equal(domain.Income, log[0].Type)
	suite.Equal("Deposit Withdrawn", log[0].Title)
	suite.True(log[0].Amount.Equal(deposit.Amount))

	// Early withdrawal must not block a later maturation credit scan
	suite.clock.Advance(91 * 24 * time.Hour)
	credited, err := suite.service.CheckAndCreditMaturedDeposits(ctx)
	suite.Require().NoError(err)
	suite.Zero(credited)
}

func (suite *LedgerServiceTestSuite) TestWithdrawDeposit_UnknownID() {
	_, err := suite.service.WithdrawDeposit(context.Background(), "no-such-deposit")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestAvailableBalance_ClampsNegative() {
	ctx := context.Background()

	// Seed a corrupt log directly through the repository: expenses exceed income.
	err := suite.repo.SaveTransactions(ctx, []domain.Transaction{
		{ID: "t1", Title: "Bad data", Amount: decimal.NewFromInt(50), Type: domain.Expense, Category: domain.CategoryOther, Date: suite.clock.Now()},
		{ID: "t2", Title: "Income", Amount: decimal.NewFromInt(20), Type: domain.Income, Category: domain.CategoryOther, Date: suite.clock.Now()},
	})
	suite.Require().NoError(err)

	svc, err := services.NewLedgerService(ctx, suite.repo, suite.clock, nil)
	suite.Require().NoError(err)

	suite.True(svc.Balance().Equal(decimal.NewFromInt(-30)))
	suite.True(svc.AvailableBalance().IsZero())
}

func (suite *LedgerServiceTestSuite) TestRestart_CreditsDepositsMaturedWhileDown() {
	ctx := context.Background()
	suite.addIncome(100)

	_, err := suite.service.CreateDeposit(ctx, decimal.NewFromInt(60), decimal.NewFromInt(1))
	suite.Require().NoError(err)

	// Simulate downtime past maturity, then a fresh process over the same store
	suite.clock.Advance(40 * 24 * time.Hour)
	restarted, err := services.NewLedgerService(ctx, suite.repo, suite.clock, nil)
	suite.Require().NoError(err)

	suite.True(restarted.Balance().Equal(decimal.NewFromFloat(100.5)))
	deposits := restarted.Deposits()
	suite.Require().Len(deposits, 1)
	suite.Equal(domain.StatusMatured, deposits[0].Status)

	// The credit survived persistence: yet another restart finds nothing to do
	again, err := services.NewLedgerService(ctx, suite.repo, suite.clock, nil)
	suite.Require().NoError(err)
	suite.True(again.Balance().Equal(decimal.NewFromFloat(100.5)))
	suite.Len(again.Transactions(), 3)
}

func (suite *LedgerServiceTestSuite) TestProfileLifecycle() {
	ctx := context.Background()

	suite.Nil(suite.service.Profile())
	suite.True(suite.service.IsFirstLaunch())
	suite.False(suite.service.VerifyParentalPassword("1234"))

	profile := domain.DefaultUserProfile()
	profile.ParentName = "Alex"
	profile.ChildName = "Sam"
	profile.ParentalPassword = "4321"

	suite.Require().NoError(suite.service.CompleteOnboarding(ctx, profile))
	suite.False(suite.service.IsFirstLaunch())
	suite.True(suite.service.VerifyParentalPassword("4321"))
	suite.False(suite.service.VerifyParentalPassword("1234"))

	got := suite.service.Profile()
	suite.Require().NotNil(got)
	suite.Equal("Sam", got.ChildName)

	// The returned profile is a copy; mutating it must not leak back
	got.TermInterestRates["1"] = decimal.NewFromInt(99)
	suite.True(suite.service.GetInterestRateForTerm(decimal.NewFromInt(1)).Equal(decimal.NewFromInt(10)))

	// Onboarding state survives a restart
	restarted, err := services.NewLedgerService(ctx, suite.repo, suite.clock, nil)
	suite.Require().NoError(err)
	suite.False(restarted.IsFirstLaunch())
	suite.True(restarted.VerifyParentalPassword("4321"))
}

func (suite *LedgerServiceTestSuite) TestUpdateRates() {
	ctx := context.Background()

	// Rate updates need a profile first
	err := suite.service.UpdateTermInterestRates(ctx, domain.TermInterestRates{"1": decimal.NewFromInt(12)})
	suite.ErrorIs(err, apperrors.ErrNotFound)
	err = suite.service.UpdateInterestRate(ctx, decimal.NewFromInt(6))
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.Require().NoError(suite.service.CompleteOnboarding(ctx, domain.DefaultUserProfile()))

	err = suite.service.UpdateTermInterestRates(ctx, domain.TermInterestRates{"1": decimal.NewFromInt(-1)})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.Require().NoError(suite.service.UpdateTermInterestRates(ctx, domain.TermInterestRates{"1": decimal.NewFromInt(12)}))
	suite.True(suite.service.GetInterestRateForTerm(decimal.NewFromInt(1)).Equal(decimal.NewFromInt(12)))

	err = suite.service.UpdateInterestRate(ctx, decimal.NewFromInt(-3))
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Require().NoError(suite.service.UpdateInterestRate(ctx, decimal.NewFromInt(6)))
	suite.True(suite.service.Profile().InterestRate.Equal(decimal.NewFromInt(6)))
}

func (suite *LedgerServiceTestSuite) TestRateCapturedAtCreation() {
	ctx := context.Background()
	suite.addIncome(100)

	deposit, err := suite.service.CreateDeposit(ctx, decimal.NewFromInt(50), decimal.NewFromInt(1))
	suite.Require().NoError(err)
	suite.True(deposit.InterestRate.Equal(decimal.NewFromInt(10)))

	suite.Require().NoError(suite.service.CompleteOnboarding(ctx, domain.DefaultUserProfile()))
	suite.Require().NoError(suite.service.UpdateTermInterestRates(ctx, domain.TermInterestRates{"1": decimal.NewFromInt(20)}))

	// The existing deposit keeps its captured rate and return
	deposits := suite.service.Deposits()
	suite.Require().Len(deposits, 1)
	suite.True(deposits[0].InterestRate.Equal(decimal.NewFromInt(10)))
	suite.True(deposits[0].TotalReturn.Equal(domain.TotalReturn(decimal.NewFromInt(50), decimal.NewFromInt(10), decimal.NewFromInt(1))))

	// New deposits pick up the new table
	suite.True(suite.service.GetInterestRateForTerm(decimal.NewFromInt(1)).Equal(decimal.NewFromInt(20)))
}

func (suite *LedgerServiceTestSuite) TestClearAllData() {
	ctx := context.Background()
	suite.addIncome(100)
	_, err := suite.service.CreateDeposit(ctx, decimal.NewFromInt(30), decimal.NewFromInt(1))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.service.CompleteOnboarding(ctx, domain.DefaultUserProfile()))

	suite.Require().NoError(suite.service.ClearAllData(ctx))

	suite.Empty(suite.service.Transactions())
	suite.Empty(suite.service.Deposits())
	suite.Nil(suite.service.Profile())
	suite.True(suite.service.IsFirstLaunch())

	// The wipe reaches the store too
	restarted, err := services.NewLedgerService(ctx, suite.repo, suite.clock, nil)
	suite.Require().NoError(err)
	suite.Empty(restarted.Transactions())
	suite.True(restarted.IsFirstLaunch())
}

// --- Degraded mode over a failing repository ---

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) Load(ctx context.Context) (*portsrepo.LedgerSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.LedgerSnapshot), args.Error(1)
}

func (m *MockLedgerRepository) SaveTransactions(ctx context.Context, transactions []domain.Transaction) error {
	args := m.Called(ctx, transactions)
	return args.Error(0)
}

func (m *MockLedgerRepository) SaveDeposits(ctx context.Context, deposits []domain.FixedDeposit) error {
	args := m.Called(ctx, deposits)
	return args.Error(0)
}

func (m *MockLedgerRepository) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockLedgerRepository) MarkLaunched(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (suite *LedgerServiceTestSuite) TestDegradedMode_FlushFailureAndRecovery() {
	ctx := context.Background()
	mockRepo := new(MockLedgerRepository)
	mockRepo.On("Load", ctx).Return(&portsrepo.LedgerSnapshot{}, nil).Once()

	svc, err := services.NewLedgerService(ctx, mockRepo, suite.clock, nil)
	suite.Require().NoError(err)

	// A failed flush keeps the mutation but flips the degraded flag
	mockRepo.On("SaveTransactions", ctx, mock.Anything).Return(apperrors.ErrPersistence).Once()
	txn, err := svc.AddTransaction(ctx, domain.Transaction{
		Title:    "Unsaved income",
		Amount:   decimal.NewFromInt(10),
		Type:     domain.Income,
		Category: domain.CategoryOther,
	})
	suite.Require().NoError(err)
	suite.NotNil(txn)
	suite.True(svc.Degraded())
	suite.True(svc.Balance().Equal(decimal.NewFromInt(10)))

	// The next successful flush clears the flag
	mockRepo.On("SaveTransactions", ctx, mock.Anything).Return(nil).Once()
	_, err = svc.AddTransaction(ctx, domain.Transaction{
		Title:    "Saved income",
		Amount:   decimal.NewFromInt(5),
		Type:     domain.Income,
		Category: domain.CategoryOther,
	})
	suite.Require().NoError(err)
	suite.False(svc.Degraded())

	mockRepo.AssertExpectations(suite.T())
}

// --- Maturity notification fan-out ---

type MockMaturityNotifier struct {
	mock.Mock
}

func (m *MockMaturityNotifier) DepositMatured(ctx context.Context, deposit domain.FixedDeposit) error {
	args := m.Called(ctx, deposit)
	return args.Error(0)
}

func (suite *LedgerServiceTestSuite) TestMaturation_NotifiesWhenEnabled() {
	ctx := context.Background()
	notifier := new(MockMaturityNotifier)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := persist.NewLedgerRepository(kvstore.NewMemoryStore(), logger)
	svc, err := services.NewLedgerService(ctx, repo, suite.clock, notifier)
	suite.Require().NoError(err)

	profile := domain.DefaultUserProfile()
	profile.NotificationsEnabled = true
	suite.Require().NoError(svc.CompleteOnboarding(ctx, profile))

	_, err = svc.AddTransaction(ctx, domain.Transaction{
		Title: "Seed", Amount: decimal.NewFromInt(100), Type: domain.Income, Category: domain.CategoryOther,
	})
	suite.Require().NoError(err)
	deposit, err := svc.CreateDeposit(ctx, decimal.NewFromInt(60), decimal.NewFromInt(1))
	suite.Require().NoError(err)

	notifier.On("DepositMatured", mock.Anything, mock.MatchedBy(func(dep domain.FixedDeposit) bool {
		return dep.ID == deposit.ID && dep.Status == domain.StatusMatured
	})).Return(nil).Once()

	suite.clock.Advance(31 * 24 * time.Hour)
	credited, err := svc.CheckAndCreditMaturedDeposits(ctx)
	suite.Require().NoError(err)
	suite.Equal(1, credited)

	notifier.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestMaturation_SkipsNotifierWhenDisabled() {
	ctx := context.Background()
	notifier := new(MockMaturityNotifier)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := persist.NewLedgerRepository(kvstore.NewMemoryStore(), logger)
	svc, err := services.NewLedgerService(ctx, repo, suite.clock, notifier)
	suite.Require().NoError(err)

	profile := domain.DefaultUserProfile()
	profile.NotificationsEnabled = false
	suite.Require().NoError(svc.CompleteOnboarding(ctx, profile))

	_, err = svc.AddTransaction(ctx, domain.Transaction{
		Title: "Seed", Amount: decimal.NewFromInt(100), Type: domain.Income, Category: domain.CategoryOther,
	})
	suite.Require().NoError(err)
	_, err = svc.CreateDeposit(ctx, decimal.NewFromInt(60), decimal.NewFromInt(1))
	suite.Require().NoError(err)

	suite.clock.Advance(31 * 24 * time.Hour)
	credited, err := svc.CheckAndCreditMaturedDeposits(ctx)
	suite.Require().NoError(err)
	suite.Equal(1, credited)

	notifier.AssertNotCalled(suite.T(), "DepositMatured", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
