package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketmoney/pocket_money_app/internal/core/domain"
	"github.com/pocketmoney/pocket_money_app/internal/core/services"
)

// stubLedgerReader feeds the reporting service a fixed transaction log.
type stubLedgerReader struct {
	transactions []domain.Transaction
}

func (s *stubLedgerReader) Balance() decimal.Decimal           { return decimal.Zero }
func (s *stubLedgerReader) AvailableBalance() decimal.Decimal  { return decimal.Zero }
func (s *stubLedgerReader) TotalSavings() decimal.Decimal      { return decimal.Zero }
func (s *stubLedgerReader) Transactions() []domain.Transaction { return s.transactions }
func (s *stubLedgerReader) Deposits() []domain.FixedDeposit    { return nil }
func (s *stubLedgerReader) Degraded() bool                     { return false }

func expenseOn(day int, category domain.Category, amount int64) domain.Transaction {
	return domain.Transaction{
		ID:       "txn",
		Title:    string(category),
		Amount:   decimal.NewFromInt(amount),
		Type:     domain.Expense,
		Category: category,
		Date:     time.Date(2024, 4, day, 10, 0, 0, 0, time.UTC),
	}
}

func TestTopCategories(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 4, 20, 12, 0, 0, 0, time.UTC))
	ledger := &stubLedgerReader{transactions: []domain.Transaction{
		expenseOn(2, domain.CategoryFood, 40),
		expenseOn(5, domain.CategoryFood, 10),
		expenseOn(7, domain.CategoryTransport, 30),
		expenseOn(9, domain.CategoryEntertainment, 15),
		expenseOn(11, domain.CategoryEducation, 5),
		// Income and out-of-month expenses must not count
		{ID: "i", Amount: decimal.NewFromInt(500), Type: domain.Income, Category: domain.CategoryPocketMoney,
			Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "old", Amount: decimal.NewFromInt(99), Type: domain.Expense, Category: domain.CategoryFood,
			Date: time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC)},
	}}

	svc := services.NewReportingService(ledger, clock)
	summaries := svc.TopCategories(context.Background())

	require.Len(t, summaries, 3)
	assert.Equal(t, domain.CategoryFood, summaries[0].Name)
	assert.True(t, summaries[0].Amount.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, domain.CategoryTransport, summaries[1].Name)
	assert.Equal(t, domain.CategoryEntertainment, summaries[2].Name)

	// Total month spend is 100, so percentages are exact
	assert.True(t, summaries[0].Percentage.Equal(decimal.NewFromInt(50)))
	assert.True(t, summaries[1].Percentage.Equal(decimal.NewFromInt(30)))
	assert.True(t, summaries[2].Percentage.Equal(decimal.NewFromInt(15)))
}

func TestTopCategories_EmptyMonth(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 4, 20, 12, 0, 0, 0, time.UTC))
	svc := services.NewReportingService(&stubLedgerReader{}, clock)

	assert.Empty(t, svc.TopCategories(context.Background()))
}

func TestCurrentMonthSummary(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 4, 20, 12, 0, 0, 0, time.UTC))
	ledger := &stubLedgerReader{transactions: []domain.Transaction{
		expenseOn(2, domain.CategoryFood, 40),
		expenseOn(2, domain.CategoryTransport, 10),
		expenseOn(15, domain.CategoryEntertainment, 25),
	}}

	svc := services.NewReportingService(ledger, clock)
	summary := svc.CurrentMonthSummary(context.Background())

	assert.Equal(t, 30, summary.DaysInMonth)
	assert.True(t, summary.TotalSpent.Equal(decimal.NewFromInt(75)))
	require.Len(t, summary.DailyData, 30)

	assert.Equal(t, 2, summary.DailyData[1].Day)
	assert.True(t, summary.DailyData[1].Amount.Equal(decimal.NewFromInt(50)))
	assert.True(t, summary.DailyData[14].Amount.Equal(decimal.NewFromInt(25)))
	assert.True(t, summary.DailyData[0].Amount.IsZero())
}

func TestCurrentMonthSummary_LeapFebruary(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC))
	svc := services.NewReportingService(&stubLedgerReader{}, clock)

	summary := svc.CurrentMonthSummary(context.Background())
	assert.Equal(t, 29, summary.DaysInMonth)
	assert.Len(t, summary.DailyData, 29)
	assert.True(t, summary.TotalSpent.IsZero())
}
