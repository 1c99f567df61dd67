package services

import (
	"context"
	"sort"
	"time"

	"github.com/pocketmoney/pocket_money_app/internal/core/domain"
	portssvc "github.com/pocketmoney/pocket_money_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// topCategoryCount limits the category summary to the biggest spenders.
const topCategoryCount = 3

// reportingService derives spending summaries from the ledger's transaction
// log. Read-only; it never touches ledger state directly.
type reportingService struct {
	ledger portssvc.LedgerReaderSvc
	clock  portssvc.Clock
}

// NewReportingService creates a ReportingSvcFacade over the given ledger.
func NewReportingService(ledger portssvc.LedgerReaderSvc, clock portssvc.Clock) portssvc.ReportingSvcFacade {
	return &reportingService{ledger: ledger, clock: clock}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TopCategories returns the current month's top expense categories with their
// share of that month's total spend.
func (s *reportingService) TopCategories(ctx context.Context) []domain.CategorySummary {
	now := s.clock.Now()

	totals := make(map[domain.Category]decimal.Decimal)
	for _, txn := range s.ledger.Transactions() {
		if txn.Type != domain.Expense || !sameMonth(txn.Date, now) {
			continue
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}

	summaries := make([]domain.CategorySummary, 0, len(totals))
	totalSpent := decimal.Zero
	for category, amount := range totals {
		summaries = append(summaries, domain.CategorySummary{Name: category, Amount: amount})
		totalSpent = totalSpent.Add(amount)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Amount.GreaterThan(summaries[j].Amount)
	})

	for i := range summaries {
		if totalSpent.IsPositive() {
			summaries[i].Percentage = summaries[i].Amount.Div(totalSpent).Mul(decimal.NewFromInt(100))
		} else {
			summaries[i].Percentage = decimal.Zero
		}
	}

	if len(summaries) > topCategoryCount {
		summaries = summaries[:topCategoryCount]
	}
	return summaries
}

// CurrentMonthSummary returns the per-day expense totals for the current month.
func (s *reportingService) CurrentMonthSummary(ctx context.Context) domain.MonthSummary {
	now := s.clock.Now()
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()

	daily := make([]domain.DailySpendingPoint, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		daily[day-1] = domain.DailySpendingPoint{Day: day, Amount: decimal.Zero}
	}

	totalSpent := decimal.Zero
	for _, txn := range s.ledger.Transactions() {
		if txn.Type != domain.Expense || !sameMonth(txn.Date, now) {
			continue
		}
		day := txn.Date.Day()
		daily[day-1].Amount = daily[day-1].Amount.Add(txn.Amount)
		totalSpent = totalSpent.Add(txn.Amount)
	}

	return domain.MonthSummary{
		TotalSpent:  totalSpent,
		DaysInMonth: daysInMonth,
		DailyData:   daily,
	}
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
