package dto

import (
	"github.com/pocketmoney/pocket_money_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategorySummaryResponse is one category's share of the month's spend.
type CategorySummaryResponse struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ToCategorySummaryResponses maps the category summaries.
func ToCategorySummaryResponses(summaries []domain.CategorySummary) []CategorySummaryResponse {
	out := make([]CategorySummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = CategorySummaryResponse{
			Name:       string(s.Name),
			Amount:     s.Amount,
			Percentage: s.Percentage,
		}
	}
	return out
}

// DailySpendingResponse is one day's expense total.
type DailySpendingResponse struct {
	Day    int             `json:"day"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthSummaryResponse is the current month's expense breakdown.
type MonthSummaryResponse struct {
	TotalSpent  decimal.Decimal         `json:"totalSpent"`
	DaysInMonth int                     `json:"daysInMonth"`
	DailyData   []DailySpendingResponse `json:"dailyData"`
}

// ToMonthSummaryResponse maps a domain month summary.
func ToMonthSummaryResponse(summary domain.MonthSummary) MonthSummaryResponse {
	daily := make([]DailySpendingResponse, len(summary.DailyData))
	for i, point := range summary.DailyData {
		daily[i] = DailySpendingResponse{Day: point.Day, Amount: point.Amount}
	}
	return MonthSummaryResponse{
		TotalSpent:  summary.TotalSpent,
		DaysInMonth: summary.DaysInMonth,
		DailyData:   daily,
	}
}
