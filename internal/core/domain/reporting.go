package domain

import "github.com/shopspring/decimal"

// CategorySummary aggregates one category's share of the current month's spend.
type CategorySummary struct {
	Name       Category        `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// DailySpendingPoint is one day's expense total within a month.
type DailySpendingPoint struct {
	Day    int             `json:"day"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthSummary is the expense breakdown of a calendar month.
type MonthSummary struct {
	TotalSpent  decimal.Decimal      `json:"totalSpent"`
	DaysInMonth int                  `json:"daysInMonth"`
	DailyData   []DailySpendingPoint `json:"dailyData"`
}
