package dto

import "github.com/shopspring/decimal"

// LedgerSummaryResponse is the headline view: raw balance, spendable balance,
// locked savings, and whether the latest state has been flushed durably.
type LedgerSummaryResponse struct {
	Balance          decimal.Decimal `json:"balance"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	TotalSavings     decimal.Decimal `json:"totalSavings"`
	Saved            bool            `json:"saved"`
}

// TermRateResponse is the annual rate a deposit of the given term would lock in.
type TermRateResponse struct {
	TermMonths decimal.Decimal `json:"termMonths"`
	AnnualRate decimal.Decimal `json:"annualRate"`
}

// OnboardingStatusResponse reports whether onboarding has completed.
type OnboardingStatusResponse struct {
	FirstLaunch bool `json:"firstLaunch"`
}
