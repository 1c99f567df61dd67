package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositStatus tracks a deposit through its lifecycle:
// active -> matured -> withdrawn, or active -> withdrawn (early withdrawal).
// withdrawn is terminal.
type DepositStatus string

const (
	StatusActive    DepositStatus = "active"
	StatusMatured   DepositStatus = "matured"
	StatusWithdrawn DepositStatus = "withdrawn"
)

// FixedDeposit is a principal amount locked for an elected term, earning a
// fixed annual rate resolved at creation time. InterestRate and TotalReturn
// are captured once and never recomputed, even if the rate table changes.
type FixedDeposit struct {
	ID           string          `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	InterestRate decimal.Decimal `json:"interestRate"` // Annual percentage
	TermMonths   decimal.Decimal `json:"termMonths"`   // Fractional values are sub-month terms
	StartDate    time.Time       `json:"startDate"`
	MaturityDate time.Time       `json:"maturityDate"`
	Status       DepositStatus   `json:"status"`
	TotalReturn  decimal.Decimal `json:"totalReturn"` // Principal plus interest, fixed at creation
}

// TermKey canonicalizes a term length for use as a rate-table key.
func TermKey(termMonths decimal.Decimal) string {
	return termMonths.String()
}

// termDayCounts fixes the exact day count for each supported term. Short terms
// use calendar-true values rather than a 30-days-per-month approximation, which
// would drift badly for one- and two-week terms.
var termDayCounts = map[string]int{
	"0.25": 7,  // 1 week
	"0.5":  14, // 2 weeks
	"1":    30, // 1 month
	"3":    90, // 3 months
}

// daysPerMonth approximates a mean month for terms outside the supported set.
var daysPerMonth = decimal.NewFromFloat(30.44)

// SupportedTerms lists the elected term lengths, in ascending order.
func SupportedTerms() []decimal.Decimal {
	return []decimal.Decimal{
		decimal.NewFromFloat(0.25),
		decimal.NewFromFloat(0.5),
		decimal.NewFromInt(1),
		decimal.NewFromInt(3),
	}
}

// TermDays returns the number of days a term of the given length runs for.
func TermDays(termMonths decimal.Decimal) int {
	if days, ok := termDayCounts[TermKey(termMonths)]; ok {
		return days
	}
	return int(termMonths.Mul(daysPerMonth).Round(0).IntPart())
}

// TotalReturn computes principal plus simple (non-compounding) interest
// prorated linearly by the elected term: amount + amount*rate*term/(12*100).
func TotalReturn(amount, annualRate, termMonths decimal.Decimal) decimal.Decimal {
	interest := amount.Mul(annualRate).Mul(termMonths).Div(decimal.NewFromInt(1200))
	return amount.Add(interest)
}
