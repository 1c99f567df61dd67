package services

import (
	"github.com/pocketmoney/pocket_money_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// defaultTermRates are the hard-coded per-term fallbacks, used when the
// stored rate table is missing a key (e.g. after a schema migration added a
// new term before the parent configured it).
var defaultTermRates = map[string]decimal.Decimal{
	"0.25": decimal.NewFromFloat(5.0),
	"0.5":  decimal.NewFromFloat(7.0),
	"1":    decimal.NewFromFloat(10.0),
	"3":    decimal.NewFromFloat(15.0),
}

// fallbackAnnualRate applies when no profile exists at all.
var fallbackAnnualRate = decimal.NewFromFloat(5.0)

// RatePolicy resolves the annual interest rate for a requested term length.
// It is a pure lookup and never mutates state.
type RatePolicy struct{}

// RateForTerm resolves a rate in order: exact match in the user's configured
// per-term table, then the hard-coded per-term default, then the user's
// generic default annual rate. Tables may be partially populated; each key
// falls back independently.
func (RatePolicy) RateForTerm(profile *domain.UserProfile, termMonths decimal.Decimal) decimal.Decimal {
	key := domain.TermKey(termMonths)

	if profile != nil {
		if rate, ok := profile.TermInterestRates[key]; ok {
			return rate
		}
	}
	if rate, ok := defaultTermRates[key]; ok {
		return rate
	}
	if profile != nil && !profile.InterestRate.IsZero() {
		return profile.InterestRate
	}
	return fallbackAnnualRate
}
