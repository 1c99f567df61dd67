package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pocketmoney/pocket_money_app/internal/core/domain"
	"github.com/pocketmoney/pocket_money_app/internal/core/services"
)

func TestRateForTerm_NoProfileUsesDefaults(t *testing.T) {
	var policy services.RatePolicy

	assert.True(t, policy.RateForTerm(nil, decimal.NewFromFloat(0.25)).Equal(decimal.NewFromFloat(5.0)))
	assert.True(t, policy.RateForTerm(nil, decimal.NewFromFloat(0.5)).Equal(decimal.NewFromFloat(7.0)))
	assert.True(t, policy.RateForTerm(nil, decimal.NewFromInt(1)).Equal(decimal.NewFromFloat(10.0)))
	assert.True(t, policy.RateForTerm(nil, decimal.NewFromInt(3)).Equal(decimal.NewFromFloat(15.0)))

	// Unsupported term with no profile falls through to the global fallback
	assert.True(t, policy.RateForTerm(nil, decimal.NewFromInt(6)).Equal(decimal.NewFromFloat(5.0)))
}

func TestRateForTerm_UserTableWins(t *testing.T) {
	var policy services.RatePolicy
	profile := domain.DefaultUserProfile()
	profile.TermInterestRates = domain.TermInterestRates{
		"1": decimal.NewFromInt(12),
	}

	assert.True(t, policy.RateForTerm(&profile, decimal.NewFromInt(1)).Equal(decimal.NewFromInt(12)))

	// Keys absent from the user table fall back per-key to the hard-coded defaults
	assert.True(t, policy.RateForTerm(&profile, decimal.NewFromInt(3)).Equal(decimal.NewFromInt(15)))
}

func TestRateForTerm_GenericRateForUnknownTerms(t *testing.T) {
	var policy services.RatePolicy
	profile := domain.DefaultUserProfile()
	profile.InterestRate = decimal.NewFromInt(8)

	// 6 months is in neither table, so the profile's generic rate applies
	assert.True(t, policy.RateForTerm(&profile, decimal.NewFromInt(6)).Equal(decimal.NewFromInt(8)))

	// With a zero generic rate the global fallback applies
	profile.InterestRate = decimal.Zero
	assert.True(t, policy.RateForTerm(&profile, decimal.NewFromInt(6)).Equal(decimal.NewFromFloat(5.0)))
}

func TestRateForTerm_FractionalKeysCanonical(t *testing.T) {
	var policy services.RatePolicy
	profile := domain.DefaultUserProfile()
	profile.TermInterestRates = domain.TermInterestRates{
		"0.25": decimal.NewFromInt(4),
	}

	// 0.25 expressed with trailing precision still hits the canonical key
	quarter := decimal.NewFromFloat(0.25)
	assert.True(t, policy.RateForTerm(&profile, quarter).Equal(decimal.NewFromInt(4)))
}
