package dto

import (
	"time"

	"github.com/pocketmoney/pocket_money_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDepositRequest locks an amount away for an elected term.
type CreateDepositRequest struct {
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	TermMonths decimal.Decimal `json:"termMonths" binding:"required"`
}

// DepositResponse mirrors a stored fixed deposit.
type DepositResponse struct {
	ID           string          `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	InterestRate decimal.Decimal `json:"interestRate"`
	TermMonths   decimal.Decimal `json:"termMonths"`
	StartDate    time.Time       `json:"startDate"`
	MaturityDate time.Time       `json:"maturityDate"`
	Status       string          `json:"status"`
	TotalReturn  decimal.Decimal `json:"totalReturn"`
}

// ToDepositResponse maps a domain deposit to its response shape.
func ToDepositResponse(dep domain.FixedDeposit) DepositResponse {
	return DepositResponse{
		ID:           dep.ID,
		Amount:       dep.Amount,
		InterestRate: dep.InterestRate,
		TermMonths:   dep.TermMonths,
		StartDate:    dep.StartDate,
		MaturityDate: dep.MaturityDate,
		Status:       string(dep.Status),
		TotalReturn:  dep.TotalReturn,
	}
}

// ToDepositResponses maps a deposit list.
func ToDepositResponses(deps []domain.FixedDeposit) []DepositResponse {
	out := make([]DepositResponse, len(deps))
	for i, dep := range deps {
		out[i] = ToDepositResponse(dep)
	}
	return out
}

// MaturationCheckResponse reports how many deposits a sweep newly credited.
type MaturationCheckResponse struct {
	Credited int `json:"credited"`
}
