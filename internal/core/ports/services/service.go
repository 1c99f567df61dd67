package services

import (
	"context"
	"time"

	"github.com/pocketmoney/pocket_money_app/internal/core/domain"
)

// ServiceContainer holds instances of all the application services. It is the
// main entry point for accessing service functionality from the handlers.
type ServiceContainer struct {
	Ledger    LedgerSvcFacade
	Reporting ReportingSvcFacade
}

// Clock supplies the current time. Abstracted so tests can inject synthetic
// time instead of relying on wall-clock sleeps.
type Clock interface {
	Now() time.Time
}

// MaturityNotifier receives an event each time a deposit's return is credited.
// Implementations must not block the ledger; failures are logged, not surfaced.
type MaturityNotifier interface {
	DepositMatured(ctx context.Context, deposit domain.FixedDeposit) error
}
