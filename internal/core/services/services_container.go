package services

import (
	"context"

	portsrepo "github.com/pocketmoney/pocket_money_app/internal/core/ports/repositories"
	portssvc "github.com/pocketmoney/pocket_money_app/internal/core/ports/services"
)

// NewServiceContainer wires the ledger engine and the services that read from
// it. The notifier may be nil when notifications are not configured.
func NewServiceContainer(ctx context.Context, repo portsrepo.LedgerRepository, clock portssvc.Clock, notifier portssvc.MaturityNotifier) (*portssvc.ServiceContainer, error) {
	ledger, err := NewLedgerService(ctx, repo, clock, notifier)
	if err != nil {
		return nil, err
	}

	return &portssvc.ServiceContainer{
		Ledger:    ledger,
		Reporting: NewReportingService(ledger, clock),
	}, nil
}
