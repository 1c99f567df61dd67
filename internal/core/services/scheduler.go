package services

import (
	"context"
	"log/slog"
	"time"
)

// maturationChecker is the slice of the ledger the scheduler needs.
type maturationChecker interface {
	CheckAndCreditMaturedDeposits(ctx context.Context) (int, error)
}

// MaturationScheduler sweeps for matured deposits: once immediately on Start,
// then on a fixed interval for as long as the engine is alive. It shares the
// engine's idempotent credit operation with the manual trigger, so overlapping
// invocations can never double-credit. Close must be called on shutdown or the
// ticker goroutine leaks.
type MaturationScheduler struct {
	ledger   maturationChecker
	interval time.Duration
	logger   *slog.Logger

	stop chan struct{}
	done chan struct{}
}

// NewMaturationScheduler creates a scheduler; it does not start sweeping until
// Start is called.
func NewMaturationScheduler(ledger maturationChecker, interval time.Duration, logger *slog.Logger) *MaturationScheduler {
	return &MaturationScheduler{
		ledger:   ledger,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the sweep goroutine.
func (s *MaturationScheduler) Start() {
	go s.run()
}

func (s *MaturationScheduler) run() {
	defer close(s.done)

	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stop:
			return
		}
	}
}

func (s *MaturationScheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	credited, err := s.ledger.CheckAndCreditMaturedDeposits(ctx)
	if err != nil {
		s.logger.Error("Maturation sweep failed", slog.String("error", err.Error()))
		return
	}
	if credited > 0 {
		s.logger.Info("Credited matured deposits", slog.Int("count", credited))
	}
}

// Close stops the periodic sweep and waits for the goroutine to exit.
func (s *MaturationScheduler) Close() {
	close(s.stop)
	<-s.done
}
