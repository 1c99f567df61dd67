package services

import (
	"time"

	portssvc "github.com/pocketmoney/pocket_money_app/internal/core/ports/services"
)

// systemClock reads the wall clock.
type systemClock struct{}

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock() portssvc.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
