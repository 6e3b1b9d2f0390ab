package service

import "time"

// Clock supplies the current time to every lockout decision and ledger
// write. A single shared clock keeps record, countFailures, and isBlocked
// consistent with each other; tests substitute a fixed implementation.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystemClock returns a Clock backed by the wall clock.
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
