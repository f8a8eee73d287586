package usecase

import "time"

// SetNow overrides the clock used by an OrderUseCase so external tests can
// pin the placement timestamp.
func SetNow(u *OrderUseCase, now func() time.Time) {
	u.now = now
}
