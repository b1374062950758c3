package usage

import "errors"

// ErrQuotaExhausted is returned when a user has no recommendation requests
// remaining for the current day.
var ErrQuotaExhausted = errors.New("daily request quota exhausted")

// DefaultDailyQuota is the number of recommendation requests granted per day.
const DefaultDailyQuota = 20
