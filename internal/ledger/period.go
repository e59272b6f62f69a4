package ledger

import "time"

// PeriodFunc maps an instant to the key of the withdrawal period it
// belongs to. When the key changes between two withdrawals the
// allowance counter starts over.
type PeriodFunc func(t time.Time) string

// DailyPeriod keys periods by UTC calendar day, so the withdrawal
// allowance resets at midnight UTC.
func DailyPeriod(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
