// internal/inventory/freshness.go
package inventory

import "time"

// expiringSoonWindow is the number of remaining days, inclusive, that still
// counts as expiring soon.
const expiringSoonWindow = 3

// toDate strips the time component, anchoring the value at midnight UTC.
func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the exact calendar-day difference between today and
// expiry. Both values are normalized to dates first so the result does not
// depend on the time of day. Negative means past due.
func DaysUntil(expiry, today time.Time) int {
	return int(toDate(expiry).Sub(toDate(today)).Hours() / 24)
}

// Classify maps an expiry date to its freshness status relative to today.
// The three statuses partition the signed day count exhaustively:
// <0 expired, 0..3 expiring soon, >3 good.
func Classify(expiry, today time.Time) (int, Status) {
	days := DaysUntil(expiry, today)
	switch {
	case days < 0:
		return days, StatusExpired
	case days <= expiringSoonWindow:
		return days, StatusExpiringSoon
	default:
		return days, StatusGood
	}
}

// IsExpired reports whether the expiry date lies strictly in the past.
func IsExpired(expiry, today time.Time) bool {
	return DaysUntil(expiry, today) < 0
}

// IsExpiringSoon reports whether 0 to 3 days remain. The range is already
// disjoint from expired, so no extra guard is needed.
func IsExpiringSoon(expiry, today time.Time) bool {
	days := DaysUntil(expiry, today)
	return days >= 0 && days <= expiringSoonWindow
}

// withFreshness returns a copy of f enriched with the derived status fields.
func withFreshness(f *Food, today time.Time) *Food {
	out := *f
	out.DaysUntilExpiry, out.Status = Classify(f.ExpiryDate, today)
	return &out
}

func withFreshnessAll(items []*Food, today time.Time) []*Food {
	out := make([]*Food, len(items))
	for i, f := range items {
		out[i] = withFreshness(f, today)
	}
	return out
}
