// internal/inventory/stats.go
package inventory

import "time"

// weekWindow is the exclusive upper bound, in remaining days, of the
// expiring-this-week metric.
const weekWindow = 7

// Statistics summarizes the active (non-donated) inventory. Recomputed on
// every request, never cached.
type Statistics struct {
	TotalItems            int `json:"total_items"`
	ExpiredCount          int `json:"expired_count"`
	ExpiringSoonCount     int `json:"expiring_soon_count"`
	GoodCount             int `json:"good_count"`
	ExpiringThisWeekCount int `json:"expiring_this_week_count"`
}

// Aggregate reduces the active subset of items into summary counts.
// ExpiredCount + ExpiringSoonCount + GoodCount always equals TotalItems.
// ExpiringThisWeekCount counts items expiring strictly before today+7 that
// are not yet expired; it deliberately overlaps the expiring-soon bucket and
// carries no such identity.
func Aggregate(items []*Food, today time.Time) Statistics {
	var stats Statistics
	for _, f := range items {
		if f.Donated {
			continue
		}
		stats.TotalItems++

		days, status := Classify(f.ExpiryDate, today)
		switch status {
		case StatusExpired:
			stats.ExpiredCount++
		case StatusExpiringSoon:
			stats.ExpiringSoonCount++
		default:
			stats.GoodCount++
		}

		if days >= 0 && days < weekWindow {
			stats.ExpiringThisWeekCount++
		}
	}
	return stats
}
