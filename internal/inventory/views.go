// internal/inventory/views.go
package inventory

import (
	"sort"
	"strings"
	"time"
)

// The view functions are pure projections over a snapshot supplied by the
// repository. They never mutate the input and are total on empty collections.

func filterActive(items []*Food, keep func(*Food) bool) []*Food {
	out := make([]*Food, 0, len(items))
	for _, f := range items {
		if f.Donated {
			continue
		}
		if keep == nil || keep(f) {
			out = append(out, f)
		}
	}
	return out
}

// ListActive returns items not marked donated, preserving storage order.
func ListActive(items []*Food) []*Food {
	return filterActive(items, nil)
}

// ListExpired returns active expired items, most overdue first.
func ListExpired(items []*Food, today time.Time) []*Food {
	out := filterActive(items, func(f *Food) bool {
		return IsExpired(f.ExpiryDate, today)
	})
	sort.SliceStable(out, func(i, j int) bool {
		return DaysUntil(out[i].ExpiryDate, today) < DaysUntil(out[j].ExpiryDate, today)
	})
	return out
}

// ListExpiringSoon returns active items with 0 to 3 days remaining,
// soonest to expire first.
func ListExpiringSoon(items []*Food, today time.Time) []*Food {
	out := filterActive(items, func(f *Food) bool {
		return IsExpiringSoon(f.ExpiryDate, today)
	})
	sort.SliceStable(out, func(i, j int) bool {
		return DaysUntil(out[i].ExpiryDate, today) < DaysUntil(out[j].ExpiryDate, today)
	})
	return out
}

// ListGood returns active items with more than 3 days remaining,
// soonest to expire first.
func ListGood(items []*Food, today time.Time) []*Food {
	out := filterActive(items, func(f *Food) bool {
		_, status := Classify(f.ExpiryDate, today)
		return status == StatusGood
	})
	sort.SliceStable(out, func(i, j int) bool {
		return DaysUntil(out[i].ExpiryDate, today) < DaysUntil(out[j].ExpiryDate, today)
	})
	return out
}

// ListDonated returns items marked donated, in storage order.
func ListDonated(items []*Food) []*Food {
	out := make([]*Food, 0, len(items))
	for _, f := range items {
		if f.Donated {
			out = append(out, f)
		}
	}
	return out
}

// SearchByName returns active items whose name contains the query,
// case-insensitively.
func SearchByName(items []*Food, query string) []*Food {
	q := strings.ToLower(query)
	return filterActive(items, func(f *Food) bool {
		return strings.Contains(strings.ToLower(f.Name), q)
	})
}

// FilterByCategory returns active items whose category equals the given
// label. Equality is case-sensitive, unlike name search; the asymmetry is
// carried over from the reference behavior on purpose.
func FilterByCategory(items []*Food, category string) []*Food {
	return filterActive(items, func(f *Food) bool {
		return f.Category == category
	})
}
