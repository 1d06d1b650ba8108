package inventory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestAggregateCounts(t *testing.T) {
	items := []*Food{
		testFood("Tomato", -1),
		testFood("Bread", 1),
		testFood("Milk", 2),
		testFood("Yogurt", 3),
		testFood("Chicken", 5),
		testFood("Ice Cream", 30),
		testFood("Old Cheese", -10, donated),
	}

	stats := Aggregate(items, testToday)

	assert.Equal(t, 6, stats.TotalItems)
	assert.Equal(t, 1, stats.ExpiredCount)
	assert.Equal(t, 3, stats.ExpiringSoonCount)
	assert.Equal(t, 2, stats.GoodCount)
	// Bread, Milk, Yogurt and Chicken all expire within the week.
	assert.Equal(t, 4, stats.ExpiringThisWeekCount)
}

func TestAggregateWeekWindowOverlapsSoonBucket(t *testing.T) {
	items := []*Food{testFood("Milk", 2)}

	stats := Aggregate(items, testToday)
	assert.Equal(t, 1, stats.ExpiringSoonCount)
	assert.Equal(t, 1, stats.ExpiringThisWeekCount)
}

func TestAggregateWeekWindowBounds(t *testing.T) {
	items := []*Food{
		testFood("Expired", -1),
		testFood("Edge In", 6),
		testFood("Edge Out", 7),
	}

	stats := Aggregate(items, testToday)
	assert.Equal(t, 1, stats.ExpiringThisWeekCount)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Equal(t, Statistics{}, Aggregate(nil, testToday))
}

// expired + expiringSoon + good must always equal the active total.
func TestAggregateSumIdentityProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(0, 50).Draw(t, "count")

		items := make([]*Food, count)
		for i := range items {
			offset := rapid.IntRange(-100, 100).Draw(t, fmt.Sprintf("offset%d", i))
			items[i] = testFood(fmt.Sprintf("item%d", i), offset)
			if rapid.Bool().Draw(t, fmt.Sprintf("donated%d", i)) {
				donated(items[i])
			}
		}

		stats := Aggregate(items, testToday)
		if got := stats.ExpiredCount + stats.ExpiringSoonCount + stats.GoodCount; got != stats.TotalItems {
			t.Fatalf("buckets sum to %d, total is %d", got, stats.TotalItems)
		}
		if stats.ExpiringThisWeekCount > stats.ExpiringSoonCount+stats.GoodCount {
			t.Fatalf("week count %d exceeds non-expired count", stats.ExpiringThisWeekCount)
		}
	})
}
