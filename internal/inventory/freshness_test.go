package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

var testToday = time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		daysOffset int
		wantStatus Status
	}{
		{"long expired", -30, StatusExpired},
		{"expired yesterday", -1, StatusExpired},
		{"expires today", 0, StatusExpiringSoon},
		{"one day left", 1, StatusExpiringSoon},
		{"window upper bound", 3, StatusExpiringSoon},
		{"just past the window", 4, StatusGood},
		{"plenty of time", 30, StatusGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expiry := testToday.AddDate(0, 0, tt.daysOffset)
			days, status := Classify(expiry, testToday)
			assert.Equal(t, tt.daysOffset, days)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	lateToday := time.Date(2025, time.March, 15, 23, 45, 0, 0, time.UTC)
	earlyExpiry := time.Date(2025, time.March, 17, 0, 30, 0, 0, time.UTC)

	assert.Equal(t, 2, DaysUntil(earlyExpiry, lateToday))
}

func TestIsExpiringSoonNotGatedOnExpired(t *testing.T) {
	assert.False(t, IsExpiringSoon(testToday.AddDate(0, 0, -1), testToday))
	assert.True(t, IsExpiringSoon(testToday, testToday))
	assert.True(t, IsExpiringSoon(testToday.AddDate(0, 0, 3), testToday))
	assert.False(t, IsExpiringSoon(testToday.AddDate(0, 0, 4), testToday))
}

// The three statuses must partition the signed day count exhaustively and
// disjointly for any expiry date.
func TestStatusPartitionProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		offset := rapid.IntRange(-5000, 5000).Draw(t, "offset")
		expiry := testToday.AddDate(0, 0, offset)

		days, status := Classify(expiry, testToday)
		if days != offset {
			t.Fatalf("expected day count %d, got %d", offset, days)
		}

		switch {
		case days < 0:
			if status != StatusExpired {
				t.Fatalf("days=%d classified as %s", days, status)
			}
		case days <= 3:
			if status != StatusExpiringSoon {
				t.Fatalf("days=%d classified as %s", days, status)
			}
		default:
			if status != StatusGood {
				t.Fatalf("days=%d classified as %s", days, status)
			}
		}

		if IsExpired(expiry, testToday) && IsExpiringSoon(expiry, testToday) {
			t.Fatalf("days=%d reported both expired and expiring soon", days)
		}
	})
}
