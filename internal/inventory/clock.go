// internal/inventory/clock.go
package inventory

import "time"

// Clock supplies "today" so freshness classification is deterministic in tests.
type Clock interface {
	Today() time.Time
}

type systemClock struct{}

func (systemClock) Today() time.Time {
	return time.Now().UTC()
}

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Today() time.Time {
	return c.t
}

// FixedClock returns a Clock pinned to t.
func FixedClock(t time.Time) Clock {
	return fixedClock{t: t}
}
