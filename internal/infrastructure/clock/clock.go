package clock

import (
	"time"

	"cityfuture/internal/usecase/interfaces"
)

// SystemClock reports the current calendar day. Everything date-related in the
// scheduling engine compares UTC midnights, so Today truncates to that.
type SystemClock struct{}

var _ interfaces.Clock = SystemClock{}

func NewSystemClock() SystemClock {
	return SystemClock{}
}

func (SystemClock) Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
