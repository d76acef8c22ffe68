// internal/domain/analytics/service_test.go
package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDayUsesLocalMidnight(t *testing.T) {
	berlin := time.FixedZone("CEST", 2*60*60)

	// 01:30 local on the 15th is still the 14th in UTC
	now := time.Date(2025, 6, 15, 1, 30, 0, 0, berlin)
	start := startOfDay(now)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, berlin), start)
	assert.Equal(t, 15, start.Day())
	assert.True(t, start.Before(now))
}

func TestStartOfDayLateEvening(t *testing.T) {
	berlin := time.FixedZone("CEST", 2*60*60)

	now := time.Date(2025, 6, 15, 23, 59, 0, 0, berlin)
	start := startOfDay(now)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, berlin), start)
}
