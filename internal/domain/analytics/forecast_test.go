//go:build unit

package analytics_test

import (
	"math"
	"testing"

	"wedding-analytics/internal/domain/analytics"

	"github.com/stretchr/testify/assert"
)

func TestForecastConfidence(t *testing.T) {
	testCases := []struct {
		growth   float64
		expected float64
	}{
		{growth: 0, expected: 95},
		{growth: 5, expected: 95},
		{growth: -5, expected: 95},
		{growth: 10, expected: 90},
		{growth: -25.5, expected: 74.5},
		{growth: 40, expected: 60},
		{growth: 300, expected: 60},
		{growth: -100, expected: 60},
	}

	for _, tc := range testCases {
		actual := analytics.ForecastConfidence(tc.growth)
		assert.InDelta(t, tc.expected, actual, 1e-9, "growth=%v", tc.growth)
	}

	t.Run("always within clamp bounds", func(t *testing.T) {
		for g := -500.0; g <= 500; g += 0.25 {
			c := analytics.ForecastConfidence(g)
			assert.GreaterOrEqual(t, c, 60.0)
			assert.LessOrEqual(t, c, 95.0)
			assert.Equal(t, math.Min(95, math.Max(60, 100-math.Abs(g))), c)
		}
	})
}

func TestProjectNext(t *testing.T) {
	assert.Equal(t, int64(0), analytics.ProjectNext(0, 50))
	assert.Equal(t, int64(15), analytics.ProjectNext(10, 50))
	assert.Equal(t, int64(5), analytics.ProjectNext(10, -50))
	assert.Equal(t, int64(13), analytics.ProjectNext(10, 33.4), "rounds to nearest")
}

func TestBookingStatus(t *testing.T) {
	assert.True(t, analytics.BookingStatusCompleted.CountsAsRevenue())
	assert.True(t, analytics.BookingStatusConfirmed.CountsAsRevenue())
	assert.False(t, analytics.BookingStatusPending.CountsAsRevenue())
	assert.False(t, analytics.BookingStatusCancelled.CountsAsRevenue())
	assert.False(t, analytics.BookingStatus("refunded").IsValid())
	assert.Len(t, analytics.RevenueStatuses(), 2)
}
