//go:build unit

package response

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"wedding-analytics/internal/domain/analytics"
	"wedding-analytics/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromWindow(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	end := time.Date(2024, 6, 15, 21, 0, 0, 123456789, loc)
	w := analytics.NewTimeWindow(end.Add(-7*analytics.Day), end)

	got := FromWindow(w)

	assert.Equal(t, "2024-06-08T12:00:00.123Z", got.StartDate)
	assert.Equal(t, "2024-06-15T12:00:00.123Z", got.EndDate)
	assert.Equal(t, 7, got.Days)
}

func TestFromReport(t *testing.T) {
	end := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("success: nil sections render as zero values with empty arrays", func(t *testing.T) {
		res := FromReport(&queries.Report{
			TimeRange: analytics.Range30d,
			Period:    analytics.NewTimeWindow(end.Add(-30*analytics.Day), end),
		})

		assert.Equal(t, "30d", res.TimeRange)
		assert.Equal(t, 100.0, res.Churn.RetentionRate)
		assert.Equal(t, 95.0, res.Predictive.Confidence)
		assert.Nil(t, res.Seasonal.PeakMonth)
		assert.Nil(t, res.Seasonal.PeakMonthName)

		raw, err := json.Marshal(res)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		sectionOf := func(name string) map[string]any {
			m, ok := body[name].(map[string]any)
			require.True(t, ok, "section %s", name)
			return m
		}

		for section, key := range map[string]string{
			"revenue":    "revenueByDay",
			"userGrowth": "usersByType",
			"bookings":   "bookingsByStatus",
			"vendors":    "topVendors",
			"geographic": "topCities",
			"seasonal":   "monthlyData",
		} {
			assert.Equal(t, []any{}, sectionOf(section)[key], "%s.%s", section, key)
		}
		seasonal := sectionOf("seasonal")
		assert.Contains(t, seasonal, "peakMonth")
		assert.Nil(t, seasonal["peakMonth"])
	})

	t.Run("success: money and percentages are rounded to two places", func(t *testing.T) {
		june := time.June
		vendorID := uuid.New()
		res := FromReport(&queries.Report{
			TimeRange: analytics.Range7d,
			Period:    analytics.NewTimeWindow(end.Add(-7*analytics.Day), end),
			Revenue: &queries.RevenueMetrics{
				TotalRevenue:      decimal.RequireFromString("1234.5678"),
				TotalBookings:     3,
				AverageOrderValue: decimal.RequireFromString("411.5226"),
				GrowthRate:        -33.33333,
			},
			Vendors: &queries.VendorMetrics{
				TotalVendors:  1,
				ActiveVendors: 1,
				TopVendors: []queries.VendorRanking{
					{VendorID: vendorID, Name: "Bloom", Category: "florist", Revenue: decimal.NewFromInt(500), Bookings: 2, AverageRating: 4.666},
				},
			},
			Churn: &queries.ChurnMetrics{CurrentPeriodUsers: 2, PreviousPeriodUsers: 3, ChurnRate: 33.3333, RetentionRate: 66.6667},
			Seasonal: &queries.SeasonalMetrics{
				MonthlyData: []queries.MonthlyBookings{{Month: june, Bookings: 3, Revenue: decimal.RequireFromString("1234.5678")}},
				PeakMonth:   &june,
			},
			Predictive: &queries.PredictiveMetrics{CurrentMonthBookings: 10, PreviousMonthBookings: 8, GrowthRate: 25, PredictedNextMonth: 13, Confidence: 75},
		})

		assert.Equal(t, 1234.57, res.Revenue.TotalRevenue)
		assert.Equal(t, 411.52, res.Revenue.AverageOrderValue)
		assert.Equal(t, -33.33, res.Revenue.GrowthRate)
		require.Len(t, res.Vendors.TopVendors, 1)
		assert.Equal(t, vendorID.String(), res.Vendors.TopVendors[0].VendorID)
		assert.Equal(t, 4.67, res.Vendors.TopVendors[0].AverageRating)
		assert.Equal(t, 33.33, res.Churn.ChurnRate)
		assert.Equal(t, 66.67, res.Churn.RetentionRate)
		require.Len(t, res.Seasonal.MonthlyData, 1)
		assert.Equal(t, 6, res.Seasonal.MonthlyData[0].Month)
		assert.Equal(t, "June", res.Seasonal.MonthlyData[0].MonthName)
		require.NotNil(t, res.Seasonal.PeakMonthName)
		assert.Equal(t, "June", *res.Seasonal.PeakMonthName)
		assert.Equal(t, int64(13), res.Predictive.PredictedNextMonth)
		assert.Equal(t, 75.0, res.Predictive.Confidence)
	})
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "success: rounds to nearest", in: 12.346, want: 12.35},
		{name: "success: negative", in: -0.126, want: -0.13},
		{name: "success: NaN becomes zero", in: math.NaN(), want: 0},
		{name: "success: infinity becomes zero", in: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, round2(tt.in))
		})
	}
}
