package analytics

import (
	"github.com/shopspring/decimal"
)

// GrowthMetric selects the aggregate compared between adjacent windows.
type GrowthMetric int

const (
	GrowthMetricRevenue GrowthMetric = iota + 1
	GrowthMetricUsers
)

var growthMetricNames = map[string]GrowthMetric{
	"revenue": GrowthMetricRevenue,
	"users":   GrowthMetricUsers,
}

func ParseGrowthMetric(name string) (GrowthMetric, bool) {
	m, ok := growthMetricNames[name]
	return m, ok
}

func (m GrowthMetric) String() string {
	switch m {
	case GrowthMetricRevenue:
		return "revenue"
	case GrowthMetricUsers:
		return "users"
	default:
		return "unknown"
	}
}

// GrowthComparison holds one aggregate measured over a window and over the window before it.
type GrowthComparison struct {
	Current  decimal.Decimal
	Previous decimal.Decimal
}

func NewGrowthComparison(current, previous decimal.Decimal) GrowthComparison {
	return GrowthComparison{Current: current, Previous: previous}
}

func (g GrowthComparison) PercentChange() float64 {
	return PercentChange(g.Current, g.Previous)
}

// PercentChange returns (current-previous)/previous*100, or 0 when previous is zero.
func PercentChange(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	return current.Sub(previous).Div(previous).Mul(hundred).InexactFloat64()
}

// Percent returns part/whole*100, or 0 when whole is zero.
func Percent(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// Average returns total/count, or zero when count is zero.
func Average(total decimal.Decimal, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(count))
}

var hundred = decimal.NewFromInt(100)
