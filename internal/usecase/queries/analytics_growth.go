package queries

import (
	"context"
	"log/slog"

	"wedding-analytics/internal/domain/analytics"
	"wedding-analytics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type growthCalculator struct {
	store  AnalyticsReadStore
	logger *slog.Logger
}

func newGrowthCalculator(store AnalyticsReadStore, logger *slog.Logger) *growthCalculator {
	return &growthCalculator{store: store, logger: logger}
}

// Compare measures metric over window and over the equal-length window right before it.
func (g *growthCalculator) Compare(ctx context.Context, metric analytics.GrowthMetric, window analytics.TimeWindow) (analytics.GrowthComparison, error) {
	previous := window.Previous()

	switch metric {
	case analytics.GrowthMetricRevenue:
		cur, err := g.store.SumRevenue(ctx, window)
		if err != nil {
			return analytics.GrowthComparison{}, errs.Wrap(err, "sum current revenue")
		}
		prev, err := g.store.SumRevenue(ctx, previous)
		if err != nil {
			return analytics.GrowthComparison{}, errs.Wrap(err, "sum previous revenue")
		}
		return analytics.NewGrowthComparison(cur, prev), nil

	case analytics.GrowthMetricUsers:
		cur, err := g.store.CountUsers(ctx, UserFilter{Window: &window})
		if err != nil {
			return analytics.GrowthComparison{}, errs.Wrap(err, "count current users")
		}
		prev, err := g.store.CountUsers(ctx, UserFilter{Window: &previous})
		if err != nil {
			return analytics.GrowthComparison{}, errs.Wrap(err, "count previous users")
		}
		return analytics.NewGrowthComparison(decimal.NewFromInt(cur), decimal.NewFromInt(prev)), nil
	}

	return analytics.GrowthComparison{}, errs.Mark(errs.New("unsupported growth metric: "+metric.String()), ErrUnsupportedGrowthMetric)
}

func (g *growthCalculator) Rate(ctx context.Context, metric analytics.GrowthMetric, window analytics.TimeWindow) (float64, error) {
	cmp, err := g.Compare(ctx, metric, window)
	if err != nil {
		return 0, err
	}
	return cmp.PercentChange(), nil
}

// RateByName keeps the lenient contract of the dashboard API: unknown names yield 0 without error.
func (g *growthCalculator) RateByName(ctx context.Context, name string, window analytics.TimeWindow) (float64, error) {
	metric, ok := analytics.ParseGrowthMetric(name)
	if !ok {
		g.logger.DebugContext(ctx, "unknown growth metric requested", slog.String("metric", name))
		return 0, nil
	}
	return g.Rate(ctx, metric, window)
}
