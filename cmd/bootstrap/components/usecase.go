package components

import (
	"wedding-analytics/internal/infra/metrics"
	"wedding-analytics/internal/pkg/clock"
	"wedding-analytics/internal/pkg/config"
	"wedding-analytics/internal/usecase"
	"wedding-analytics/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewAnalyticsOptions,
	NewReportObserver,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAnalyticsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewAnalyticsOptions(cfg config.Config) queries.AnalyticsOptions {
	return queries.AnalyticsOptions{
		Concurrent: cfg.Analytics.Concurrent,
		Timeout:    cfg.Analytics.ReportTimeout,
	}
}

func NewReportObserver(cfg config.Config, collector *metrics.Collector) queries.ReportObserver {
	if !cfg.Metrics.Enabled {
		return queries.NewNopObserver()
	}
	return collector
}
