package queries

import (
	"context"
	"log/slog"
	"time"

	"wedding-analytics/internal/domain/analytics"
	"wedding-analytics/internal/pkg/clock"
	"wedding-analytics/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

var (
	ErrReportFailed            = errs.ErrReportFailed
	ErrUnsupportedGrowthMetric = errs.ErrUnsupportedGrowthMetric
)

// ReportObserver receives timings for the report and for each aggregator run.
type ReportObserver interface {
	ObserveAggregator(name string, duration time.Duration, err error)
	ObserveReport(timeRange analytics.Range, duration time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveAggregator(string, time.Duration, error)      {}
func (nopObserver) ObserveReport(analytics.Range, time.Duration, error) {}

func NewNopObserver() ReportObserver { return nopObserver{} }

type AnalyticsOptions struct {
	// Concurrent runs the aggregators in parallel; otherwise they run one after another.
	Concurrent bool
	// Timeout bounds a whole report build. Zero disables it.
	Timeout time.Duration
}

type GrowthRateView struct {
	Metric     string
	TimeRange  analytics.Range
	Period     analytics.TimeWindow
	GrowthRate float64
}

//go:generate mockgen -destination=../../../tests/mock/queries/analytics.go -package=queries wedding-analytics/internal/usecase/queries AnalyticsQueries

type AnalyticsQueries interface {
	BuildReport(ctx context.Context, rangeToken string) (*Report, error)
	GrowthRate(ctx context.Context, metric string, rangeToken string) (*GrowthRateView, error)
	Metrics() []MetricDescriptor
}

type analyticsQueriesImpl struct {
	store    AnalyticsReadStore
	clock    clock.Clock
	growth   *growthCalculator
	observer ReportObserver
	opts     AnalyticsOptions
	logger   *slog.Logger
}

func NewAnalyticsQueries(store AnalyticsReadStore, clk clock.Clock, observer ReportObserver, opts AnalyticsOptions, logger *slog.Logger) AnalyticsQueries {
	if observer == nil {
		observer = NewNopObserver()
	}
	return &analyticsQueriesImpl{
		store:    store,
		clock:    clk,
		growth:   newGrowthCalculator(store, logger),
		observer: observer,
		opts:     opts,
		logger:   logger,
	}
}

// BuildReport fails as a whole when any aggregator fails; partial reports are never returned.
func (q *analyticsQueriesImpl) BuildReport(ctx context.Context, rangeToken string) (*Report, error) {
	started := time.Now()
	timeRange := analytics.ParseRange(rangeToken)
	window := analytics.ResolveWindow(rangeToken, q.clock.Now())

	if q.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.opts.Timeout)
		defer cancel()
	}

	report := &Report{TimeRange: timeRange, Period: window}
	var err error
	if q.opts.Concurrent {
		err = q.runConcurrently(ctx, window, report)
	} else {
		err = q.runSequentially(ctx, window, report)
	}

	elapsed := time.Since(started)
	q.observer.ObserveReport(timeRange, elapsed, err)
	if err != nil {
		q.logger.ErrorContext(ctx, "analytics report failed",
			slog.String("range", timeRange.String()),
			slog.Duration("duration", elapsed),
			slog.String("error", err.Error()),
		)
		return nil, errs.Mark(errs.Wrap(err, "build analytics report"), ErrReportFailed)
	}

	q.logger.InfoContext(ctx, "analytics report built",
		slog.String("range", timeRange.String()),
		slog.Time("start", window.Start),
		slog.Time("end", window.End),
		slog.Duration("duration", elapsed),
	)
	return report, nil
}

func (q *analyticsQueriesImpl) runConcurrently(ctx context.Context, window analytics.TimeWindow, report *Report) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, agg := range q.aggregators() {
		g.Go(func() error {
			return q.runOne(gctx, agg, window, report)
		})
	}
	return g.Wait()
}

func (q *analyticsQueriesImpl) runSequentially(ctx context.Context, window analytics.TimeWindow, report *Report) error {
	for _, agg := range q.aggregators() {
		if err := q.runOne(ctx, agg, window, report); err != nil {
			return err
		}
	}
	return nil
}

func (q *analyticsQueriesImpl) runOne(ctx context.Context, agg aggregator, window analytics.TimeWindow, report *Report) error {
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, agg.name)
	}
	started := time.Now()
	err := agg.run(ctx, window, report)
	q.observer.ObserveAggregator(agg.name, time.Since(started), err)
	if err != nil {
		return errs.Wrap(err, agg.name)
	}
	return nil
}

func (q *analyticsQueriesImpl) GrowthRate(ctx context.Context, metric string, rangeToken string) (*GrowthRateView, error) {
	window := analytics.ResolveWindow(rangeToken, q.clock.Now())
	rate, err := q.growth.RateByName(ctx, metric, window)
	if err != nil {
		return nil, errs.Wrap(err, "growth rate")
	}
	return &GrowthRateView{
		Metric:     metric,
		TimeRange:  analytics.ParseRange(rangeToken),
		Period:     window,
		GrowthRate: rate,
	}, nil
}

func (q *analyticsQueriesImpl) Metrics() []MetricDescriptor {
	aggs := q.aggregators()
	out := make([]MetricDescriptor, len(aggs))
	for i, agg := range aggs {
		out[i] = MetricDescriptor{Name: agg.name, Scope: agg.scope, AllTimeFields: agg.allTimeFields}
	}
	return out
}
