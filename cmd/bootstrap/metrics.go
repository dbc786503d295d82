package bootstrap

import (
	"wedding-analytics/internal/infra/metrics"
	"wedding-analytics/internal/pkg/config"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetricsCollector,
	),
)

func NewMetricsCollector(cfg config.Config) *metrics.Collector {
	return metrics.NewCollector(cfg.Metrics.Namespace)
}
