package errs

import "errors"

// Domain-specific sentinel errors for the analytics read side
var (
	// Report errors
	ErrReportFailed            = errors.New("analytics report failed")
	ErrUnsupportedGrowthMetric = errors.New("unsupported growth metric")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
