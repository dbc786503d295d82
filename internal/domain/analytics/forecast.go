package analytics

import (
	"math"
)

const (
	minForecastConfidence = 60
	maxForecastConfidence = 95
)

// ForecastWindowRange is the fixed trailing period the forecast compares, whatever range was requested.
const ForecastWindowRange = Range30d

// ForecastConfidence is a display hint: min(95, max(60, 100-|growth|)).
func ForecastConfidence(growthRate float64) float64 {
	return math.Min(maxForecastConfidence, math.Max(minForecastConfidence, 100-math.Abs(growthRate)))
}

// ProjectNext extrapolates the current count by growthRate percent, rounded to the nearest integer.
func ProjectNext(current int64, growthRate float64) int64 {
	return int64(math.Round(float64(current) * (1 + growthRate/100)))
}
