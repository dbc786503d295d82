package request

// GrowthRateRequest leaves Range unvalidated; unknown tokens fall back to the default window.
type GrowthRateRequest struct {
	Metric string `form:"metric" binding:"required"`
	Range  string `form:"range"`
}
