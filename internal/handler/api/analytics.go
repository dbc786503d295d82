package api

import (
	"net/http"

	reqdto "wedding-analytics/internal/handler/dto/request"
	resdto "wedding-analytics/internal/handler/dto/response"
	"wedding-analytics/internal/handler/httperr"
	"wedding-analytics/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	q queries.AnalyticsQueries
}

func NewAnalyticsHandler(q queries.AnalyticsQueries) *AnalyticsHandler {
	return &AnalyticsHandler{q: q}
}

// @Summary Analytics report
// @Description Build the full analytics report for a time range. Unknown ranges fall back to 30d.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param range query string false "Time range" Enums(7d, 30d, 90d, 1y) default(30d)
// @Success 200 {object} resdto.AnalyticsReportResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} httperr.Response
// @Router /admin/analytics [get]
func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	// unknown or missing tokens are resolved to the default window downstream
	report, err := h.q.BuildReport(c.Request.Context(), c.Query("range"))
	if err != nil {
		httperr.AbortInternal(c, err, "Failed to build analytics report")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReport(report))
}

// @Summary Growth rate
// @Description Period-over-period growth of a single metric. Unknown metrics yield 0.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param metric query string true "Metric name" Enums(revenue, users)
// @Param range query string false "Time range" Enums(7d, 30d, 90d, 1y) default(30d)
// @Success 200 {object} resdto.GrowthRateResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 500 {object} httperr.Response
// @Router /admin/analytics/growth [get]
func (h *AnalyticsHandler) GetGrowthRate(c *gin.Context) {
	var req reqdto.GrowthRateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.q.GrowthRate(c.Request.Context(), req.Metric, req.Range)
	if err != nil {
		httperr.AbortInternal(c, err, "Failed to compute growth rate")
		return
	}
	c.JSON(http.StatusOK, resdto.FromGrowthRateView(view))
}

// @Summary Analytics metric catalogue
// @Description List the report sections and whether each honours the requested range
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MetricDescriptorResponse
// @Failure 401 {object} map[string]string
// @Router /admin/analytics/metrics [get]
func (h *AnalyticsHandler) ListMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromMetricDescriptors(h.q.Metrics()))
}
