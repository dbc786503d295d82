//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"wedding-analytics/internal/domain/analytics"
	"wedding-analytics/internal/domain/user"
	"wedding-analytics/internal/handler/api"
	resdto "wedding-analytics/internal/handler/dto/response"
	"wedding-analytics/internal/handler/middleware"
	"wedding-analytics/internal/pkg/errs"
	"wedding-analytics/internal/pkg/jwt"
	"wedding-analytics/internal/usecase"
	"wedding-analytics/internal/usecase/queries"
	"wedding-analytics/tests/common/httptest"
	queriesmock "wedding-analytics/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AnalyticsHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAnalyticsQueries
	jwtService  *jwt.Service
	adminToken  string
}

func (s *AnalyticsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAnalyticsQueries(s.mockCtrl)
	handler := api.NewAnalyticsHandler(s.mockQueries)

	s.jwtService = jwt.NewService("handler-test-secret", time.Hour)
	token, err := s.jwtService.GenerateToken(uuid.New(), user.RoleAdmin)
	s.Require().NoError(err)
	s.adminToken = token

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwtService))

	s.router.Use(middleware.ErrorHandler())
	admin := s.router.Group("/api/admin", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleAdmin))
	admin.GET("/analytics", handler.GetReport)
	admin.GET("/analytics/growth", handler.GetGrowthRate)
	admin.GET("/analytics/metrics", handler.ListMetrics)
}

func (s *AnalyticsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAnalyticsHandlerSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}

func sampleReport() *queries.Report {
	end := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	june := time.June
	return &queries.Report{
		TimeRange: analytics.Range30d,
		Period:    analytics.NewTimeWindow(end.Add(-30*analytics.Day), end),
		Revenue: &queries.RevenueMetrics{
			TotalRevenue:      decimal.RequireFromString("100000.004"),
			TotalBookings:     1,
			AverageOrderValue: decimal.RequireFromString("100000.004"),
			RevenueByDay:      []queries.DailyRevenue{{Date: "2024-06-13", Revenue: decimal.NewFromInt(100000), Bookings: 1}},
			GrowthRate:        33.33333,
		},
		Seasonal: &queries.SeasonalMetrics{
			MonthlyData: []queries.MonthlyBookings{{Month: june, Bookings: 1, Revenue: decimal.NewFromInt(100000)}},
			PeakMonth:   &june,
		},
	}
}

// ================================================================================
// TestGetReport
// ================================================================================

func (s *AnalyticsHandlerTestSuite) TestGetReport() {
	s.Run("success: returns the report with every section", func() {
		s.mockQueries.EXPECT().BuildReport(gomock.Any(), "90d").Return(sampleReport(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/analytics?range=90d", nil, s.adminToken)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		for _, key := range []string{"timeRange", "period", "revenue", "userGrowth", "bookings", "vendors", "geographic",
			"conversion", "customerLifetimeValue", "churn", "seasonal", "predictive"} {
			s.Contains(body, key)
		}

		var report resdto.AnalyticsReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &report)
		s.Equal("30d", report.TimeRange)
		s.Equal(30, report.Period.Days)
		s.Equal("2024-06-15T12:00:00.000Z", report.Period.EndDate)
		s.Equal(100000.0, report.Revenue.TotalRevenue)
		s.Equal(33.33, report.Revenue.GrowthRate)
		s.NotNil(report.Vendors.TopVendors)
		s.Empty(report.Vendors.TopVendors)
		s.Equal(100.0, report.Churn.RetentionRate)
		s.Require().NotNil(report.Seasonal.PeakMonth)
		s.Equal(6, *report.Seasonal.PeakMonth)
		s.Equal("June", *report.Seasonal.PeakMonthName)
	})

	s.Run("success: missing range is passed through for defaulting", func() {
		s.mockQueries.EXPECT().BuildReport(gomock.Any(), "").Return(sampleReport(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/analytics", nil, s.adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: unrecognised range is handed over verbatim", func() {
		s.mockQueries.EXPECT().BuildReport(gomock.Any(), "2w").Return(sampleReport(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/analytics?range=2w&range=7d", nil, s.adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 with a generic message when the report fails", func() {
		failure := errs.Mark(errs.New("list bookings: connection refused"), queries.ErrReportFailed)
		s.mockQueries.EXPECT().BuildReport(gomock.Any(), "7d").Return(nil, failure).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/analytics?range=7d", nil, s.adminToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to build analytics report")
		s.NotContains(rec.Body.String(), "connection refused")
	})
}

// ================================================================================
// TestAdminGate
// ================================================================================

func (s *AnalyticsHandlerTestSuite) TestAdminGate() {
	coupleToken, err := s.jwtService.GenerateToken(uuid.New(), user.RoleCouple)
	s.Require().NoError(err)
	vendorToken, err := s.jwtService.GenerateToken(uuid.New(), user.RoleVendor)
	s.Require().NoError(err)
	foreignToken, err := jwt.NewService("another-secret", time.Hour).GenerateToken(uuid.New(), user.RoleAdmin)
	s.Require().NoError(err)

	tests := []struct {
		name       string
		token      string
		expectCode int
	}{
		{name: "error: missing token", token: "", expectCode: http.StatusUnauthorized},
		{name: "error: token signed with another key", token: foreignToken, expectCode: http.StatusUnauthorized},
		{name: "error: couple role", token: coupleToken, expectCode: http.StatusForbidden},
		{name: "error: vendor role", token: vendorToken, expectCode: http.StatusForbidden},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/analytics", nil, tc.token)
			s.Equal(tc.expectCode, rec.Code)
		})
	}
}

// ================================================================================
// TestGetGrowthRate
// ================================================================================

func (s *AnalyticsHandlerTestSuite) TestGetGrowthRate() {
	end := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	s.Run("success: returns the rounded rate", func() {
		s.mockQueries.EXPECT().GrowthRate(gomock.Any(), "revenue", "7d").Return(&queries.GrowthRateView{
			Metric:     "revenue",
			TimeRange:  analytics.Range7d,
			Period:     analytics.NewTimeWindow(end.Add(-7*analytics.Day), end),
			GrowthRate: -12.3456,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/analytics/growth?metric=revenue&range=7d", nil, s.adminToken)

		var body resdto.GrowthRateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("revenue", body.Metric)
		s.Equal(-12.35, body.GrowthRate)
		s.Equal(7, body.Period.Days)
	})

	s.Run("error: 400 when metric is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/analytics/growth?range=7d", nil, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockQueries.EXPECT().GrowthRate(gomock.Any(), "users", "").Return(nil, errs.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/analytics/growth?metric=users", nil, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to compute growth rate")
	})
}

// ================================================================================
// TestListMetrics
// ================================================================================

func (s *AnalyticsHandlerTestSuite) TestListMetrics() {
	s.mockQueries.EXPECT().Metrics().Return([]queries.MetricDescriptor{
		{Name: "revenue", Scope: analytics.ScopeWindowBounded},
		{Name: "geographic", Scope: analytics.ScopeAllTime},
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/analytics/metrics", nil, s.adminToken)

	var body []resdto.MetricDescriptorResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal([]resdto.MetricDescriptorResponse{
		{Name: "revenue", Scope: "window_bounded"},
		{Name: "geographic", Scope: "all_time"},
	}, body)
}
