package response

import (
	"math"

	"wedding-analytics/internal/domain/analytics"
	"wedding-analytics/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

// PeriodTimeFormat renders instants as UTC with millisecond precision.
const PeriodTimeFormat = "2006-01-02T15:04:05.000Z07:00"

type PeriodResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Days      int    `json:"days"`
}

type AnalyticsReportResponse struct {
	TimeRange             string                        `json:"timeRange"`
	Period                PeriodResponse                `json:"period"`
	Revenue               RevenueResponse               `json:"revenue"`
	UserGrowth            UserGrowthResponse            `json:"userGrowth"`
	Bookings              BookingsResponse              `json:"bookings"`
	Vendors               VendorsResponse               `json:"vendors"`
	Geographic            GeographicResponse            `json:"geographic"`
	Conversion            ConversionResponse            `json:"conversion"`
	CustomerLifetimeValue CustomerLifetimeValueResponse `json:"customerLifetimeValue"`
	Churn                 ChurnResponse                 `json:"churn"`
	Seasonal              SeasonalResponse              `json:"seasonal"`
	Predictive            PredictiveResponse            `json:"predictive"`
}

type DailyRevenueResponse struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	Bookings int64   `json:"bookings"`
}

type CategoryRevenueResponse struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
	Bookings int64   `json:"bookings"`
}

type RevenueResponse struct {
	TotalRevenue      float64                   `json:"totalRevenue"`
	TotalBookings     int64                     `json:"totalBookings"`
	AverageOrderValue float64                   `json:"averageOrderValue"`
	RevenueByDay      []DailyRevenueResponse    `json:"revenueByDay"`
	RevenueByCategory []CategoryRevenueResponse `json:"revenueByCategory"`
	GrowthRate        float64                   `json:"growthRate"`
}

type UserTypeCountResponse struct {
	UserType string `json:"userType"`
	Count    int64  `json:"count"`
}

type DailyCountResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type UserGrowthResponse struct {
	TotalUsers  int64                   `json:"totalUsers"`
	NewUsers    int64                   `json:"newUsers"`
	UsersByType []UserTypeCountResponse `json:"usersByType"`
	UsersByDay  []DailyCountResponse    `json:"usersByDay"`
	GrowthRate  float64                 `json:"growthRate"`
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type BookingsResponse struct {
	TotalBookings    int64                 `json:"totalBookings"`
	BookingsByStatus []StatusCountResponse `json:"bookingsByStatus"`
	BookingsByDay    []DailyCountResponse  `json:"bookingsByDay"`
	ConversionRate   float64               `json:"conversionRate"`
}

type TopVendorResponse struct {
	VendorID      string  `json:"vendorId"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Revenue       float64 `json:"revenue"`
	Bookings      int64   `json:"bookings"`
	AverageRating float64 `json:"averageRating"`
}

type CategoryPerformanceResponse struct {
	Category      string  `json:"category"`
	Vendors       int64   `json:"vendors"`
	ActiveVendors int64   `json:"activeVendors"`
	Revenue       float64 `json:"revenue"`
	Bookings      int64   `json:"bookings"`
	AverageRating float64 `json:"averageRating"`
}

type VendorsResponse struct {
	TotalVendors        int64                         `json:"totalVendors"`
	ActiveVendors       int64                         `json:"activeVendors"`
	TopVendors          []TopVendorResponse           `json:"topVendors"`
	CategoryPerformance []CategoryPerformanceResponse `json:"categoryPerformance"`
}

type CityRevenueResponse struct {
	City     string  `json:"city"`
	Revenue  float64 `json:"revenue"`
	Bookings int64   `json:"bookings"`
}

type GeographicResponse struct {
	RevenueByCity []CityRevenueResponse `json:"revenueByCity"`
	TopCities     []CityRevenueResponse `json:"topCities"`
}

type ConversionResponse struct {
	Visitors       int64   `json:"visitors"`
	Registered     int64   `json:"registered"`
	Bookings       int64   `json:"bookings"`
	Completed      int64   `json:"completed"`
	ConversionRate float64 `json:"conversionRate"`
	CompletionRate float64 `json:"completionRate"`
}

type CustomerLifetimeValueResponse struct {
	TotalCustomers             int64   `json:"totalCustomers"`
	AverageLifetimeValue       float64 `json:"averageLifetimeValue"`
	AverageOrderValue          float64 `json:"averageOrderValue"`
	AverageBookingsPerCustomer float64 `json:"averageBookingsPerCustomer"`
	AverageLifespanMonths      float64 `json:"averageLifespanMonths"`
}

type ChurnResponse struct {
	CurrentPeriodUsers  int64   `json:"currentPeriodUsers"`
	PreviousPeriodUsers int64   `json:"previousPeriodUsers"`
	ChurnRate           float64 `json:"churnRate"`
	RetentionRate       float64 `json:"retentionRate"`
}

type MonthlyBookingsResponse struct {
	Month     int     `json:"month"`
	MonthName string  `json:"monthName"`
	Bookings  int64   `json:"bookings"`
	Revenue   float64 `json:"revenue"`
}

type SeasonalResponse struct {
	MonthlyData   []MonthlyBookingsResponse `json:"monthlyData"`
	PeakMonth     *int                      `json:"peakMonth"`
	PeakMonthName *string                   `json:"peakMonthName"`
}

type PredictiveResponse struct {
	CurrentMonthBookings  int64   `json:"currentMonthBookings"`
	PreviousMonthBookings int64   `json:"previousMonthBookings"`
	GrowthRate            float64 `json:"growthRate"`
	PredictedNextMonth    int64   `json:"predictedNextMonth"`
	Confidence            float64 `json:"confidence"`
}

type GrowthRateResponse struct {
	Metric     string         `json:"metric"`
	TimeRange  string         `json:"timeRange"`
	Period     PeriodResponse `json:"period"`
	GrowthRate float64        `json:"growthRate"`
}

type MetricDescriptorResponse struct {
	Name          string   `json:"name"`
	Scope         string   `json:"scope"`
	AllTimeFields []string `json:"allTimeFields,omitempty"`
}

// FromReport tolerates nil sections so every top-level key is always rendered.
func FromReport(r *queries.Report) *AnalyticsReportResponse {
	return &AnalyticsReportResponse{
		TimeRange:             r.TimeRange.String(),
		Period:                FromWindow(r.Period),
		Revenue:               fromRevenue(r.Revenue),
		UserGrowth:            fromUserGrowth(r.UserGrowth),
		Bookings:              fromBookings(r.Bookings),
		Vendors:               fromVendors(r.Vendors),
		Geographic:            fromGeographic(r.Geographic),
		Conversion:            fromConversion(r.Conversion),
		CustomerLifetimeValue: fromCustomerLifetimeValue(r.CustomerLifetimeValue),
		Churn:                 fromChurn(r.Churn),
		Seasonal:              fromSeasonal(r.Seasonal),
		Predictive:            fromPredictive(r.Predictive),
	}
}

func FromWindow(w analytics.TimeWindow) PeriodResponse {
	return PeriodResponse{
		StartDate: w.Start.UTC().Format(PeriodTimeFormat),
		EndDate:   w.End.UTC().Format(PeriodTimeFormat),
		Days:      w.Days(),
	}
}

func FromGrowthRateView(v *queries.GrowthRateView) *GrowthRateResponse {
	return &GrowthRateResponse{
		Metric:     v.Metric,
		TimeRange:  v.TimeRange.String(),
		Period:     FromWindow(v.Period),
		GrowthRate: round2(v.GrowthRate),
	}
}

func FromMetricDescriptors(ds []queries.MetricDescriptor) []MetricDescriptorResponse {
	res := make([]MetricDescriptorResponse, len(ds))
	for i, d := range ds {
		res[i] = MetricDescriptorResponse{
			Name:          d.Name,
			Scope:         d.Scope.String(),
			AllTimeFields: d.AllTimeFields,
		}
	}
	return res
}

func fromRevenue(m *queries.RevenueMetrics) RevenueResponse {
	if m == nil {
		m = &queries.RevenueMetrics{}
	}
	byDay := make([]DailyRevenueResponse, len(m.RevenueByDay))
	for i, d := range m.RevenueByDay {
		byDay[i] = DailyRevenueResponse{Date: d.Date, Revenue: money(d.Revenue), Bookings: d.Bookings}
	}
	byCategory := make([]CategoryRevenueResponse, len(m.RevenueByCategory))
	for i, g := range m.RevenueByCategory {
		byCategory[i] = CategoryRevenueResponse{Category: g.Key, Revenue: money(g.Revenue), Bookings: g.Bookings}
	}
	return RevenueResponse{
		TotalRevenue:      money(m.TotalRevenue),
		TotalBookings:     m.TotalBookings,
		AverageOrderValue: money(m.AverageOrderValue),
		RevenueByDay:      byDay,
		RevenueByCategory: byCategory,
		GrowthRate:        round2(m.GrowthRate),
	}
}

func fromUserGrowth(m *queries.UserGrowthMetrics) UserGrowthResponse {
	if m == nil {
		m = &queries.UserGrowthMetrics{}
	}
	byType := make([]UserTypeCountResponse, len(m.UsersByType))
	for i, g := range m.UsersByType {
		byType[i] = UserTypeCountResponse{UserType: g.Key, Count: g.Count}
	}
	return UserGrowthResponse{
		TotalUsers:  m.TotalUsers,
		NewUsers:    m.NewUsers,
		UsersByType: byType,
		UsersByDay:  fromDailyCounts(m.UsersByDay),
		GrowthRate:  round2(m.GrowthRate),
	}
}

func fromBookings(m *queries.BookingMetrics) BookingsResponse {
	if m == nil {
		m = &queries.BookingMetrics{}
	}
	byStatus := make([]StatusCountResponse, len(m.BookingsByStatus))
	for i, g := range m.BookingsByStatus {
		byStatus[i] = StatusCountResponse{Status: g.Key, Count: g.Count}
	}
	return BookingsResponse{
		TotalBookings:    m.TotalBookings,
		BookingsByStatus: byStatus,
		BookingsByDay:    fromDailyCounts(m.BookingsByDay),
		ConversionRate:   round2(m.ConversionRate),
	}
}

func fromVendors(m *queries.VendorMetrics) VendorsResponse {
	if m == nil {
		m = &queries.VendorMetrics{}
	}
	top := make([]TopVendorResponse, len(m.TopVendors))
	for i, v := range m.TopVendors {
		top[i] = TopVendorResponse{
			VendorID:      v.VendorID.String(),
			Name:          v.Name,
			Category:      v.Category,
			Revenue:       money(v.Revenue),
			Bookings:      v.Bookings,
			AverageRating: round2(v.AverageRating),
		}
	}
	categories := make([]CategoryPerformanceResponse, len(m.CategoryPerformance))
	for i, c := range m.CategoryPerformance {
		categories[i] = CategoryPerformanceResponse{
			Category:      c.Category,
			Vendors:       c.Vendors,
			ActiveVendors: c.ActiveVendors,
			Revenue:       money(c.Revenue),
			Bookings:      c.Bookings,
			AverageRating: round2(c.AverageRating),
		}
	}
	return VendorsResponse{
		TotalVendors:        m.TotalVendors,
		ActiveVendors:       m.ActiveVendors,
		TopVendors:          top,
		CategoryPerformance: categories,
	}
}

func fromGeographic(m *queries.GeographicMetrics) GeographicResponse {
	if m == nil {
		m = &queries.GeographicMetrics{}
	}
	return GeographicResponse{
		RevenueByCity: fromCityRevenue(m.RevenueByCity),
		TopCities:     fromCityRevenue(m.TopCities),
	}
}

func fromCityRevenue(gs []queries.GroupRevenue) []CityRevenueResponse {
	res := make([]CityRevenueResponse, len(gs))
	for i, g := range gs {
		res[i] = CityRevenueResponse{City: g.Key, Revenue: money(g.Revenue), Bookings: g.Bookings}
	}
	return res
}

func fromConversion(m *queries.ConversionMetrics) ConversionResponse {
	if m == nil {
		m = &queries.ConversionMetrics{}
	}
	return ConversionResponse{
		Visitors:       m.Visitors,
		Registered:     m.Registered,
		Bookings:       m.Bookings,
		Completed:      m.Completed,
		ConversionRate: round2(m.ConversionRate),
		CompletionRate: round2(m.CompletionRate),
	}
}

func fromCustomerLifetimeValue(m *queries.CustomerLifetimeValueMetrics) CustomerLifetimeValueResponse {
	if m == nil {
		m = &queries.CustomerLifetimeValueMetrics{}
	}
	return CustomerLifetimeValueResponse{
		TotalCustomers:             m.TotalCustomers,
		AverageLifetimeValue:       money(m.AverageLifetimeValue),
		AverageOrderValue:          money(m.AverageOrderValue),
		AverageBookingsPerCustomer: round2(m.AverageBookingsPerCustomer),
		AverageLifespanMonths:      round2(m.AverageLifespanMonths),
	}
}

func fromChurn(m *queries.ChurnMetrics) ChurnResponse {
	if m == nil {
		m = &queries.ChurnMetrics{RetentionRate: 100}
	}
	return ChurnResponse{
		CurrentPeriodUsers:  m.CurrentPeriodUsers,
		PreviousPeriodUsers: m.PreviousPeriodUsers,
		ChurnRate:           round2(m.ChurnRate),
		RetentionRate:       round2(m.RetentionRate),
	}
}

func fromSeasonal(m *queries.SeasonalMetrics) SeasonalResponse {
	if m == nil {
		m = &queries.SeasonalMetrics{}
	}
	monthly := make([]MonthlyBookingsResponse, len(m.MonthlyData))
	for i, d := range m.MonthlyData {
		monthly[i] = MonthlyBookingsResponse{
			Month:     int(d.Month),
			MonthName: d.Month.String(),
			Bookings:  d.Bookings,
			Revenue:   money(d.Revenue),
		}
	}
	res := SeasonalResponse{MonthlyData: monthly}
	if m.PeakMonth != nil {
		month := int(*m.PeakMonth)
		name := m.PeakMonth.String()
		res.PeakMonth = &month
		res.PeakMonthName = &name
	}
	return res
}

func fromPredictive(m *queries.PredictiveMetrics) PredictiveResponse {
	if m == nil {
		m = &queries.PredictiveMetrics{Confidence: analytics.ForecastConfidence(0)}
	}
	return PredictiveResponse{
		CurrentMonthBookings:  m.CurrentMonthBookings,
		PreviousMonthBookings: m.PreviousMonthBookings,
		GrowthRate:            round2(m.GrowthRate),
		PredictedNextMonth:    m.PredictedNextMonth,
		Confidence:            m.Confidence,
	}
}

func fromDailyCounts(ds []queries.DailyCount) []DailyCountResponse {
	res := make([]DailyCountResponse, len(ds))
	for i, d := range ds {
		res[i] = DailyCountResponse{Date: d.Date, Count: d.Count}
	}
	return res
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}
