package queries

import (
	"context"
	"time"

	"wedding-analytics/internal/domain/analytics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingFact is a booking joined with its vendor and venue.
type BookingFact struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	VendorID       *uuid.UUID
	VendorName     string
	VendorCategory string
	VenueID        *uuid.UUID
	VenueCity      string
	Status         analytics.BookingStatus
	TotalAmount    decimal.Decimal
	Rating         *int32
	CreatedAt      time.Time
}

type UserFact struct {
	ID         uuid.UUID
	UserType   analytics.UserType
	IsVerified bool
	CreatedAt  time.Time
}

type VendorFact struct {
	ID            uuid.UUID
	Name          string
	Category      string
	IsActive      bool
	RatingAverage float64
	RatingCount   int32
}

// BookingFilter with a nil Window is all-time; empty Statuses matches every status.
type BookingFilter struct {
	Window   *analytics.TimeWindow
	Statuses []analytics.BookingStatus
}

// UserFilter with a nil Window is all-time.
type UserFilter struct {
	Window       *analytics.TimeWindow
	VerifiedOnly bool
}

// AnalyticsReadStore is the read-only view of the transactional store used by the report.
type AnalyticsReadStore interface {
	ListBookings(ctx context.Context, filter BookingFilter) ([]*BookingFact, error)
	CountBookings(ctx context.Context, filter BookingFilter) (int64, error)
	SumRevenue(ctx context.Context, window analytics.TimeWindow) (decimal.Decimal, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]*UserFact, error)
	CountUsers(ctx context.Context, filter UserFilter) (int64, error)
	ListVendors(ctx context.Context) ([]*VendorFact, error)
}

// =============================================================================
// Report
// =============================================================================

type Report struct {
	TimeRange             analytics.Range
	Period                analytics.TimeWindow
	Revenue               *RevenueMetrics
	UserGrowth            *UserGrowthMetrics
	Bookings              *BookingMetrics
	Vendors               *VendorMetrics
	Geographic            *GeographicMetrics
	Conversion            *ConversionMetrics
	CustomerLifetimeValue *CustomerLifetimeValueMetrics
	Churn                 *ChurnMetrics
	Seasonal              *SeasonalMetrics
	Predictive            *PredictiveMetrics
}

type DailyRevenue struct {
	Date     string
	Revenue  decimal.Decimal
	Bookings int64
}

type DailyCount struct {
	Date  string
	Count int64
}

type GroupRevenue struct {
	Key      string
	Revenue  decimal.Decimal
	Bookings int64
}

type GroupCount struct {
	Key   string
	Count int64
}

type RevenueMetrics struct {
	TotalRevenue      decimal.Decimal
	TotalBookings     int64
	AverageOrderValue decimal.Decimal
	RevenueByDay      []DailyRevenue
	RevenueByCategory []GroupRevenue
	GrowthRate        float64
}

type UserGrowthMetrics struct {
	TotalUsers  int64
	NewUsers    int64
	UsersByType []GroupCount
	UsersByDay  []DailyCount
	GrowthRate  float64
}

type BookingMetrics struct {
	TotalBookings    int64
	BookingsByStatus []GroupCount
	BookingsByDay    []DailyCount
	ConversionRate   float64
}

type VendorRanking struct {
	VendorID      uuid.UUID
	Name          string
	Category      string
	Revenue       decimal.Decimal
	Bookings      int64
	AverageRating float64
}

type CategoryPerformance struct {
	Category      string
	Vendors       int64
	ActiveVendors int64
	Revenue       decimal.Decimal
	Bookings      int64
	AverageRating float64
}

type VendorMetrics struct {
	TotalVendors        int64
	ActiveVendors       int64
	TopVendors          []VendorRanking
	CategoryPerformance []CategoryPerformance
}

type GeographicMetrics struct {
	RevenueByCity []GroupRevenue
	TopCities     []GroupRevenue
}

type ConversionMetrics struct {
	Visitors       int64
	Registered     int64
	Bookings       int64
	Completed      int64
	ConversionRate float64
	CompletionRate float64
}

type CustomerLifetimeValueMetrics struct {
	TotalCustomers             int64
	AverageLifetimeValue       decimal.Decimal
	AverageOrderValue          decimal.Decimal
	AverageBookingsPerCustomer float64
	AverageLifespanMonths      float64
}

// ChurnMetrics compares new-user cohorts of adjacent windows. ChurnRate is not clamped: a cohort
// that grew yields a negative ChurnRate and a RetentionRate above 100.
type ChurnMetrics struct {
	CurrentPeriodUsers  int64
	PreviousPeriodUsers int64
	ChurnRate           float64
	RetentionRate       float64
}

type MonthlyBookings struct {
	Month    time.Month
	Bookings int64
	Revenue  decimal.Decimal
}

type SeasonalMetrics struct {
	MonthlyData []MonthlyBookings
	// PeakMonth is nil when there are no bookings at all.
	PeakMonth *time.Month
}

type PredictiveMetrics struct {
	CurrentMonthBookings  int64
	PreviousMonthBookings int64
	GrowthRate            float64
	PredictedNextMonth    int64
	Confidence            float64
}

// MetricDescriptor documents one aggregator of the report.
type MetricDescriptor struct {
	Name  string
	Scope analytics.Scope
	// AllTimeFields lists fields that ignore the window inside an otherwise window-bounded metric.
	AllTimeFields []string
}
