package queries

import (
	"context"
	"sort"
	"strings"
	"time"

	"wedding-analytics/internal/domain/analytics"
	"wedding-analytics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	topVendorsLimit = 10
	topCitiesLimit  = 10
	dateLayout      = "2006-01-02"
)

// aggregator computes one section of the report. Each one writes only its own Report field.
type aggregator struct {
	name          string
	scope         analytics.Scope
	allTimeFields []string
	run           func(ctx context.Context, window analytics.TimeWindow, report *Report) error
}

func (q *analyticsQueriesImpl) aggregators() []aggregator {
	return []aggregator{
		{name: "revenue", scope: analytics.ScopeWindowBounded, run: func(ctx context.Context, w analytics.TimeWindow, r *Report) (err error) {
			r.Revenue, err = q.revenue(ctx, w)
			return
		}},
		{name: "userGrowth", scope: analytics.ScopeWindowBounded, allTimeFields: []string{"totalUsers"}, run: func(ctx context.Context, w analytics.TimeWindow, r *Report) (err error) {
			r.UserGrowth, err = q.userGrowth(ctx, w)
			return
		}},
		{name: "bookings", scope: analytics.ScopeWindowBounded, run: func(ctx context.Context, w analytics.TimeWindow, r *Report) (err error) {
			r.Bookings, err = q.bookings(ctx, w)
			return
		}},
		{name: "vendors", scope: analytics.ScopeWindowBounded, allTimeFields: []string{"totalVendors", "activeVendors", "categoryPerformance"}, run: func(ctx context.Context, w analytics.TimeWindow, r *Report) (err error) {
			r.Vendors, err = q.vendorPerformance(ctx, w)
			return
		}},
		{name: "geographic", scope: analytics.ScopeAllTime, run: func(ctx context.Context, _ analytics.TimeWindow, r *Report) (err error) {
			r.Geographic, err = q.geographic(ctx)
			return
		}},
		{name: "conversion", scope: analytics.ScopeWindowBounded, run: func(ctx context.Context, w analytics.TimeWindow, r *Report) (err error) {
			r.Conversion, err = q.conversionFunnel(ctx, w)
			return
		}},
		{name: "customerLifetimeValue", scope: analytics.ScopeAllTime, run: func(ctx context.Context, _ analytics.TimeWindow, r *Report) (err error) {
			r.CustomerLifetimeValue, err = q.customerLifetimeValue(ctx)
			return
		}},
		{name: "churn", scope: analytics.ScopeWindowBounded, run: func(ctx context.Context, w analytics.TimeWindow, r *Report) (err error) {
			r.Churn, err = q.churn(ctx, w)
			return
		}},
		{name: "seasonal", scope: analytics.ScopeAllTime, run: func(ctx context.Context, _ analytics.TimeWindow, r *Report) (err error) {
			r.Seasonal, err = q.seasonality(ctx)
			return
		}},
		{name: "predictive", scope: analytics.ScopeFixedTrailing, run: func(ctx context.Context, w analytics.TimeWindow, r *Report) (err error) {
			r.Predictive, err = q.forecast(ctx, w.End)
			return
		}},
	}
}

// =============================================================================
// Revenue
// =============================================================================

func (q *analyticsQueriesImpl) revenue(ctx context.Context, w analytics.TimeWindow) (*RevenueMetrics, error) {
	rows, err := q.store.ListBookings(ctx, BookingFilter{Window: &w, Statuses: analytics.RevenueStatuses()})
	if err != nil {
		return nil, errs.Wrap(err, "list revenue bookings")
	}

	total := decimal.Zero
	byDay := newRevenueBuckets()
	byCategory := newRevenueBuckets()
	for _, b := range rows {
		total = total.Add(b.TotalAmount)
		byDay.add(dayKey(b.CreatedAt), b.TotalAmount)
		byCategory.add(orDefault(b.VendorCategory, analytics.UncategorizedName), b.TotalAmount)
	}

	growth, err := q.growth.Rate(ctx, analytics.GrowthMetricRevenue, w)
	if err != nil {
		return nil, err
	}

	count := int64(len(rows))
	return &RevenueMetrics{
		TotalRevenue:      total,
		TotalBookings:     count,
		AverageOrderValue: analytics.Average(total, count),
		RevenueByDay:      byDay.daily(),
		RevenueByCategory: byCategory.ranked(),
		GrowthRate:        growth,
	}, nil
}

// =============================================================================
// User growth
// =============================================================================

func (q *analyticsQueriesImpl) userGrowth(ctx context.Context, w analytics.TimeWindow) (*UserGrowthMetrics, error) {
	total, err := q.store.CountUsers(ctx, UserFilter{})
	if err != nil {
		return nil, errs.Wrap(err, "count all users")
	}
	users, err := q.store.ListUsers(ctx, UserFilter{Window: &w})
	if err != nil {
		return nil, errs.Wrap(err, "list new users")
	}

	byType := newCountBuckets()
	byDay := newCountBuckets()
	for _, u := range users {
		byType.add(u.UserType.String())
		byDay.add(dayKey(u.CreatedAt))
	}

	growth, err := q.growth.Rate(ctx, analytics.GrowthMetricUsers, w)
	if err != nil {
		return nil, err
	}

	return &UserGrowthMetrics{
		TotalUsers:  total,
		NewUsers:    int64(len(users)),
		UsersByType: byType.ranked(),
		UsersByDay:  byDay.daily(),
		GrowthRate:  growth,
	}, nil
}

// =============================================================================
// Bookings
// =============================================================================

func (q *analyticsQueriesImpl) bookings(ctx context.Context, w analytics.TimeWindow) (*BookingMetrics, error) {
	rows, err := q.store.ListBookings(ctx, BookingFilter{Window: &w})
	if err != nil {
		return nil, errs.Wrap(err, "list bookings")
	}
	totalUsers, err := q.store.CountUsers(ctx, UserFilter{})
	if err != nil {
		return nil, errs.Wrap(err, "count all users")
	}

	byStatus := newCountBuckets()
	byDay := newCountBuckets()
	for _, b := range rows {
		byStatus.add(b.Status.String())
		byDay.add(dayKey(b.CreatedAt))
	}

	total := int64(len(rows))
	return &BookingMetrics{
		TotalBookings:    total,
		BookingsByStatus: byStatus.ranked(),
		BookingsByDay:    byDay.daily(),
		ConversionRate:   analytics.Percent(total, totalUsers),
	}, nil
}

// =============================================================================
// Vendor performance
// =============================================================================

type vendorAccumulator struct {
	ranking     VendorRanking
	ratingSum   int64
	ratingCount int64
}

func (q *analyticsQueriesImpl) vendorPerformance(ctx context.Context, w analytics.TimeWindow) (*VendorMetrics, error) {
	vendors, err := q.store.ListVendors(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list vendors")
	}
	windowed, err := q.store.ListBookings(ctx, BookingFilter{Window: &w})
	if err != nil {
		return nil, errs.Wrap(err, "list windowed vendor bookings")
	}
	allTime, err := q.store.ListBookings(ctx, BookingFilter{})
	if err != nil {
		return nil, errs.Wrap(err, "list all-time vendor bookings")
	}

	metrics := &VendorMetrics{
		TopVendors:          topVendors(windowed),
		CategoryPerformance: categoryPerformance(vendors, allTime),
	}
	for _, v := range vendors {
		metrics.TotalVendors++
		if v.IsActive {
			metrics.ActiveVendors++
		}
	}
	return metrics, nil
}

func topVendors(rows []*BookingFact) []VendorRanking {
	acc := make(map[uuid.UUID]*vendorAccumulator)
	for _, b := range rows {
		if b.VendorID == nil {
			continue
		}
		a, ok := acc[*b.VendorID]
		if !ok {
			a = &vendorAccumulator{ranking: VendorRanking{
				VendorID: *b.VendorID,
				Name:     b.VendorName,
				Category: orDefault(b.VendorCategory, analytics.UncategorizedName),
				Revenue:  decimal.Zero,
			}}
			acc[*b.VendorID] = a
		}
		a.ranking.Revenue = a.ranking.Revenue.Add(recognisedRevenue(b))
		a.ranking.Bookings++
		if b.Rating != nil {
			a.ratingSum += int64(*b.Rating)
			a.ratingCount++
		}
	}

	out := make([]VendorRanking, 0, len(acc))
	for _, a := range acc {
		if a.ratingCount > 0 {
			a.ranking.AverageRating = float64(a.ratingSum) / float64(a.ratingCount)
		}
		out = append(out, a.ranking)
	}
	// vendor id breaks revenue ties so the top list is stable across runs
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Revenue.Cmp(out[j].Revenue); c != 0 {
			return c > 0
		}
		return out[i].VendorID.String() < out[j].VendorID.String()
	})
	if len(out) > topVendorsLimit {
		out = out[:topVendorsLimit]
	}
	return out
}

func categoryPerformance(vendors []*VendorFact, rows []*BookingFact) []CategoryPerformance {
	type categoryAccumulator struct {
		perf        CategoryPerformance
		ratingSum   float64
		ratedVendor int64
	}
	acc := make(map[string]*categoryAccumulator)
	get := func(category string) *categoryAccumulator {
		category = orDefault(category, analytics.UncategorizedName)
		a, ok := acc[category]
		if !ok {
			a = &categoryAccumulator{perf: CategoryPerformance{Category: category, Revenue: decimal.Zero}}
			acc[category] = a
		}
		return a
	}

	vendorCategory := make(map[uuid.UUID]string, len(vendors))
	for _, v := range vendors {
		vendorCategory[v.ID] = v.Category
		a := get(v.Category)
		a.perf.Vendors++
		if v.IsActive {
			a.perf.ActiveVendors++
		}
		if v.RatingCount > 0 {
			a.ratingSum += v.RatingAverage
			a.ratedVendor++
		}
	}

	for _, b := range rows {
		if b.VendorID == nil {
			continue
		}
		category, ok := vendorCategory[*b.VendorID]
		if !ok {
			continue
		}
		a := get(category)
		a.perf.Revenue = a.perf.Revenue.Add(recognisedRevenue(b))
		a.perf.Bookings++
	}

	out := make([]CategoryPerformance, 0, len(acc))
	for _, a := range acc {
		if a.ratedVendor > 0 {
			a.perf.AverageRating = a.ratingSum / float64(a.ratedVendor)
		}
		out = append(out, a.perf)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Revenue.Cmp(out[j].Revenue); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// =============================================================================
// Geographic
// =============================================================================

func (q *analyticsQueriesImpl) geographic(ctx context.Context) (*GeographicMetrics, error) {
	rows, err := q.store.ListBookings(ctx, BookingFilter{})
	if err != nil {
		return nil, errs.Wrap(err, "list bookings by city")
	}

	byCity := newRevenueBuckets()
	for _, b := range rows {
		byCity.add(orDefault(b.VenueCity, analytics.UnknownCity), recognisedRevenue(b))
	}

	cities := byCity.ranked()
	top := cities
	if len(top) > topCitiesLimit {
		top = top[:topCitiesLimit]
	}
	return &GeographicMetrics{
		RevenueByCity: cities,
		TopCities:     top,
	}, nil
}

// =============================================================================
// Conversion funnel
// =============================================================================

// conversionFunnel uses new users as the visitor proxy; there is no traffic tracking behind it.
func (q *analyticsQueriesImpl) conversionFunnel(ctx context.Context, w analytics.TimeWindow) (*ConversionMetrics, error) {
	visitors, err := q.store.CountUsers(ctx, UserFilter{Window: &w})
	if err != nil {
		return nil, errs.Wrap(err, "count visitors")
	}
	registered, err := q.store.CountUsers(ctx, UserFilter{Window: &w, VerifiedOnly: true})
	if err != nil {
		return nil, errs.Wrap(err, "count verified users")
	}
	bookings, err := q.store.CountBookings(ctx, BookingFilter{Window: &w})
	if err != nil {
		return nil, errs.Wrap(err, "count bookings")
	}
	completed, err := q.store.CountBookings(ctx, BookingFilter{Window: &w, Statuses: []analytics.BookingStatus{analytics.BookingStatusCompleted}})
	if err != nil {
		return nil, errs.Wrap(err, "count completed bookings")
	}

	return &ConversionMetrics{
		Visitors:       visitors,
		Registered:     registered,
		Bookings:       bookings,
		Completed:      completed,
		ConversionRate: analytics.Percent(bookings, visitors),
		CompletionRate: analytics.Percent(completed, bookings),
	}, nil
}

// =============================================================================
// Customer lifetime value
// =============================================================================

const lifespanMonth = 30 * analytics.Day

func (q *analyticsQueriesImpl) customerLifetimeValue(ctx context.Context) (*CustomerLifetimeValueMetrics, error) {
	rows, err := q.store.ListBookings(ctx, BookingFilter{})
	if err != nil {
		return nil, errs.Wrap(err, "list customer bookings")
	}

	type customer struct {
		spent       decimal.Decimal
		bookings    int64
		first, last time.Time
	}
	customers := make(map[uuid.UUID]*customer)
	for _, b := range rows {
		c, ok := customers[b.UserID]
		if !ok {
			customers[b.UserID] = &customer{spent: recognisedRevenue(b), bookings: 1, first: b.CreatedAt, last: b.CreatedAt}
			continue
		}
		c.spent = c.spent.Add(recognisedRevenue(b))
		c.bookings++
		if b.CreatedAt.Before(c.first) {
			c.first = b.CreatedAt
		}
		if b.CreatedAt.After(c.last) {
			c.last = b.CreatedAt
		}
	}

	n := int64(len(customers))
	metrics := &CustomerLifetimeValueMetrics{
		TotalCustomers:       n,
		AverageLifetimeValue: decimal.Zero,
		AverageOrderValue:    decimal.Zero,
	}
	if n == 0 {
		return metrics, nil
	}

	spent, aov := decimal.Zero, decimal.Zero
	var bookings int64
	var lifespan float64
	for _, c := range customers {
		spent = spent.Add(c.spent)
		aov = aov.Add(analytics.Average(c.spent, c.bookings))
		bookings += c.bookings
		// single-booking customers contribute a zero lifespan
		lifespan += float64(c.last.Sub(c.first)) / float64(lifespanMonth)
	}
	metrics.AverageLifetimeValue = analytics.Average(spent, n)
	metrics.AverageOrderValue = analytics.Average(aov, n)
	metrics.AverageBookingsPerCustomer = float64(bookings) / float64(n)
	metrics.AverageLifespanMonths = lifespan / float64(n)
	return metrics, nil
}

// =============================================================================
// Churn
// =============================================================================

// churn compares new-user cohort sizes of adjacent windows; it is a proxy, not retention tracking.
func (q *analyticsQueriesImpl) churn(ctx context.Context, w analytics.TimeWindow) (*ChurnMetrics, error) {
	prevWindow := w.Previous()
	current, err := q.store.CountUsers(ctx, UserFilter{Window: &w})
	if err != nil {
		return nil, errs.Wrap(err, "count current cohort")
	}
	previous, err := q.store.CountUsers(ctx, UserFilter{Window: &prevWindow})
	if err != nil {
		return nil, errs.Wrap(err, "count previous cohort")
	}

	churnRate := analytics.Percent(previous-current, previous)
	return &ChurnMetrics{
		CurrentPeriodUsers:  current,
		PreviousPeriodUsers: previous,
		ChurnRate:           churnRate,
		RetentionRate:       100 - churnRate,
	}, nil
}

// =============================================================================
// Seasonality
// =============================================================================

func (q *analyticsQueriesImpl) seasonality(ctx context.Context) (*SeasonalMetrics, error) {
	rows, err := q.store.ListBookings(ctx, BookingFilter{})
	if err != nil {
		return nil, errs.Wrap(err, "list seasonal bookings")
	}

	var months [12]MonthlyBookings
	for i := range months {
		months[i] = MonthlyBookings{Month: time.Month(i + 1), Revenue: decimal.Zero}
	}
	for _, b := range rows {
		m := &months[b.CreatedAt.UTC().Month()-1]
		m.Bookings++
		m.Revenue = m.Revenue.Add(recognisedRevenue(b))
	}

	metrics := &SeasonalMetrics{MonthlyData: make([]MonthlyBookings, 0, len(months))}
	for _, m := range months {
		if m.Bookings == 0 {
			continue
		}
		metrics.MonthlyData = append(metrics.MonthlyData, m)
		// strict comparison keeps the earliest month on ties
		if metrics.PeakMonth == nil || m.Bookings > months[*metrics.PeakMonth-1].Bookings {
			peak := m.Month
			metrics.PeakMonth = &peak
		}
	}
	return metrics, nil
}

// =============================================================================
// Forecast
// =============================================================================

// forecast always compares the trailing 30 days with the 30 days before, whatever range was requested.
func (q *analyticsQueriesImpl) forecast(ctx context.Context, now time.Time) (*PredictiveMetrics, error) {
	current := analytics.ResolveWindow(analytics.ForecastWindowRange.String(), now)
	previous := current.Previous()

	cur, err := q.store.CountBookings(ctx, BookingFilter{Window: &current})
	if err != nil {
		return nil, errs.Wrap(err, "count trailing bookings")
	}
	prev, err := q.store.CountBookings(ctx, BookingFilter{Window: &previous})
	if err != nil {
		return nil, errs.Wrap(err, "count prior bookings")
	}

	growth := analytics.PercentChange(decimal.NewFromInt(cur), decimal.NewFromInt(prev))
	return &PredictiveMetrics{
		CurrentMonthBookings:  cur,
		PreviousMonthBookings: prev,
		GrowthRate:            growth,
		PredictedNextMonth:    analytics.ProjectNext(cur, growth),
		Confidence:            analytics.ForecastConfidence(growth),
	}, nil
}

// =============================================================================
// Buckets
// =============================================================================

type revenueBuckets struct {
	order []string
	items map[string]*GroupRevenue
}

func newRevenueBuckets() *revenueBuckets {
	return &revenueBuckets{items: make(map[string]*GroupRevenue)}
}

func (b *revenueBuckets) add(key string, amount decimal.Decimal) {
	it, ok := b.items[key]
	if !ok {
		it = &GroupRevenue{Key: key, Revenue: decimal.Zero}
		b.items[key] = it
		b.order = append(b.order, key)
	}
	it.Revenue = it.Revenue.Add(amount)
	it.Bookings++
}

// ranked sorts by revenue descending, then key ascending.
func (b *revenueBuckets) ranked() []GroupRevenue {
	out := make([]GroupRevenue, 0, len(b.items))
	for _, k := range b.order {
		out = append(out, *b.items[k])
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Revenue.Cmp(out[j].Revenue); c != 0 {
			return c > 0
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func (b *revenueBuckets) daily() []DailyRevenue {
	out := make([]DailyRevenue, 0, len(b.items))
	for _, k := range b.order {
		it := b.items[k]
		out = append(out, DailyRevenue{Date: it.Key, Revenue: it.Revenue, Bookings: it.Bookings})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

type countBuckets struct {
	counts map[string]int64
}

func newCountBuckets() *countBuckets {
	return &countBuckets{counts: make(map[string]int64)}
}

func (b *countBuckets) add(key string) {
	b.counts[key]++
}

// ranked sorts by count descending, then key ascending.
func (b *countBuckets) ranked() []GroupCount {
	out := make([]GroupCount, 0, len(b.counts))
	for k, c := range b.counts {
		out = append(out, GroupCount{Key: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func (b *countBuckets) daily() []DailyCount {
	out := make([]DailyCount, 0, len(b.counts))
	for k, c := range b.counts {
		out = append(out, DailyCount{Date: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func dayKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// recognisedRevenue is the booking's amount when its status counts as revenue, zero otherwise.
// Callers still count the booking itself whatever its status.
func recognisedRevenue(b *BookingFact) decimal.Decimal {
	if b.Status.CountsAsRevenue() {
		return b.TotalAmount
	}
	return decimal.Zero
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
