package readstore

import (
	"context"

	"wedding-analytics/internal/domain/analytics"
	"wedding-analytics/internal/infra"
	sqlc "wedding-analytics/internal/infra/sqlc/generated"
	"wedding-analytics/internal/pkg/pgconv"
	"wedding-analytics/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type AnalyticsReadQueries interface {
	ListBookingFacts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingFactsParams) ([]sqlc.ListBookingFactsRow, error)
	CountBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountBookingsParams) (int64, error)
	SumRevenue(ctx context.Context, db sqlc.DBTX, arg sqlc.SumRevenueParams) (pgtype.Numeric, error)
	ListUserFacts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUserFactsParams) ([]sqlc.ListUserFactsRow, error)
	CountUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.CountUsersParams) (int64, error)
	ListVendorFacts(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListVendorFactsRow, error)
}

type AnalyticsReadStore struct {
	queries AnalyticsReadQueries
	db      sqlc.DBTX
}

func NewAnalyticsReadStore(queries AnalyticsReadQueries, db sqlc.DBTX) *AnalyticsReadStore {
	return &AnalyticsReadStore{
		queries: queries,
		db:      db,
	}
}

var _ queries.AnalyticsReadStore = (*AnalyticsReadStore)(nil)

func (r *AnalyticsReadStore) ListBookings(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingFact, error) {
	startAt, endAt := windowBounds(filter.Window)
	rows, err := r.queries.ListBookingFacts(ctx, r.db, sqlc.ListBookingFactsParams{
		StartAt:  startAt,
		EndAt:    endAt,
		Statuses: statusStrings(filter.Statuses),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	facts := make([]*queries.BookingFact, 0, len(rows))
	for _, row := range rows {
		fact, err := toBookingFact(row)
		if err != nil {
			return nil, err
		}
		facts = append(facts, fact)
	}
	return facts, nil
}

func (r *AnalyticsReadStore) CountBookings(ctx context.Context, filter queries.BookingFilter) (int64, error) {
	startAt, endAt := windowBounds(filter.Window)
	count, err := r.queries.CountBookings(ctx, r.db, sqlc.CountBookingsParams{
		StartAt:  startAt,
		EndAt:    endAt,
		Statuses: statusStrings(filter.Statuses),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err)
	}
	return count, nil
}

// SumRevenue totals revenue-eligible bookings created inside window.
func (r *AnalyticsReadStore) SumRevenue(ctx context.Context, window analytics.TimeWindow) (decimal.Decimal, error) {
	sum, err := r.queries.SumRevenue(ctx, r.db, sqlc.SumRevenueParams{
		StartAt:  pgconv.TimeToPgtype(window.Start),
		EndAt:    pgconv.TimeToPgtype(window.End),
		Statuses: statusStrings(analytics.RevenueStatuses()),
	})
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to sum revenue", err)
	}

	total, err := pgconv.DecimalFromNumeric(sum)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("invalid revenue sum", err, infra.KindInvalidResult)
	}
	return total, nil
}

func (r *AnalyticsReadStore) ListUsers(ctx context.Context, filter queries.UserFilter) ([]*queries.UserFact, error) {
	startAt, endAt := windowBounds(filter.Window)
	rows, err := r.queries.ListUserFacts(ctx, r.db, sqlc.ListUserFactsParams{
		StartAt:      startAt,
		EndAt:        endAt,
		VerifiedOnly: filter.VerifiedOnly,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}

	facts := make([]*queries.UserFact, 0, len(rows))
	for _, row := range rows {
		facts = append(facts, &queries.UserFact{
			ID:         row.ID,
			UserType:   analytics.UserType(row.UserType),
			IsVerified: row.IsVerified,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return facts, nil
}

func (r *AnalyticsReadStore) CountUsers(ctx context.Context, filter queries.UserFilter) (int64, error) {
	startAt, endAt := windowBounds(filter.Window)
	count, err := r.queries.CountUsers(ctx, r.db, sqlc.CountUsersParams{
		StartAt:      startAt,
		EndAt:        endAt,
		VerifiedOnly: filter.VerifiedOnly,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count users", err)
	}
	return count, nil
}

func (r *AnalyticsReadStore) ListVendors(ctx context.Context) ([]*queries.VendorFact, error) {
	rows, err := r.queries.ListVendorFacts(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vendors", err)
	}

	facts := make([]*queries.VendorFact, 0, len(rows))
	for _, row := range rows {
		rating, err := pgconv.Float64FromNumeric(row.RatingAverage)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid vendor rating", err, infra.KindInvalidResult)
		}
		facts = append(facts, &queries.VendorFact{
			ID:            row.ID,
			Name:          row.Name,
			Category:      row.Category,
			IsActive:      row.IsActive,
			RatingAverage: rating,
			RatingCount:   row.RatingCount,
		})
	}
	return facts, nil
}

func toBookingFact(row sqlc.ListBookingFactsRow) (*queries.BookingFact, error) {
	amount, err := pgconv.DecimalFromNumeric(row.TotalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking amount", err, infra.KindInvalidResult)
	}

	return &queries.BookingFact{
		ID:             row.ID,
		UserID:         row.UserID,
		VendorID:       pgconv.UUIDPtrFromPgtype(row.VendorID),
		VendorName:     pgconv.StringFromPgtype(row.VendorName),
		VendorCategory: pgconv.StringFromPgtype(row.VendorCategory),
		VenueID:        pgconv.UUIDPtrFromPgtype(row.VenueID),
		VenueCity:      pgconv.StringFromPgtype(row.VenueCity),
		Status:         analytics.BookingStatus(row.Status),
		TotalAmount:    amount,
		Rating:         pgconv.Int32PtrFromInt2(row.Rating),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

// windowBounds maps a nil window to NULL bounds, which the queries treat as unbounded.
func windowBounds(w *analytics.TimeWindow) (pgtype.Timestamptz, pgtype.Timestamptz) {
	if w == nil {
		return pgconv.TimePtrToPgtype(nil), pgconv.TimePtrToPgtype(nil)
	}
	return pgconv.TimeToPgtype(w.Start), pgconv.TimeToPgtype(w.End)
}

func statusStrings(statuses []analytics.BookingStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}
