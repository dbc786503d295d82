//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type UserRow struct {
	UserType   string
	IsVerified bool
	CreatedAt  time.Time
}

func CreateTestUser(t *testing.T, db DBLike, row UserRow) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	if row.UserType == "" {
		row.UserType = "couple"
	}
	email := "user-" + userID.String() + "@example.com"

	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, email, user_type, is_verified, created_at) VALUES ($1, $2, $3, $4, $5)",
		userID, email, row.UserType, row.IsVerified, row.CreatedAt)
	require.NoError(t, err)

	return userID
}

func CreateTestVendor(t *testing.T, db DBLike, name, category string, active bool) uuid.UUID {
	t.Helper()

	vendorID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO vendors (id, name, category, is_active) VALUES ($1, $2, $3, $4)",
		vendorID, name, category, active)
	require.NoError(t, err)

	return vendorID
}

func CreateTestVenue(t *testing.T, db DBLike, name, city string) uuid.UUID {
	t.Helper()

	venueID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO venues (id, name, city) VALUES ($1, $2, $3)",
		venueID, name, city)
	require.NoError(t, err)

	return venueID
}

type BookingRow struct {
	UserID      uuid.UUID
	VendorID    *uuid.UUID
	VenueID     *uuid.UUID
	Status      string
	TotalAmount string
	Rating      *int16
	CreatedAt   time.Time
}

func CreateTestBooking(t *testing.T, db DBLike, row BookingRow) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	if row.Status == "" {
		row.Status = "completed"
	}
	if row.TotalAmount == "" {
		row.TotalAmount = "0"
	}

	_, err := db.Exec(context.Background(),
		`INSERT INTO bookings (id, user_id, vendor_id, venue_id, status, total_amount, rating, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8)`,
		bookingID, row.UserID, row.VendorID, row.VenueID, row.Status, row.TotalAmount, row.Rating, row.CreatedAt)
	require.NoError(t, err)

	return bookingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
