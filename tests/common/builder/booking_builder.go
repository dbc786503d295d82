//go:build unit || e2e

package builder

import (
	"time"

	"wedding-analytics/internal/domain/analytics"
	"wedding-analytics/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	VendorID       *uuid.UUID
	VendorName     string
	VendorCategory string
	VenueCity      string
	Status         analytics.BookingStatus
	TotalAmount    decimal.Decimal
	Rating         *int32
	CreatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Status:      analytics.BookingStatusCompleted,
		TotalAmount: decimal.NewFromInt(100000),
		CreatedAt:   time.Now().UTC(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithUser(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithVendor(v *queries.VendorFact) *BookingBuilder {
	id := v.ID
	b.VendorID = &id
	b.VendorName = v.Name
	b.VendorCategory = v.Category
	return b
}

func (b *BookingBuilder) WithCity(city string) *BookingBuilder {
	b.VenueCity = city
	return b
}

func (b *BookingBuilder) WithStatus(s analytics.BookingStatus) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithAmount(amount int64) *BookingBuilder {
	b.TotalAmount = decimal.NewFromInt(amount)
	return b
}

func (b *BookingBuilder) WithRating(r int32) *BookingBuilder {
	b.Rating = &r
	return b
}

func (b *BookingBuilder) At(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	return b
}

func (b *BookingBuilder) BuildFact() *queries.BookingFact {
	return &queries.BookingFact{
		ID:             b.ID,
		UserID:         b.UserID,
		VendorID:       b.VendorID,
		VendorName:     b.VendorName,
		VendorCategory: b.VendorCategory,
		VenueCity:      b.VenueCity,
		Status:         b.Status,
		TotalAmount:    b.TotalAmount,
		Rating:         b.Rating,
		CreatedAt:      b.CreatedAt,
	}
}
