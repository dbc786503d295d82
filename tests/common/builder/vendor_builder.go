//go:build unit || e2e

package builder

import (
	"wedding-analytics/internal/usecase/queries"

	"github.com/google/uuid"
)

type VendorBuilder struct {
	ID            uuid.UUID
	Name          string
	Category      string
	IsActive      bool
	RatingAverage float64
	RatingCount   int32
}

func NewVendorBuilder() *VendorBuilder {
	return &VendorBuilder{
		ID:            uuid.New(),
		Name:          "Test Vendor",
		Category:      "photography",
		IsActive:      true,
		RatingAverage: 4.5,
		RatingCount:   10,
	}
}

func (v *VendorBuilder) With(mutate func(*VendorBuilder)) *VendorBuilder {
	mutate(v)
	return v
}

func (v *VendorBuilder) WithID(id uuid.UUID) *VendorBuilder {
	v.ID = id
	return v
}

func (v *VendorBuilder) Named(name, category string) *VendorBuilder {
	v.Name = name
	v.Category = category
	return v
}

func (v *VendorBuilder) AsInactive() *VendorBuilder {
	v.IsActive = false
	return v
}

func (v *VendorBuilder) BuildFact() *queries.VendorFact {
	return &queries.VendorFact{
		ID:            v.ID,
		Name:          v.Name,
		Category:      v.Category,
		IsActive:      v.IsActive,
		RatingAverage: v.RatingAverage,
		RatingCount:   v.RatingCount,
	}
}
