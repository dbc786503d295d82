//go:build unit || e2e

package builder

import (
	"time"

	"wedding-analytics/internal/domain/analytics"
	"wedding-analytics/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID         uuid.UUID
	UserType   analytics.UserType
	IsVerified bool
	CreatedAt  time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:         uuid.New(),
		UserType:   "couple",
		IsVerified: true,
		CreatedAt:  time.Now().UTC(),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) AsType(t analytics.UserType) *UserBuilder {
	u.UserType = t
	return u
}

func (u *UserBuilder) AsUnverified() *UserBuilder {
	u.IsVerified = false
	return u
}

func (u *UserBuilder) At(t time.Time) *UserBuilder {
	u.CreatedAt = t
	return u
}

func (u *UserBuilder) BuildFact() *queries.UserFact {
	return &queries.UserFact{
		ID:         u.ID,
		UserType:   u.UserType,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}
