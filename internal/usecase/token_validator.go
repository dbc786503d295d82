package usecase

import (
	"wedding-analytics/internal/domain/user"
	"wedding-analytics/internal/pkg/errs"
	"wedding-analytics/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrTokenWithoutSubject = errs.New("token has no subject")

// TokenValidator resolves a bearer token to the caller identity checked by the admin gate.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", errs.Wrap(err, "validate bearer token")
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, "", ErrTokenWithoutSubject
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Wrap(err, "token role")
	}

	return claims.UserID, role, nil
}
