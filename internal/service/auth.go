package service

import (
	"context"
	"crypto/rsa"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v4"

	"github.com/clinicemr/clinic/internal/entity"
)

// Auth verifies access tokens issued by the identity service with its public key.
type Auth struct {
	publicKey *rsa.PublicKey
}

func NewAuth(publicKey *rsa.PublicKey) *Auth {
	return &Auth{
		publicKey: publicKey,
	}
}

func (a *Auth) User(_ context.Context, accessToken string) (entity.User, error) {
	var claims entity.UserClaims

	token, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (any, error) {
		_, ok := token.Method.(*jwt.SigningMethodRSA)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return a.publicKey, nil
	})
	if err != nil {
		return entity.User{}, fmt.Errorf("%w: parse access token: %w", entity.ErrUnauthenticated, err)
	}

	if !token.Valid {
		return entity.User{}, fmt.Errorf("%w: invalid access token", entity.ErrUnauthenticated)
	}

	userID, err := uuid.FromString(claims.Subject)
	if err != nil {
		return entity.User{}, fmt.Errorf("%w: subject %q: %w", entity.ErrUnauthenticated, claims.Subject, err)
	}

	if claims.Role == "" {
		return entity.User{}, fmt.Errorf("%w: access token has no role", entity.ErrUnauthenticated)
	}

	return entity.User{
		ID:       userID,
		Name:     claims.Name,
		Email:    claims.Email,
		Role:     claims.Role,
		ClinicID: claims.ClinicID.UUID,
	}, nil
}
