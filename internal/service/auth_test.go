package service_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"github.com/clinicemr/clinic/internal/entity"
	"github.com/clinicemr/clinic/internal/service"
)

func signToken(t *testing.T, key *rsa.PrivateKey, method jwt.SigningMethod, claims entity.UserClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestAuth_User(t *testing.T) {
	t.Parallel()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	auth := service.NewAuth(&key.PublicKey)

	userID := uuid.Must(uuid.NewV4())
	clinicID := uuid.Must(uuid.NewV4())

	claims := entity.UserClaims{
		Role:     entity.RoleDoctor,
		ClinicID: uuid.NullUUID{UUID: clinicID, Valid: true},
		Email:    "house@example.com",
		Name:     "Gregory House",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	user, err := auth.User(context.Background(), signToken(t, key, jwt.SigningMethodRS256, claims))
	require.NoError(t, err)
	require.Equal(t, entity.User{
		ID:       userID,
		Name:     "Gregory House",
		Email:    "house@example.com",
		Role:     entity.RoleDoctor,
		ClinicID: clinicID,
	}, user)

	_, err = auth.User(context.Background(), signToken(t, other, jwt.SigningMethodRS256, claims))
	require.ErrorIs(t, err, entity.ErrUnauthenticated)

	expired := claims
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	_, err = auth.User(context.Background(), signToken(t, key, jwt.SigningMethodRS256, expired))
	require.ErrorIs(t, err, entity.ErrUnauthenticated)

	noSubject := claims
	noSubject.Subject = "admin"

	_, err = auth.User(context.Background(), signToken(t, key, jwt.SigningMethodRS256, noSubject))
	require.ErrorIs(t, err, entity.ErrUnauthenticated)

	_, err = auth.User(context.Background(), "garbage")
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}
