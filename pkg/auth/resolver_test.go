package auth_test

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/bidding-wars/pkg/auth"
	"github.com/chris/bidding-wars/pkg/auth/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newKeyPair(t *testing.T) (*ecdsa.PrivateKey, string) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return key, string(pemBytes)
}

func signToken(t *testing.T, key *ecdsa.PrivateKey, subject, audience string, expiresAt time.Time) string {
	t.Helper()
	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    "urn:whopcom:exp-proxy",
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(fixedNow.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func newTestResolver(t *testing.T, access auth.AccessChecker) (*auth.Resolver, *ecdsa.PrivateKey) {
	key, publicPEM := newKeyPair(t)
	resolver, err := auth.NewResolver(publicPEM, "app_1", access)
	require.NoError(t, err)
	resolver.Now = func() time.Time { return fixedNow }
	return resolver, key
}

func TestResolve(t *testing.T) {
	t.Run("Admin Of Community", func(t *testing.T) {
		access := mocks.NewAccessChecker(t)
		resolver, key := newTestResolver(t, access)
		access.On("CheckAccess", mock.Anything, "user_1", "exp_1").Return(auth.AccessAdmin, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/auctions", nil)
		req.Header.Set(auth.UserTokenHeader, signToken(t, key, "user_1", "app_1", fixedNow.Add(time.Hour)))
		req.Header.Set(auth.ExperienceHeader, "exp_1")

		id, err := resolver.Resolve(req)

		require.NoError(t, err)
		assert.Equal(t, &auth.Identity{UserId: "user_1", CommunityId: "exp_1", AccessLevel: auth.AccessAdmin}, id)
		assert.True(t, id.IsAdmin("exp_1"))
		assert.False(t, id.IsAdmin("exp_2"))
	})

	t.Run("No Experience Header Skips Access Check", func(t *testing.T) {
		access := mocks.NewAccessChecker(t)
		resolver, key := newTestResolver(t, access)

		req := httptest.NewRequest(http.MethodGet, "/barracks", nil)
		req.Header.Set(auth.UserTokenHeader, signToken(t, key, "user_1", "app_1", fixedNow.Add(time.Hour)))

		id, err := resolver.Resolve(req)

		require.NoError(t, err)
		assert.Equal(t, "user_1", id.UserId)
		assert.Empty(t, id.CommunityId)
		assert.Equal(t, auth.AccessNone, id.AccessLevel)
	})

	t.Run("Missing Token", func(t *testing.T) {
		resolver, _ := newTestResolver(t, nil)

		_, err := resolver.Resolve(httptest.NewRequest(http.MethodGet, "/auctions", nil))

		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("Expired Token", func(t *testing.T) {
		resolver, key := newTestResolver(t, nil)
		req := httptest.NewRequest(http.MethodGet, "/auctions", nil)
		req.Header.Set(auth.UserTokenHeader, signToken(t, key, "user_1", "app_1", fixedNow.Add(-time.Second)))

		_, err := resolver.Resolve(req)

		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("Wrong Audience", func(t *testing.T) {
		resolver, key := newTestResolver(t, nil)
		req := httptest.NewRequest(http.MethodGet, "/auctions", nil)
		req.Header.Set(auth.UserTokenHeader, signToken(t, key, "user_1", "another_app", fixedNow.Add(time.Hour)))

		_, err := resolver.Resolve(req)

		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("Signed By Another Key", func(t *testing.T) {
		resolver, _ := newTestResolver(t, nil)
		otherKey, _ := newKeyPair(t)
		req := httptest.NewRequest(http.MethodGet, "/auctions", nil)
		req.Header.Set(auth.UserTokenHeader, signToken(t, otherKey, "user_1", "app_1", fixedNow.Add(time.Hour)))

		_, err := resolver.Resolve(req)

		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("No Access", func(t *testing.T) {
		access := mocks.NewAccessChecker(t)
		resolver, key := newTestResolver(t, access)
		access.On("CheckAccess", mock.Anything, "user_1", "exp_1").Return(auth.AccessNone, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/auctions", nil)
		req.Header.Set(auth.UserTokenHeader, signToken(t, key, "user_1", "app_1", fixedNow.Add(time.Hour)))
		req.Header.Set(auth.ExperienceHeader, "exp_1")

		_, err := resolver.Resolve(req)

		assert.ErrorIs(t, err, auth.ErrNoAccess)
	})

	t.Run("Access Check Fails", func(t *testing.T) {
		access := mocks.NewAccessChecker(t)
		resolver, key := newTestResolver(t, access)
		access.On("CheckAccess", mock.Anything, "user_1", "exp_1").Return(auth.AccessLevel(""), errors.New("platform down")).Once()

		req := httptest.NewRequest(http.MethodGet, "/auctions", nil)
		req.Header.Set(auth.UserTokenHeader, signToken(t, key, "user_1", "app_1", fixedNow.Add(time.Hour)))
		req.Header.Set(auth.ExperienceHeader, "exp_1")

		_, err := resolver.Resolve(req)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrUnauthenticated)
		assert.Contains(t, err.Error(), "failed to check access")
	})
}

func TestIdentityContext(t *testing.T) {
	id := &auth.Identity{UserId: "user_1"}
	ctx := auth.WithIdentity(context.Background(), id)

	assert.Same(t, id, auth.FromContext(ctx))
	assert.Nil(t, auth.FromContext(context.Background()))
}
