package auth

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockery --name AccessChecker --output ./mocks --outpkg mocks

const (
	// UserTokenHeader carries the platform-signed user token on every proxied request.
	UserTokenHeader = "x-whop-user-token"
	// ExperienceHeader names the community the app is embedded in.
	ExperienceHeader = "x-whop-experience-id"

	tokenIssuer = "urn:whopcom:exp-proxy"
)

// ErrUnauthenticated is returned when the request carries no valid user token.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrNoAccess is returned when the user has no access to the community.
var ErrNoAccess = errors.New("no access to community")

// AccessChecker looks up a user's access level in a community.
type AccessChecker interface {
	CheckAccess(ctx context.Context, userID, communityID string) (AccessLevel, error)
}

// Claims are the claims of a platform user token.
type Claims struct {
	jwt.RegisteredClaims
}

// Resolver turns a request into an Identity. It is the only place tokens are parsed.
type Resolver struct {
	PublicKey *ecdsa.PublicKey
	AppID     string
	Access    AccessChecker
	Now       func() time.Time
}

// NewResolver parses the platform's PEM-encoded ES256 public key.
func NewResolver(publicKeyPEM, appID string, access AccessChecker) (*Resolver, error) {
	key, err := jwt.ParseECPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("failed to parse user token public key: %w", err)
	}
	return &Resolver{PublicKey: key, AppID: appID, Access: access, Now: time.Now}, nil
}

// ValidateToken parses and validates a user token, returning its claims.
func (r *Resolver) ValidateToken(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(r.Now),
	}
	if r.AppID != "" {
		opts = append(opts, jwt.WithAudience(r.AppID))
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return r.PublicKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// Resolve authenticates the request and looks up the caller's access to the community named in
// the experience header. The access check happens once here and nowhere else.
func (r *Resolver) Resolve(req *http.Request) (*Identity, error) {
	tokenStr := req.Header.Get(UserTokenHeader)
	if tokenStr == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := r.ValidateToken(tokenStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	id := &Identity{UserId: claims.Subject, AccessLevel: AccessNone}

	communityID := req.Header.Get(ExperienceHeader)
	if communityID == "" || r.Access == nil {
		return id, nil
	}

	level, err := r.Access.CheckAccess(req.Context(), id.UserId, communityID)
	if err != nil {
		return nil, fmt.Errorf("failed to check access for user %s: %w", id.UserId, err)
	}
	if level == AccessNone {
		return nil, ErrNoAccess
	}

	id.CommunityId = communityID
	id.AccessLevel = level
	return id, nil
}
