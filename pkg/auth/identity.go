package auth

import "context"

// AccessLevel is the user's role in a community as reported by the platform.
type AccessLevel string

const (
	AccessAdmin    AccessLevel = "admin"
	AccessCustomer AccessLevel = "customer"
	AccessNone     AccessLevel = "no_access"
)

// Identity is the resolved caller of a request.
type Identity struct {
	UserId      string
	CommunityId string
	AccessLevel AccessLevel
}

// IsAdmin reports whether the caller administers communityID.
func (i *Identity) IsAdmin(communityID string) bool {
	return i != nil && i.AccessLevel == AccessAdmin && i.CommunityId == communityID
}

type contextKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity stored by WithIdentity, or nil.
func FromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(contextKey{}).(*Identity)
	return id
}
