package middleware

import (
	"log/slog"
	"net/http"

	"github.com/chris/bidding-wars/pkg/auth"
	"github.com/chris/bidding-wars/pkg/handlers/respond"
)

// IdentityResolver resolves the caller of a request.
type IdentityResolver interface {
	Resolve(r *http.Request) (*auth.Identity, error)
}

// Identity resolves the caller once per request and stores it in the request context.
// Requests without a valid user token are answered with 401 before reaching a handler.
func Identity(resolver IdentityResolver, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			id, err := resolver.Resolve(r)
			if err != nil {
				respond.Error(w, r, logger, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
		}
		return http.HandlerFunc(fn)
	}
}
