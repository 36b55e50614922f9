package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cuppaapp/cuppa-server/internal/domain"
	domainerrors "github.com/cuppaapp/cuppa-server/internal/errors"
	"github.com/cuppaapp/cuppa-server/internal/service"
)

// ctxKey is the type for context keys to avoid collisions.
type ctxKey string

// identityKey is the context key for the resolved request identity.
const identityKey ctxKey = "identity"

// GetIdentity returns the identity resolved for this request.
// Requests that never went through the identity middleware are anonymous.
func GetIdentity(ctx context.Context) domain.Identity {
	if identity, ok := ctx.Value(identityKey).(domain.Identity); ok {
		return identity
	}
	return domain.Anonymous()
}

// setIdentity stores the resolved identity in context.
func setIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// identityMiddleware resolves the Authorization header into an identity
// for every request. Resolution never fails a request: a bad credential
// degrades to anonymous and the handler decides what anonymous callers
// may do.
func identityMiddleware(resolver *service.IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := resolver.Resolve(r.Context(), r.Header.Get("Authorization"))
			next.ServeHTTP(w, r.WithContext(setIdentity(r.Context(), identity)))
		})
	}
}

// RequireUser returns the authenticated user from context.
// Returns 401 if the request resolved to anonymous.
func (s *Server) RequireUser(ctx context.Context) (*domain.User, error) {
	user, ok := GetIdentity(ctx).User()
	if !ok {
		return nil, huma.Error401Unauthorized("Authentication required")
	}
	return user, nil
}

// RequireAdmin validates the user is authenticated and has admin role.
func (s *Server) RequireAdmin(ctx context.Context) (*domain.User, error) {
	user, err := s.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, domainerrors.Forbidden("Admin access required")
	}
	return user, nil
}
