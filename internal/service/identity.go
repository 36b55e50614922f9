package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cuppaapp/cuppa-server/internal/auth"
	"github.com/cuppaapp/cuppa-server/internal/domain"
	"github.com/cuppaapp/cuppa-server/internal/store"
)

// IdentityResolver reconstructs a verified identity from an inbound
// Authorization header. Every failure path degrades to anonymous rather
// than rejecting the request; downstream authorization checks decide
// what anonymous callers may do.
type IdentityResolver struct {
	store  store.Store
	codec  *auth.TokenCodec
	logger *slog.Logger
}

// NewIdentityResolver creates a new identity resolver.
func NewIdentityResolver(store store.Store, codec *auth.TokenCodec, logger *slog.Logger) *IdentityResolver {
	return &IdentityResolver{
		store:  store,
		codec:  codec,
		logger: logger,
	}
}

// Resolve turns an Authorization header value into an identity.
//
// Anonymous results: missing header, header without a Bearer scheme,
// token that fails to parse, and a valid token whose subject no longer
// exists. The role comes from the store, not the token claim, so a role
// change takes effect immediately instead of at token expiry.
func (r *IdentityResolver) Resolve(ctx context.Context, authorizationHeader string) domain.Identity {
	token, ok := bearerToken(authorizationHeader)
	if !ok {
		return domain.Anonymous()
	}

	claims, err := r.codec.Parse(token)
	if err != nil {
		// Token failures are logged with their internal reason but the
		// caller only ever sees an anonymous identity.
		if r.logger != nil {
			r.logger.Debug("token rejected",
				"reason", auth.FailureReason(err),
			)
		}
		return domain.Anonymous()
	}

	user, err := r.store.GetUser(ctx, claims.Subject)
	if err != nil {
		if r.logger != nil {
			r.logger.Debug("token subject not found",
				"user_id", claims.Subject,
			)
		}
		return domain.Anonymous()
	}

	return domain.Authenticated(user)
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme match is case-insensitive.
func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", false
	}
	return token, true
}
