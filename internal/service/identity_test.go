package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuppaapp/cuppa-server/internal/auth"
	"github.com/cuppaapp/cuppa-server/internal/domain"
	"github.com/cuppaapp/cuppa-server/internal/store/sqlite"
)

func setupIdentityTest(t *testing.T) (*IdentityResolver, *AuthService, *sqlite.Store, *auth.TokenCodec) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	s, err := sqlite.Open(dbPath, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	codec, err := auth.NewTokenCodec(testTokenSecret, 15*time.Minute)
	require.NoError(t, err)

	return NewIdentityResolver(s, codec, nil), NewAuthService(s, codec, nil), s, codec
}

func TestIdentityResolver_NoHeader(t *testing.T) {
	resolver, _, _, _ := setupIdentityTest(t)

	identity := resolver.Resolve(context.Background(), "")
	assert.False(t, identity.IsAuthenticated())
	assert.Equal(t, domain.RoleGuest, identity.Role())
}

func TestIdentityResolver_NonBearerHeader(t *testing.T) {
	resolver, _, _, _ := setupIdentityTest(t)

	for _, header := range []string{
		"Basic dXNlcjpwYXNz",
		"Bearer",
		"Bearer ",
		"garbage",
	} {
		identity := resolver.Resolve(context.Background(), header)
		assert.False(t, identity.IsAuthenticated(), "header %q", header)
	}
}

func TestIdentityResolver_GarbageToken(t *testing.T) {
	resolver, _, _, _ := setupIdentityTest(t)

	identity := resolver.Resolve(context.Background(), "Bearer not-a-real-token")
	assert.False(t, identity.IsAuthenticated())
}

func TestIdentityResolver_ExpiredToken(t *testing.T) {
	resolver, authService, _, codec := setupIdentityTest(t)
	ctx := context.Background()

	user, err := authService.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "secret12"})
	require.NoError(t, err)

	// Issue a token that expired before now.
	token, err := codec.Issue(user.ID, user.Role, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	identity := resolver.Resolve(ctx, "Bearer "+token)
	assert.False(t, identity.IsAuthenticated())
}

func TestIdentityResolver_UnknownSubject(t *testing.T) {
	resolver, _, _, codec := setupIdentityTest(t)

	token, err := codec.Issue("user-deleted", domain.RoleMember, time.Now())
	require.NoError(t, err)

	identity := resolver.Resolve(context.Background(), "Bearer "+token)
	assert.False(t, identity.IsAuthenticated())
}

func TestIdentityResolver_ValidToken(t *testing.T) {
	resolver, authService, _, _ := setupIdentityTest(t)
	ctx := context.Background()

	registered, err := authService.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "secret12"})
	require.NoError(t, err)

	resp, err := authService.Login(ctx, LoginRequest{Email: "a@x.com", Password: "secret12"})
	require.NoError(t, err)

	identity := resolver.Resolve(ctx, "Bearer "+resp.AccessToken)
	require.True(t, identity.IsAuthenticated())

	user, ok := identity.User()
	require.True(t, ok)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, domain.RoleMember, identity.Role())
}

func TestIdentityResolver_RoleFromStore(t *testing.T) {
	resolver, authService, s, _ := setupIdentityTest(t)
	ctx := context.Background()

	registered, err := authService.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "secret12"})
	require.NoError(t, err)

	resp, err := authService.Login(ctx, LoginRequest{Email: "a@x.com", Password: "secret12"})
	require.NoError(t, err)

	// Promote the user after the token was issued. The token still
	// carries the member role in its claims.
	registered.Role = domain.RoleAdmin
	registered.Touch()
	require.NoError(t, s.UpdateUser(ctx, registered))

	identity := resolver.Resolve(ctx, "Bearer "+resp.AccessToken)
	require.True(t, identity.IsAuthenticated())
	assert.Equal(t, domain.RoleAdmin, identity.Role())
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc123", "abc123", true},
		{"bearer abc123", "abc123", true},
		{"BEARER abc123", "abc123", true},
		{"  Bearer abc123  ", "abc123", true},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic abc123", "", false},
		{"", "", false},
		{"abc123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			token, ok := bearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}
