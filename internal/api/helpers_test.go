package api

import (
	"encoding/json/v2"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/cuppaapp/cuppa-server/internal/auth"
	"github.com/cuppaapp/cuppa-server/internal/service"
	"github.com/cuppaapp/cuppa-server/internal/store/sqlite"
)

const testTokenSecret = "0123456789abcdef0123456789abcdef"

// testEnvelope mirrors the response envelope for decoding in tests.
type testEnvelope[T any] struct {
	V       int  `json:"v"`
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// testServer wraps the API server for handler testing.
type testServer struct {
	*Server
	api   humatest.TestAPI
	codec *auth.TokenCodec
}

// setupTestServer creates a full server backed by temporary storage.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := sqlite.Open(dbPath, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	codec, err := auth.NewTokenCodec(testTokenSecret, 15*time.Minute)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	tagService := service.NewTagService(st, logger)
	services := &Services{
		Auth:     service.NewAuthService(st, codec, logger),
		Identity: service.NewIdentityResolver(st, codec, logger),
		Cafe:     service.NewCafeService(st, tagService, logger),
		Tag:      tagService,
		Review:   service.NewReviewService(st, logger),
	}

	s := NewServer(st, services, logger)

	return &testServer{
		Server: s,
		api:    humatest.Wrap(t, s.api),
		codec:  codec,
	}
}

// registerTestUser creates a member account and returns its access token
// and user ID.
func (ts *testServer) registerTestUser(t *testing.T, email string) (token string, userID string) {
	t.Helper()

	resp := ts.api.Post("/api/v1/auth/register", map[string]any{
		"email":    email,
		"password": "TestPassword123!",
	})
	require.Equal(t, http.StatusCreated, resp.Code, "register failed: %s", resp.Body.String())

	var registered testEnvelope[UserResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &registered))

	resp = ts.api.Post("/api/v1/auth/login", map[string]any{
		"email":    email,
		"password": "TestPassword123!",
	})
	require.Equal(t, http.StatusOK, resp.Code, "login failed: %s", resp.Body.String())

	var envelope testEnvelope[AuthResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))

	return envelope.Data.AccessToken, registered.Data.ID
}

// createTestCafe creates a cafe through the API and returns its ID.
func (ts *testServer) createTestCafe(t *testing.T, token, name string) string {
	t.Helper()

	resp := ts.api.Post("/api/v1/cafes",
		map[string]any{
			"name":    name,
			"address": "1 Test Street",
		},
		"Authorization: Bearer "+token)
	require.Equal(t, http.StatusCreated, resp.Code, "create cafe failed: %s", resp.Body.String())

	var envelope testEnvelope[CafeResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	return envelope.Data.ID
}
