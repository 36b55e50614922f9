package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuppaapp/cuppa-server/internal/domain"
)

func TestListCafes_PublicAndEmpty(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/cafes")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[ListCafesResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Empty(t, envelope.Data.Cafes)
}

func TestCreateCafe_RequiresAuth(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/cafes", map[string]any{
		"name":    "Blue Bottle",
		"address": "1 Test Street",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestCreateAndGetCafe(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := ts.registerTestUser(t, "a@x.com")

	resp := ts.api.Post("/api/v1/cafes",
		map[string]any{
			"name":        "Blue Bottle",
			"description": "pour-over specialists",
			"address":     "1 Test Street",
			"latitude":    37.5665,
			"longitude":   126.978,
			"tags":        []string{" Quiet "},
		},
		"Authorization: Bearer "+token)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created testEnvelope[CafeResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, []string{"quiet"}, created.Data.Tags)

	resp = ts.api.Get("/api/v1/cafes/" + created.Data.ID)
	require.Equal(t, http.StatusOK, resp.Code)

	var got testEnvelope[CafeResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, "Blue Bottle", got.Data.Name)
	assert.Equal(t, 37.5665, got.Data.Latitude)
}

func TestGetCafe_NotFound(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/cafes/cafe-missing")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdateCafe_RequiresAdmin(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := ts.registerTestUser(t, "member@x.com")
	cafeID := ts.createTestCafe(t, token, "Blue Bottle")

	resp := ts.api.Put("/api/v1/cafes/"+cafeID,
		map[string]any{
			"name":    "Renamed",
			"address": "2 Test Street",
		},
		"Authorization: Bearer "+token)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestUpdateCafe_AsAdmin(t *testing.T) {
	ts := setupTestServer(t)
	token, userID := ts.registerTestUser(t, "admin@x.com")
	cafeID := ts.createTestCafe(t, token, "Blue Bottle")

	// Promote the user. The existing token works immediately because
	// the role is read from the store on each request.
	user, err := ts.store.GetUser(t.Context(), userID)
	require.NoError(t, err)
	user.Role = domain.RoleAdmin
	user.Touch()
	require.NoError(t, ts.store.UpdateUser(t.Context(), user))

	resp := ts.api.Put("/api/v1/cafes/"+cafeID,
		map[string]any{
			"name":    "Blue Bottle Roastery",
			"address": "2 Test Street",
		},
		"Authorization: Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var envelope testEnvelope[CafeResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, "Blue Bottle Roastery", envelope.Data.Name)
}

func TestCreateReview(t *testing.T) {
	ts := setupTestServer(t)
	token, userID := ts.registerTestUser(t, "reviewer@x.com")
	cafeID := ts.createTestCafe(t, token, "Blue Bottle")

	resp := ts.api.Post("/api/v1/cafes/"+cafeID+"/reviews",
		map[string]any{
			"rating":  5,
			"comment": "great pour-over",
		},
		"Authorization: Bearer "+token)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var envelope testEnvelope[ReviewResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, userID, envelope.Data.UserID)
	assert.Equal(t, "reviewer@x.com", envelope.Data.UserEmail)
	assert.Equal(t, 5, envelope.Data.Rating)
}

func TestCreateReview_RequiresAuth(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := ts.registerTestUser(t, "a@x.com")
	cafeID := ts.createTestCafe(t, token, "Blue Bottle")

	resp := ts.api.Post("/api/v1/cafes/"+cafeID+"/reviews", map[string]any{
		"rating": 4,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestListReviews_PublicNewestFirst(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := ts.registerTestUser(t, "a@x.com")
	cafeID := ts.createTestCafe(t, token, "Blue Bottle")

	for _, comment := range []string{"first", "second"} {
		resp := ts.api.Post("/api/v1/cafes/"+cafeID+"/reviews",
			map[string]any{"rating": 4, "comment": comment},
			"Authorization: Bearer "+token)
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	// No token needed for reading.
	resp := ts.api.Get("/api/v1/cafes/" + cafeID + "/reviews")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[ListReviewsResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data.Reviews, 2)
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[HealthResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, "healthy", envelope.Data.Status)
	assert.Contains(t, envelope.Data.Components, "database")
}
