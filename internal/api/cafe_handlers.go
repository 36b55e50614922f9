package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cuppaapp/cuppa-server/internal/domain"
	"github.com/cuppaapp/cuppa-server/internal/service"
)

func (s *Server) registerCafeRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listCafes",
		Method:      http.MethodGet,
		Path:        "/api/v1/cafes",
		Summary:     "List cafes",
		Description: "Returns the full cafe catalog",
		Tags:        []string{"Cafes"},
	}, s.handleListCafes)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCafe",
		Method:      http.MethodGet,
		Path:        "/api/v1/cafes/{id}",
		Summary:     "Get cafe",
		Description: "Returns a cafe by ID",
		Tags:        []string{"Cafes"},
	}, s.handleGetCafe)

	huma.Register(s.api, huma.Operation{
		OperationID: "createCafe",
		Method:      http.MethodPost,
		Path:        "/api/v1/cafes",
		Summary:     "Create cafe",
		Description: "Adds a cafe to the catalog",
		Tags:        []string{"Cafes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleCreateCafe)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateCafe",
		Method:      http.MethodPut,
		Path:        "/api/v1/cafes/{id}",
		Summary:     "Update cafe",
		Description: "Replaces a cafe's catalog fields (admin only)",
		Tags:        []string{"Cafes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateCafe)

	huma.Register(s.api, huma.Operation{
		OperationID: "listCafeReviews",
		Method:      http.MethodGet,
		Path:        "/api/v1/cafes/{id}/reviews",
		Summary:     "List reviews",
		Description: "Returns reviews for a cafe, newest first",
		Tags:        []string{"Reviews"},
	}, s.handleListCafeReviews)

	huma.Register(s.api, huma.Operation{
		OperationID: "createCafeReview",
		Method:      http.MethodPost,
		Path:        "/api/v1/cafes/{id}/reviews",
		Summary:     "Create review",
		Description: "Posts a review of a cafe",
		Tags:        []string{"Reviews"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleCreateCafeReview)
}

// === DTOs ===

// CafeResponse contains cafe data in API responses.
type CafeResponse struct {
	ID           string    `json:"id" doc:"Cafe ID"`
	Name         string    `json:"name" doc:"Cafe name"`
	Description  string    `json:"description" doc:"Description"`
	Address      string    `json:"address" doc:"Street address"`
	Latitude     float64   `json:"latitude" doc:"Latitude"`
	Longitude    float64   `json:"longitude" doc:"Longitude"`
	Tags         []string  `json:"tags" doc:"Normalized tag names"`
	ImageURLs    []string  `json:"image_urls" doc:"Image URLs"`
	OpeningHours string    `json:"opening_hours,omitempty" doc:"Opening hours"`
	MenuURL      string    `json:"menu_url,omitempty" doc:"Menu URL"`
	PhoneNumber  string    `json:"phone_number,omitempty" doc:"Phone number"`
	CreatedAt    time.Time `json:"created_at" doc:"Creation time"`
	UpdatedAt    time.Time `json:"updated_at" doc:"Last update time"`
}

// ListCafesResponse contains a list of cafes.
type ListCafesResponse struct {
	Cafes []CafeResponse `json:"cafes" doc:"Cafe catalog"`
}

// ListCafesOutput wraps the list cafes response for Huma.
type ListCafesOutput struct {
	Body ListCafesResponse
}

// GetCafeInput contains parameters for getting a cafe.
type GetCafeInput struct {
	ID string `path:"id" doc:"Cafe ID"`
}

// CafeOutput wraps a cafe response for Huma.
type CafeOutput struct {
	Body CafeResponse
}

// CreateCafeRequest is the request body for creating a cafe.
type CreateCafeRequest struct {
	Name         string   `json:"name" doc:"Cafe name"`
	Description  string   `json:"description,omitempty" doc:"Description"`
	Address      string   `json:"address" doc:"Street address"`
	Latitude     float64  `json:"latitude,omitempty" doc:"Latitude"`
	Longitude    float64  `json:"longitude,omitempty" doc:"Longitude"`
	Tags         []string `json:"tags,omitempty" doc:"Initial tags"`
	ImageURLs    []string `json:"image_urls,omitempty" doc:"Image URLs"`
	OpeningHours string   `json:"opening_hours,omitempty" doc:"Opening hours"`
	MenuURL      string   `json:"menu_url,omitempty" doc:"Menu URL"`
	PhoneNumber  string   `json:"phone_number,omitempty" doc:"Phone number"`
}

// CreateCafeInput wraps the create cafe request for Huma.
type CreateCafeInput struct {
	Body CreateCafeRequest
}

// CreateCafeOutput wraps the created cafe for Huma.
type CreateCafeOutput struct {
	Status int
	Body   CafeResponse
}

// UpdateCafeInput wraps the update cafe request for Huma.
type UpdateCafeInput struct {
	ID   string `path:"id" doc:"Cafe ID"`
	Body CreateCafeRequest
}

// ReviewResponse contains review data in API responses.
type ReviewResponse struct {
	ID        string    `json:"id" doc:"Review ID"`
	CafeID    string    `json:"cafe_id" doc:"Reviewed cafe"`
	UserID    string    `json:"user_id" doc:"Author's user ID"`
	UserEmail string    `json:"user_email" doc:"Author's email"`
	Rating    int       `json:"rating" doc:"Rating from 0 to 5"`
	Comment   string    `json:"comment" doc:"Review text"`
	ImageURLs []string  `json:"image_urls" doc:"Image URLs"`
	CreatedAt time.Time `json:"created_at" doc:"Creation time"`
}

// ListReviewsResponse contains a cafe's reviews.
type ListReviewsResponse struct {
	Reviews []ReviewResponse `json:"reviews" doc:"Reviews, newest first"`
}

// ListCafeReviewsInput contains parameters for listing a cafe's reviews.
type ListCafeReviewsInput struct {
	ID string `path:"id" doc:"Cafe ID"`
}

// ListReviewsOutput wraps the review list for Huma.
type ListReviewsOutput struct {
	Body ListReviewsResponse
}

// CreateReviewRequest is the request body for posting a review.
type CreateReviewRequest struct {
	Rating    int      `json:"rating" doc:"Rating from 0 to 5"`
	Comment   string   `json:"comment,omitempty" doc:"Review text"`
	ImageURLs []string `json:"image_urls,omitempty" doc:"Image URLs"`
}

// CreateReviewInput wraps the create review request for Huma.
type CreateReviewInput struct {
	ID   string `path:"id" doc:"Cafe ID"`
	Body CreateReviewRequest
}

// CreateReviewOutput wraps the created review for Huma.
type CreateReviewOutput struct {
	Status int
	Body   ReviewResponse
}

func toCafeResponse(c *domain.Cafe) CafeResponse {
	return CafeResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Address:      c.Address,
		Latitude:     c.Latitude,
		Longitude:    c.Longitude,
		Tags:         c.Tags,
		ImageURLs:    c.ImageURLs,
		OpeningHours: c.OpeningHours,
		MenuURL:      c.MenuURL,
		PhoneNumber:  c.PhoneNumber,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		CafeID:    r.CafeID,
		UserID:    r.UserID,
		UserEmail: r.UserEmail,
		Rating:    r.Rating,
		Comment:   r.Comment,
		ImageURLs: r.ImageURLs,
		CreatedAt: r.CreatedAt,
	}
}

// === Handlers ===

func (s *Server) handleListCafes(ctx context.Context, _ *struct{}) (*ListCafesOutput, error) {
	cafes, err := s.services.Cafe.ListCafes(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]CafeResponse, len(cafes))
	for i, c := range cafes {
		resp[i] = toCafeResponse(c)
	}

	return &ListCafesOutput{Body: ListCafesResponse{Cafes: resp}}, nil
}

func (s *Server) handleGetCafe(ctx context.Context, input *GetCafeInput) (*CafeOutput, error) {
	cafe, err := s.services.Cafe.GetCafe(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &CafeOutput{Body: toCafeResponse(cafe)}, nil
}

func (s *Server) handleCreateCafe(ctx context.Context, input *CreateCafeInput) (*CreateCafeOutput, error) {
	if _, err := s.RequireUser(ctx); err != nil {
		return nil, err
	}

	cafe, err := s.services.Cafe.CreateCafe(ctx, service.CreateCafeRequest{
		Name:         input.Body.Name,
		Description:  input.Body.Description,
		Address:      input.Body.Address,
		Latitude:     input.Body.Latitude,
		Longitude:    input.Body.Longitude,
		Tags:         input.Body.Tags,
		ImageURLs:    input.Body.ImageURLs,
		OpeningHours: input.Body.OpeningHours,
		MenuURL:      input.Body.MenuURL,
		PhoneNumber:  input.Body.PhoneNumber,
	})
	if err != nil {
		return nil, err
	}

	return &CreateCafeOutput{
		Status: http.StatusCreated,
		Body:   toCafeResponse(cafe),
	}, nil
}

func (s *Server) handleUpdateCafe(ctx context.Context, input *UpdateCafeInput) (*CafeOutput, error) {
	if _, err := s.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	cafe, err := s.services.Cafe.UpdateCafe(ctx, input.ID, service.UpdateCafeRequest{
		Name:         input.Body.Name,
		Description:  input.Body.Description,
		Address:      input.Body.Address,
		Latitude:     input.Body.Latitude,
		Longitude:    input.Body.Longitude,
		ImageURLs:    input.Body.ImageURLs,
		OpeningHours: input.Body.OpeningHours,
		MenuURL:      input.Body.MenuURL,
		PhoneNumber:  input.Body.PhoneNumber,
	})
	if err != nil {
		return nil, err
	}

	return &CafeOutput{Body: toCafeResponse(cafe)}, nil
}

func (s *Server) handleListCafeReviews(ctx context.Context, input *ListCafeReviewsInput) (*ListReviewsOutput, error) {
	reviews, err := s.services.Review.ListReviews(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	resp := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		resp[i] = toReviewResponse(r)
	}

	return &ListReviewsOutput{Body: ListReviewsResponse{Reviews: resp}}, nil
}

func (s *Server) handleCreateCafeReview(ctx context.Context, input *CreateReviewInput) (*CreateReviewOutput, error) {
	user, err := s.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	review, err := s.services.Review.CreateReview(ctx, user, input.ID, service.CreateReviewRequest{
		Rating:    input.Body.Rating,
		Comment:   input.Body.Comment,
		ImageURLs: input.Body.ImageURLs,
	})
	if err != nil {
		return nil, err
	}

	return &CreateReviewOutput{
		Status: http.StatusCreated,
		Body:   toReviewResponse(review),
	}, nil
}
