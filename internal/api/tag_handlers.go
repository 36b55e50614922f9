package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerTagRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listTags",
		Method:      http.MethodGet,
		Path:        "/api/v1/tags",
		Summary:     "List tags",
		Description: "Returns all tags ordered by weight, heaviest first",
		Tags:        []string{"Tags"},
	}, s.handleListTags)

	huma.Register(s.api, huma.Operation{
		OperationID: "applyCafeTag",
		Method:      http.MethodPost,
		Path:        "/api/v1/cafes/{id}/tags",
		Summary:     "Apply tag",
		Description: "Applies a tag to a cafe and increments the tag's weight",
		Tags:        []string{"Tags"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleApplyCafeTag)
}

// === DTOs ===

// TagResponse contains tag data in API responses.
type TagResponse struct {
	ID        string    `json:"id" doc:"Tag ID"`
	Name      string    `json:"name" doc:"Normalized tag name"`
	Weight    int       `json:"weight" doc:"Total application count"`
	CreatedAt time.Time `json:"created_at" doc:"Creation time"`
	UpdatedAt time.Time `json:"updated_at" doc:"Last update time"`
}

// ListTagsResponse contains a list of tags.
type ListTagsResponse struct {
	Tags []TagResponse `json:"tags" doc:"Tags ordered by weight"`
}

// ListTagsOutput wraps the list tags response for Huma.
type ListTagsOutput struct {
	Body ListTagsResponse
}

// ApplyTagRequest is the request body for applying a tag.
type ApplyTagRequest struct {
	Name string `json:"name" doc:"Tag name, normalized by trimming and lower-casing"`
}

// ApplyTagInput wraps the apply tag request for Huma.
type ApplyTagInput struct {
	ID   string `path:"id" doc:"Cafe ID"`
	Body ApplyTagRequest
}

// === Handlers ===

func (s *Server) handleListTags(ctx context.Context, _ *struct{}) (*ListTagsOutput, error) {
	tags, err := s.services.Tag.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]TagResponse, len(tags))
	for i, t := range tags {
		resp[i] = TagResponse{
			ID:        t.ID,
			Name:      t.Name,
			Weight:    t.Weight,
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
		}
	}

	return &ListTagsOutput{Body: ListTagsResponse{Tags: resp}}, nil
}

func (s *Server) handleApplyCafeTag(ctx context.Context, input *ApplyTagInput) (*CafeOutput, error) {
	if _, err := s.RequireUser(ctx); err != nil {
		return nil, err
	}

	cafe, err := s.services.Tag.Apply(ctx, input.ID, input.Body.Name)
	if err != nil {
		return nil, err
	}

	return &CafeOutput{Body: toCafeResponse(cafe)}, nil
}
