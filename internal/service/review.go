package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cuppaapp/cuppa-server/internal/domain"
	domainerrors "github.com/cuppaapp/cuppa-server/internal/errors"
	"github.com/cuppaapp/cuppa-server/internal/id"
	"github.com/cuppaapp/cuppa-server/internal/store"
)

// ReviewService manages user reviews of cafes.
type ReviewService struct {
	store  store.Store
	logger *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(store store.Store, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		store:  store,
		logger: logger,
	}
}

// CreateReviewRequest contains a new review.
type CreateReviewRequest struct {
	Rating    int      `json:"rating" validate:"min=0,max=5"`
	Comment   string   `json:"comment" validate:"max=4000"`
	ImageURLs []string `json:"image_urls" validate:"dive,url"`
}

// ListReviews returns all reviews for a cafe, newest first.
func (s *ReviewService) ListReviews(ctx context.Context, cafeID string) ([]*domain.Review, error) {
	if _, err := s.store.GetCafe(ctx, cafeID); err != nil {
		if errors.Is(err, store.ErrCafeNotFound) {
			return nil, domainerrors.NotFoundf("cafe %s not found", cafeID)
		}
		return nil, err
	}
	return s.store.ListReviewsForCafe(ctx, cafeID)
}

// CreateReview posts a review of a cafe on behalf of an authenticated user.
func (s *ReviewService) CreateReview(ctx context.Context, user *domain.User, cafeID string, req CreateReviewRequest) (*domain.Review, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	if _, err := s.store.GetCafe(ctx, cafeID); err != nil {
		if errors.Is(err, store.ErrCafeNotFound) {
			return nil, domainerrors.NotFoundf("cafe %s not found", cafeID)
		}
		return nil, err
	}

	reviewID, err := id.Generate("review")
	if err != nil {
		return nil, fmt.Errorf("generate review ID: %w", err)
	}

	review := &domain.Review{
		ID:        reviewID,
		CafeID:    cafeID,
		UserID:    user.ID,
		UserEmail: user.Email,
		Rating:    req.Rating,
		Comment:   req.Comment,
		ImageURLs: req.ImageURLs,
		CreatedAt: time.Now(),
	}

	if err := s.store.CreateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("review created",
			"review_id", reviewID,
			"cafe_id", cafeID,
			"user_id", user.ID,
		)
	}

	return review, nil
}
