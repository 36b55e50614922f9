package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cuppaapp/cuppa-server/internal/domain"
	domainerrors "github.com/cuppaapp/cuppa-server/internal/errors"
	"github.com/cuppaapp/cuppa-server/internal/id"
	"github.com/cuppaapp/cuppa-server/internal/store"
	"github.com/cuppaapp/cuppa-server/internal/util"
)

// CafeService manages the cafe catalog.
type CafeService struct {
	store  store.Store
	tags   *TagService
	logger *slog.Logger
}

// NewCafeService creates a new cafe service.
func NewCafeService(store store.Store, tags *TagService, logger *slog.Logger) *CafeService {
	return &CafeService{
		store:  store,
		tags:   tags,
		logger: logger,
	}
}

// CreateCafeRequest contains the data for a new catalog entry.
type CreateCafeRequest struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Description  string   `json:"description" validate:"max=2000"`
	Address      string   `json:"address" validate:"required,max=500"`
	Latitude     float64  `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64  `json:"longitude" validate:"min=-180,max=180"`
	Tags         []string `json:"tags" validate:"dive,max=50"`
	ImageURLs    []string `json:"image_urls" validate:"dive,url"`
	OpeningHours string   `json:"opening_hours" validate:"max=500"`
	MenuURL      string   `json:"menu_url" validate:"omitempty,url"`
	PhoneNumber  string   `json:"phone_number" validate:"max=30"`
}

// UpdateCafeRequest contains replacement field values for an existing cafe.
type UpdateCafeRequest struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Description  string   `json:"description" validate:"max=2000"`
	Address      string   `json:"address" validate:"required,max=500"`
	Latitude     float64  `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64  `json:"longitude" validate:"min=-180,max=180"`
	ImageURLs    []string `json:"image_urls" validate:"dive,url"`
	OpeningHours string   `json:"opening_hours" validate:"max=500"`
	MenuURL      string   `json:"menu_url" validate:"omitempty,url"`
	PhoneNumber  string   `json:"phone_number" validate:"max=30"`
}

// ListCafes returns the full catalog.
func (s *CafeService) ListCafes(ctx context.Context) ([]*domain.Cafe, error) {
	return s.store.ListCafes(ctx)
}

// GetCafe returns a single cafe by id.
func (s *CafeService) GetCafe(ctx context.Context, cafeID string) (*domain.Cafe, error) {
	cafe, err := s.store.GetCafe(ctx, cafeID)
	if err != nil {
		if errors.Is(err, store.ErrCafeNotFound) {
			return nil, domainerrors.NotFoundf("cafe %s not found", cafeID)
		}
		return nil, err
	}
	return cafe, nil
}

// CreateCafe adds a new cafe to the catalog. Any initial tags go
// through the tag aggregator so their weights stay consistent with
// tags applied later.
func (s *CafeService) CreateCafe(ctx context.Context, req CreateCafeRequest) (*domain.Cafe, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	cafeID, err := id.Generate("cafe")
	if err != nil {
		return nil, fmt.Errorf("generate cafe ID: %w", err)
	}

	cafe := &domain.Cafe{
		ID:           cafeID,
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		ImageURLs:    req.ImageURLs,
		OpeningHours: req.OpeningHours,
		MenuURL:      req.MenuURL,
		PhoneNumber:  req.PhoneNumber,
	}
	cafe.InitTimestamps()

	if err := s.store.CreateCafe(ctx, cafe); err != nil {
		return nil, fmt.Errorf("create cafe: %w", err)
	}

	for _, raw := range req.Tags {
		if util.NormalizeTagName(raw) == "" {
			continue
		}
		if _, err := s.tags.Apply(ctx, cafeID, raw); err != nil {
			return nil, fmt.Errorf("apply tag %q: %w", raw, err)
		}
	}

	if s.logger != nil {
		s.logger.Info("cafe created",
			"cafe_id", cafeID,
			"name", cafe.Name,
		)
	}

	return s.store.GetCafe(ctx, cafeID)
}

// UpdateCafe replaces a cafe's catalog fields. Tags are managed through
// the tag aggregator, not through updates.
func (s *CafeService) UpdateCafe(ctx context.Context, cafeID string, req UpdateCafeRequest) (*domain.Cafe, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	cafe, err := s.store.GetCafe(ctx, cafeID)
	if err != nil {
		if errors.Is(err, store.ErrCafeNotFound) {
			return nil, domainerrors.NotFoundf("cafe %s not found", cafeID)
		}
		return nil, err
	}

	cafe.Name = req.Name
	cafe.Description = req.Description
	cafe.Address = req.Address
	cafe.Latitude = req.Latitude
	cafe.Longitude = req.Longitude
	cafe.ImageURLs = req.ImageURLs
	cafe.OpeningHours = req.OpeningHours
	cafe.MenuURL = req.MenuURL
	cafe.PhoneNumber = req.PhoneNumber
	cafe.Touch()

	if err := s.store.UpdateCafe(ctx, cafe); err != nil {
		return nil, fmt.Errorf("update cafe: %w", err)
	}

	return cafe, nil
}
