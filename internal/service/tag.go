package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cuppaapp/cuppa-server/internal/domain"
	domainerrors "github.com/cuppaapp/cuppa-server/internal/errors"
	"github.com/cuppaapp/cuppa-server/internal/store"
	"github.com/cuppaapp/cuppa-server/internal/util"
)

// TagService maintains the community tag vocabulary. Tags are global:
// no user ownership, weight counts total applications across all cafes.
type TagService struct {
	store  store.Store
	logger *slog.Logger
}

// NewTagService creates a new tag service.
func NewTagService(store store.Store, logger *slog.Logger) *TagService {
	return &TagService{
		store:  store,
		logger: logger,
	}
}

// ErrEmptyTagName reports input that normalizes to the empty string.
var ErrEmptyTagName = errors.New("tag name is empty after normalization")

// ListTags returns all tags ordered by weight, heaviest first.
func (s *TagService) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	return s.store.ListTags(ctx)
}

// Apply records one application of a tag to a cafe and returns the
// updated cafe.
//
// The cafe's tag set is idempotent: applying an already-present tag
// leaves it unchanged. The tag's weight is incremented on every
// application, so weight counts applications, not distinct cafes.
func (s *TagService) Apply(ctx context.Context, cafeID, rawTagName string) (*domain.Cafe, error) {
	name := util.NormalizeTagName(rawTagName)
	if name == "" {
		return nil, domainerrors.Validation("tag name is empty").WithCause(ErrEmptyTagName)
	}

	added, err := s.store.AddCafeTag(ctx, cafeID, name)
	if err != nil {
		if errors.Is(err, store.ErrCafeNotFound) {
			return nil, domainerrors.NotFoundf("cafe %s not found", cafeID)
		}
		return nil, err
	}

	tag, created, err := s.store.FindOrCreateTagByName(ctx, name)
	if err != nil {
		return nil, err
	}

	// Atomic at the store layer, so concurrent applications never lose
	// an increment.
	if err := s.store.IncrementTagWeight(ctx, tag.ID); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("tag applied",
			"tag_name", name,
			"cafe_id", cafeID,
			"added_to_cafe", added,
			"created", created,
		)
	}

	return s.store.GetCafe(ctx, cafeID)
}
