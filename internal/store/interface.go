// Package store defines the persistence interface for the Cuppa server.
package store

import (
	"context"

	"github.com/cuppaapp/cuppa-server/internal/domain"
)

// Store defines the interface for all persistence operations.
type Store interface {
	// Lifecycle
	Close() error

	// Users
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// Cafes
	CreateCafe(ctx context.Context, cafe *domain.Cafe) error
	GetCafe(ctx context.Context, id string) (*domain.Cafe, error)
	UpdateCafe(ctx context.Context, cafe *domain.Cafe) error
	ListCafes(ctx context.Context) ([]*domain.Cafe, error)
	// AddCafeTag records the normalized tag name on the cafe's tag set.
	// Idempotent: returns false if the cafe already carried the tag.
	AddCafeTag(ctx context.Context, cafeID, name string) (bool, error)

	// Tags
	GetTagByName(ctx context.Context, name string) (*domain.Tag, error)
	ListTags(ctx context.Context) ([]*domain.Tag, error)
	// FindOrCreateTagByName finds an existing tag by normalized name or
	// creates a new one with weight 0. Returns (tag, created, error).
	FindOrCreateTagByName(ctx context.Context, name string) (*domain.Tag, bool, error)
	// IncrementTagWeight atomically adds 1 to the tag's weight counter.
	IncrementTagWeight(ctx context.Context, tagID string) error

	// Reviews
	CreateReview(ctx context.Context, review *domain.Review) error
	ListReviewsForCafe(ctx context.Context, cafeID string) ([]*domain.Review, error)
}
