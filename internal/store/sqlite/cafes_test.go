package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cuppaapp/cuppa-server/internal/domain"
	"github.com/cuppaapp/cuppa-server/internal/store"
)

// makeTestCafe creates a domain.Cafe with sensible defaults for testing.
func makeTestCafe(id, name string) *domain.Cafe {
	now := time.Now()
	return &domain.Cafe{
		ID:          id,
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        name,
		Description: "a test cafe",
		Address:     "1 Test Street",
		Latitude:    37.5665,
		Longitude:   126.978,
		ImageURLs:   []string{"https://example.com/a.jpg"},
	}
}

func TestCreateAndGetCafe(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cafe := makeTestCafe("cafe-1", "Blue Bottle")
	cafe.OpeningHours = "08:00-20:00"
	cafe.PhoneNumber = "02-123-4567"
	if err := s.CreateCafe(ctx, cafe); err != nil {
		t.Fatalf("CreateCafe: %v", err)
	}

	got, err := s.GetCafe(ctx, "cafe-1")
	if err != nil {
		t.Fatalf("GetCafe: %v", err)
	}
	if got.Name != "Blue Bottle" {
		t.Errorf("Name: got %q", got.Name)
	}
	if got.Latitude != cafe.Latitude || got.Longitude != cafe.Longitude {
		t.Errorf("coordinates did not round-trip: got %v,%v", got.Latitude, got.Longitude)
	}
	if len(got.ImageURLs) != 1 || got.ImageURLs[0] != "https://example.com/a.jpg" {
		t.Errorf("ImageURLs: got %v", got.ImageURLs)
	}
	if got.OpeningHours != "08:00-20:00" {
		t.Errorf("OpeningHours: got %q", got.OpeningHours)
	}
	if len(got.Tags) != 0 {
		t.Errorf("expected empty tag set, got %v", got.Tags)
	}
}

func TestGetCafe_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetCafe(context.Background(), "cafe-missing")
	if !errors.Is(err, store.ErrCafeNotFound) {
		t.Errorf("expected ErrCafeNotFound, got %v", err)
	}
}

func TestCreateCafe_WithTags(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cafe := makeTestCafe("cafe-1", "Blue Bottle")
	cafe.Tags = []string{"quiet", "good coffee"}
	if err := s.CreateCafe(ctx, cafe); err != nil {
		t.Fatalf("CreateCafe: %v", err)
	}

	got, err := s.GetCafe(ctx, "cafe-1")
	if err != nil {
		t.Fatalf("GetCafe: %v", err)
	}
	if len(got.Tags) != 2 {
		t.Fatalf("expected 2 tags, got %v", got.Tags)
	}
}

func TestAddCafeTag_Idempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateCafe(ctx, makeTestCafe("cafe-1", "Blue Bottle")); err != nil {
		t.Fatalf("CreateCafe: %v", err)
	}

	added, err := s.AddCafeTag(ctx, "cafe-1", "quiet")
	if err != nil {
		t.Fatalf("AddCafeTag: %v", err)
	}
	if !added {
		t.Error("first application should report added=true")
	}

	added, err = s.AddCafeTag(ctx, "cafe-1", "quiet")
	if err != nil {
		t.Fatalf("AddCafeTag (second): %v", err)
	}
	if added {
		t.Error("second application should report added=false")
	}

	got, err := s.GetCafe(ctx, "cafe-1")
	if err != nil {
		t.Fatalf("GetCafe: %v", err)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "quiet" {
		t.Errorf("expected single tag %q, got %v", "quiet", got.Tags)
	}
}

func TestAddCafeTag_CafeNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddCafeTag(context.Background(), "cafe-missing", "quiet")
	if !errors.Is(err, store.ErrCafeNotFound) {
		t.Errorf("expected ErrCafeNotFound, got %v", err)
	}
}

func TestListCafes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Charlie", "Alpha", "Bravo"} {
		if err := s.CreateCafe(ctx, makeTestCafe("cafe-"+name, name)); err != nil {
			t.Fatalf("CreateCafe(%s): %v", name, err)
		}
	}
	if _, err := s.AddCafeTag(ctx, "cafe-Alpha", "quiet"); err != nil {
		t.Fatalf("AddCafeTag: %v", err)
	}

	cafes, err := s.ListCafes(ctx)
	if err != nil {
		t.Fatalf("ListCafes: %v", err)
	}
	if len(cafes) != 3 {
		t.Fatalf("expected 3 cafes, got %d", len(cafes))
	}
	if cafes[0].Name != "Alpha" {
		t.Errorf("expected name order, got %q first", cafes[0].Name)
	}
	if len(cafes[0].Tags) != 1 || cafes[0].Tags[0] != "quiet" {
		t.Errorf("Alpha tags: got %v", cafes[0].Tags)
	}
	if len(cafes[1].Tags) != 0 {
		t.Errorf("Bravo tags should be empty, got %v", cafes[1].Tags)
	}
}

func TestUpdateCafe(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cafe := makeTestCafe("cafe-1", "Blue Bottle")
	if err := s.CreateCafe(ctx, cafe); err != nil {
		t.Fatalf("CreateCafe: %v", err)
	}

	cafe.Description = "updated"
	cafe.MenuURL = "https://example.com/menu"
	cafe.Touch()
	if err := s.UpdateCafe(ctx, cafe); err != nil {
		t.Fatalf("UpdateCafe: %v", err)
	}

	got, err := s.GetCafe(ctx, "cafe-1")
	if err != nil {
		t.Fatalf("GetCafe: %v", err)
	}
	if got.Description != "updated" || got.MenuURL != "https://example.com/menu" {
		t.Errorf("update did not persist: %+v", got)
	}
}
