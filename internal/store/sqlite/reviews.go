package sqlite

import (
	"context"
	"encoding/json/v2"
	"fmt"

	"github.com/cuppaapp/cuppa-server/internal/domain"
)

// reviewColumns is the ordered list of columns selected in review queries.
// Must match the scan order in scanReview.
const reviewColumns = `id, cafe_id, user_id, user_email, rating, comment,
	image_urls, created_at`

// scanReview scans a sql.Row (or sql.Rows via its Scan method) into a domain.Review.
func scanReview(scanner interface{ Scan(dest ...any) error }) (*domain.Review, error) {
	var r domain.Review

	var (
		imageURLs string
		createdAt string
	)

	err := scanner.Scan(
		&r.ID,
		&r.CafeID,
		&r.UserID,
		&r.UserEmail,
		&r.Rating,
		&r.Comment,
		&imageURLs,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(imageURLs), &r.ImageURLs); err != nil {
		return nil, fmt.Errorf("decode image urls: %w", err)
	}

	r.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// CreateReview inserts a new review into the database.
func (s *Store) CreateReview(ctx context.Context, review *domain.Review) error {
	imageURLs, err := encodeImageURLs(review.ImageURLs)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reviews (
			id, cafe_id, user_id, user_email, rating, comment, image_urls, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		review.ID,
		review.CafeID,
		review.UserID,
		review.UserEmail,
		review.Rating,
		review.Comment,
		imageURLs,
		formatTime(review.CreatedAt),
	)
	return err
}

// ListReviewsForCafe returns a cafe's reviews, newest first.
func (s *Store) ListReviewsForCafe(ctx context.Context, cafeID string) ([]*domain.Review, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE cafe_id = ? ORDER BY created_at DESC`,
		cafeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*domain.Review
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if reviews == nil {
		reviews = []*domain.Review{}
	}
	return reviews, nil
}
