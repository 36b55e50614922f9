package sqlite

import (
	"context"
	"database/sql"
	"encoding/json/v2"
	"fmt"
	"time"

	"github.com/cuppaapp/cuppa-server/internal/domain"
	"github.com/cuppaapp/cuppa-server/internal/store"
)

// cafeColumns is the ordered list of columns selected in cafe queries.
// Must match the scan order in scanCafe. Tags live in cafe_tags and are
// loaded separately.
const cafeColumns = `id, created_at, updated_at, name, description, address,
	latitude, longitude, image_urls, opening_hours, menu_url, phone_number`

// scanCafe scans a sql.Row (or sql.Rows via its Scan method) into a domain.Cafe.
func scanCafe(scanner interface{ Scan(dest ...any) error }) (*domain.Cafe, error) {
	var c domain.Cafe

	var (
		createdAt    string
		updatedAt    string
		imageURLs    string
		openingHours sql.NullString
		menuURL      sql.NullString
		phoneNumber  sql.NullString
	)

	err := scanner.Scan(
		&c.ID,
		&createdAt,
		&updatedAt,
		&c.Name,
		&c.Description,
		&c.Address,
		&c.Latitude,
		&c.Longitude,
		&imageURLs,
		&openingHours,
		&menuURL,
		&phoneNumber,
	)
	if err != nil {
		return nil, err
	}

	c.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	c.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(imageURLs), &c.ImageURLs); err != nil {
		return nil, fmt.Errorf("decode image urls: %w", err)
	}

	if openingHours.Valid {
		c.OpeningHours = openingHours.String
	}
	if menuURL.Valid {
		c.MenuURL = menuURL.String
	}
	if phoneNumber.Valid {
		c.PhoneNumber = phoneNumber.String
	}

	return &c, nil
}

// encodeImageURLs serializes image URLs for the JSON text column.
func encodeImageURLs(urls []string) (string, error) {
	if urls == nil {
		urls = []string{}
	}
	b, err := json.Marshal(urls)
	if err != nil {
		return "", fmt.Errorf("encode image urls: %w", err)
	}
	return string(b), nil
}

// CreateCafe inserts a new cafe into the database.
func (s *Store) CreateCafe(ctx context.Context, cafe *domain.Cafe) error {
	imageURLs, err := encodeImageURLs(cafe.ImageURLs)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO cafes (
			id, created_at, updated_at, name, description, address,
			latitude, longitude, image_urls, opening_hours, menu_url, phone_number
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		cafe.ID,
		formatTime(cafe.CreatedAt),
		formatTime(cafe.UpdatedAt),
		cafe.Name,
		cafe.Description,
		cafe.Address,
		cafe.Latitude,
		cafe.Longitude,
		imageURLs,
		nullString(cafe.OpeningHours),
		nullString(cafe.MenuURL),
		nullString(cafe.PhoneNumber),
	)
	if err != nil {
		return err
	}

	// Persist any tags carried on the record (seed import path).
	for _, name := range cafe.Tags {
		if _, err := s.AddCafeTag(ctx, cafe.ID, name); err != nil {
			return err
		}
	}
	return nil
}

// GetCafe retrieves a cafe by ID with its tag set.
// Returns store.ErrCafeNotFound if the cafe does not exist.
func (s *Store) GetCafe(ctx context.Context, id string) (*domain.Cafe, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+cafeColumns+` FROM cafes WHERE id = ?`, id)

	c, err := scanCafe(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrCafeNotFound
	}
	if err != nil {
		return nil, err
	}

	c.Tags, err = s.cafeTags(ctx, id)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCafe performs a full row update on an existing cafe.
// The tag set is managed through AddCafeTag, not here.
func (s *Store) UpdateCafe(ctx context.Context, cafe *domain.Cafe) error {
	imageURLs, err := encodeImageURLs(cafe.ImageURLs)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE cafes SET
			updated_at = ?, name = ?, description = ?, address = ?,
			latitude = ?, longitude = ?, image_urls = ?,
			opening_hours = ?, menu_url = ?, phone_number = ?
		WHERE id = ?`,
		formatTime(cafe.UpdatedAt),
		cafe.Name,
		cafe.Description,
		cafe.Address,
		cafe.Latitude,
		cafe.Longitude,
		imageURLs,
		nullString(cafe.OpeningHours),
		nullString(cafe.MenuURL),
		nullString(cafe.PhoneNumber),
		cafe.ID,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrCafeNotFound
	}
	return nil
}

// ListCafes returns all cafes with their tag sets, ordered by name.
func (s *Store) ListCafes(ctx context.Context) ([]*domain.Cafe, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+cafeColumns+` FROM cafes ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cafes []*domain.Cafe
	byID := make(map[string]*domain.Cafe)
	for rows.Next() {
		c, err := scanCafe(rows)
		if err != nil {
			return nil, err
		}
		c.Tags = []string{}
		cafes = append(cafes, c)
		byID[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One pass over cafe_tags instead of a query per cafe.
	tagRows, err := s.db.QueryContext(ctx,
		`SELECT cafe_id, tag_name FROM cafe_tags ORDER BY tag_name ASC`)
	if err != nil {
		return nil, err
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var cafeID, tagName string
		if err := tagRows.Scan(&cafeID, &tagName); err != nil {
			return nil, err
		}
		if c, ok := byID[cafeID]; ok {
			c.Tags = append(c.Tags, tagName)
		}
	}
	if err := tagRows.Err(); err != nil {
		return nil, err
	}

	if cafes == nil {
		cafes = []*domain.Cafe{}
	}
	return cafes, nil
}

// AddCafeTag records a normalized tag name on a cafe's tag set.
// Idempotent: the composite primary key means re-applying an existing
// tag is a no-op, reported by the false return.
// Returns store.ErrCafeNotFound if the cafe does not exist.
func (s *Store) AddCafeTag(ctx context.Context, cafeID, name string) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM cafes WHERE id = ?`, cafeID).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, store.ErrCafeNotFound
	}
	if err != nil {
		return false, err
	}

	now := time.Now()
	res, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO cafe_tags (cafe_id, tag_name, created_at)
		VALUES (?, ?, ?)`,
		cafeID, name, formatTime(now),
	)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE cafes SET updated_at = ? WHERE id = ?`, formatTime(now), cafeID)
	if err != nil {
		return false, err
	}
	return true, nil
}

// cafeTags returns the sorted tag names attached to a cafe.
func (s *Store) cafeTags(ctx context.Context, cafeID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tag_name FROM cafe_tags WHERE cafe_id = ? ORDER BY tag_name ASC`, cafeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tags = append(tags, name)
	}
	return tags, rows.Err()
}
