package domain

import "time"

// Review represents a member's review of a cafe.
// UserEmail is denormalized at creation time for display without an
// extra user lookup.
type Review struct {
	ID        string    `json:"id"`
	CafeID    string    `json:"cafe_id"`
	UserID    string    `json:"user_id"`
	UserEmail string    `json:"user_email"`
	Rating    int       `json:"rating"` // 0-5
	Comment   string    `json:"comment"`
	ImageURLs []string  `json:"image_urls"`
	CreatedAt time.Time `json:"created_at"`
}
