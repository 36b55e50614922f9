package domain

import "time"

// Tag represents a descriptive community tag for cafes.
// Tags are owned collectively, no single cafe owns a tag. Name is the
// canonical normalized form (trimmed, lowercased) and is the source of
// truth for tag identity.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Weight    int       `json:"weight"` // Total applications across all cafes. Never decrements.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Touch updates the UpdatedAt timestamp.
func (t *Tag) Touch() {
	t.UpdatedAt = time.Now()
}
