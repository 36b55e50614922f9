package domain

import (
	"slices"
	"time"
)

// Cafe represents a coffee shop on the platform.
// Cafes are created by members and hold descriptive metadata such as
// geolocation, tags, and a human-readable description.
type Cafe struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`

	// Tags holds normalized tag names. Order is not significant and
	// entries are deduplicated. Weighting lives on the Tag record.
	Tags []string `json:"tags"`

	ImageURLs    []string `json:"image_urls"`
	OpeningHours string   `json:"opening_hours,omitempty"`
	MenuURL      string   `json:"menu_url,omitempty"`
	PhoneNumber  string   `json:"phone_number,omitempty"`
}

// HasTag reports whether the cafe already carries the normalized tag name.
func (c *Cafe) HasTag(name string) bool {
	return slices.Contains(c.Tags, name)
}

// AddTag adds the normalized tag name to the cafe's tag set.
// Returns false if the cafe already carried the tag.
func (c *Cafe) AddTag(name string) bool {
	if c.HasTag(name) {
		return false
	}
	c.Tags = append(c.Tags, name)
	return true
}

// Touch updates the UpdatedAt timestamp.
func (c *Cafe) Touch() {
	c.UpdatedAt = time.Now()
}

// InitTimestamps sets both CreatedAt and UpdatedAt to now.
func (c *Cafe) InitTimestamps() {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
}
