package model

import "time"

// Store ownership categories. Office stores exist for internal scheduling
// only and are never offered for booking.
const (
	StoreCategoryNormal = "normal"
	StoreCategoryOffice = "office"
)

type Store struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ShortName string    `json:"short_name,omitempty"`
	Address   string    `json:"address,omitempty"`
	Category  string    `json:"category"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Bookable reports whether the store may appear in booking candidate grids.
func (s Store) Bookable() bool {
	return s.IsActive && s.Category != StoreCategoryOffice
}

type Staff struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
