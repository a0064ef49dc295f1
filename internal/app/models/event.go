package models

import "time"

// Event represents a campus event, optionally organized by a club
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Venue       string    `json:"venue" db:"venue"`
	ClubID      *int64    `json:"clubId,omitempty" db:"club_id"`
	StartsAt    time.Time `json:"startsAt" db:"starts_at"`
	EndsAt      time.Time `json:"endsAt" db:"ends_at"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Related entities
	Club *Club `json:"club,omitempty"`
}
