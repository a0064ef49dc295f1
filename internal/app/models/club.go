package models

import "time"

// Club represents a student club or society
type Club struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	FacultyHead *int64    `json:"facultyHead,omitempty" db:"faculty_head"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Related entities
	Members []*User `json:"members,omitempty"`
}

// ClubMember records one user's membership in a club
type ClubMember struct {
	ID       int64     `json:"id" db:"id"`
	ClubID   int64     `json:"clubId" db:"club_id"`
	UserID   int64     `json:"userId" db:"user_id"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}
