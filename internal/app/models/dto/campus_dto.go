package dto

import (
	"time"

	"github.com/campushub/campushub/internal/app/models"
)

// --- Clubs ---

// CreateClubRequest creates a student club
type CreateClubRequest struct {
	Name        string `json:"name" binding:"required" example:"Robotics Club"`
	Description string `json:"description" example:"Build and race robots"`
	Category    string `json:"category" example:"Technical"`
	FacultyHead *int64 `json:"facultyHead,omitempty" example:"7"`
}

// UpdateClubRequest updates a club's details
type UpdateClubRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	FacultyHead *int64  `json:"facultyHead,omitempty"`
}

// ClubResponse is the read shape of a club
type ClubResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	FacultyHead *int64    `json:"facultyHead,omitempty"`
	MemberCount int64     `json:"memberCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewClubResponse maps a model onto the read shape
func NewClubResponse(c *models.Club, memberCount int64) ClubResponse {
	return ClubResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Category:    c.Category,
		FacultyHead: c.FacultyHead,
		MemberCount: memberCount,
		CreatedAt:   c.CreatedAt,
	}
}

// --- Events ---

// CreateEventRequest creates a campus event
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required" example:"TechFest 2026"`
	Description string    `json:"description"`
	Venue       string    `json:"venue" binding:"required" example:"Main Auditorium"`
	ClubID      *int64    `json:"clubId,omitempty"`
	StartsAt    time.Time `json:"startsAt" binding:"required"`
	EndsAt      time.Time `json:"endsAt" binding:"required"`
}

// UpdateEventRequest updates an event's details
type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Venue       *string    `json:"venue,omitempty"`
	StartsAt    *time.Time `json:"startsAt,omitempty"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
}

// EventResponse is the read shape of an event
type EventResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Venue       string    `json:"venue"`
	ClubID      *int64    `json:"clubId,omitempty"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewEventResponse maps a model onto the read shape
func NewEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Venue:       e.Venue,
		ClubID:      e.ClubID,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		CreatedAt:   e.CreatedAt,
	}
}

// --- Notices ---

// CreateNoticeRequest posts a notice to the board
type CreateNoticeRequest struct {
	Title    string `json:"title" binding:"required" example:"Semester exam schedule"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" example:"Academics"`
}

// UpdateNoticeRequest updates a posted notice
type UpdateNoticeRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
}

// NoticeResponse is the read shape of a notice
type NoticeResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	PostedBy  int64     `json:"postedBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewNoticeResponse maps a model onto the read shape
func NewNoticeResponse(n *models.Notice) NoticeResponse {
	return NoticeResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Category:  n.Category,
		PostedBy:  n.PostedBy,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// --- Placements ---

// CreatePlacementRequest posts a recruitment drive
type CreatePlacementRequest struct {
	Company     string    `json:"company" binding:"required" example:"Acme Corp"`
	Role        string    `json:"role" binding:"required" example:"Graduate Engineer"`
	Description string    `json:"description"`
	Package     string    `json:"package" example:"8 LPA"`
	Eligibility string    `json:"eligibility" example:"CGPA >= 7.0, no active backlogs"`
	DriveDate   time.Time `json:"driveDate" binding:"required"`
}

// UpdatePlacementRequest updates a posted drive
type UpdatePlacementRequest struct {
	Company     *string    `json:"company,omitempty"`
	Role        *string    `json:"role,omitempty"`
	Description *string    `json:"description,omitempty"`
	Package     *string    `json:"package,omitempty"`
	Eligibility *string    `json:"eligibility,omitempty"`
	DriveDate   *time.Time `json:"driveDate,omitempty"`
}

// PlacementResponse is the read shape of a placement drive
type PlacementResponse struct {
	ID          int64     `json:"id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Description string    `json:"description"`
	Package     string    `json:"package"`
	Eligibility string    `json:"eligibility"`
	DriveDate   time.Time `json:"driveDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewPlacementResponse maps a model onto the read shape
func NewPlacementResponse(p *models.Placement) PlacementResponse {
	return PlacementResponse{
		ID:          p.ID,
		Company:     p.Company,
		Role:        p.Role,
		Description: p.Description,
		Package:     p.Package,
		Eligibility: p.Eligibility,
		DriveDate:   p.DriveDate,
		CreatedAt:   p.CreatedAt,
	}
}
