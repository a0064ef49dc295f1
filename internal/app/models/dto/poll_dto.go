package dto

import (
	"time"

	"github.com/campushub/campushub/internal/app/models"
)

// CreatePollRequest creates a poll with its options in one unit. At least two
// options are required at the binding layer; the service drops blank entries
// and re-checks what survives.
type CreatePollRequest struct {
	Title       string    `json:"title" binding:"required" example:"Canteen menu revamp"`
	Description string    `json:"description" example:"Pick the cuisine you want added"`
	Category    string    `json:"category" example:"Campus Life"`
	Deadline    time.Time `json:"deadline" binding:"required" example:"2026-10-01T00:00:00Z"`
	Options     []string  `json:"options" binding:"required,min=2"`
}

// UpdatePollStatusRequest opens or closes a poll
type UpdatePollStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active closed" example:"closed"`
}

// VoteRequest casts a vote for one option
type VoteRequest struct {
	OptionID int64 `json:"optionId" binding:"required" example:"3"`
}

// PollOptionResponse is one option with its running tally
type PollOptionResponse struct {
	ID         int64  `json:"id"`
	OptionText string `json:"optionText" example:"South Indian"`
	VotesCount int    `json:"votesCount" example:"12"`
}

// PollResponse is the read shape of a poll with its options
type PollResponse struct {
	ID          int64                `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Category    string               `json:"category"`
	Deadline    time.Time            `json:"deadline"`
	Status      string               `json:"status" example:"active"`
	CreatedAt   time.Time            `json:"createdAt"`
	Options     []PollOptionResponse `json:"options"`
}

// PollListResponse is one page of polls
type PollListResponse struct {
	Polls          []PollResponse `json:"polls"`
	PaginationInfo PaginationInfo `json:"pagination"`
}

// NewPollResponse maps a model onto the read shape
func NewPollResponse(p *models.Poll) PollResponse {
	resp := PollResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Deadline:    p.Deadline,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		Options:     []PollOptionResponse{},
	}
	for _, o := range p.Options {
		resp.Options = append(resp.Options, PollOptionResponse{
			ID:         o.ID,
			OptionText: o.OptionText,
			VotesCount: o.VotesCount,
		})
	}
	return resp
}
