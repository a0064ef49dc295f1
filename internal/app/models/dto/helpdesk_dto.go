package dto

import (
	"time"

	"github.com/campushub/campushub/internal/app/models"
)

// CreateTicketRequest opens a helpdesk ticket; the message becomes the first
// entry of the conversation thread.
type CreateTicketRequest struct {
	Category string `json:"category" binding:"required" example:"IT"`
	Subject  string `json:"subject" binding:"required" example:"Cannot access the library portal"`
	Message  string `json:"message" binding:"required" example:"Login keeps redirecting me back"`
	Priority string `json:"priority" binding:"omitempty,oneof=Low Medium High" example:"Medium"`
}

// CreateTicketResponse returns the reference code and the fixed initial status
type CreateTicketResponse struct {
	TicketID string `json:"ticketId" example:"TKT48291307"`
	Status   string `json:"status" example:"Open"`
}

// AddMessageRequest appends a reply to a ticket's thread
type AddMessageRequest struct {
	Message string `json:"message" binding:"required" example:"Still failing after the password reset"`
}

// UpdateTicketStatusRequest sets a ticket's status directly (staff only)
type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Resolved"`
}

// TicketMessageResponse is one message in a thread
type TicketMessageResponse struct {
	ID         int64     `json:"id"`
	SenderRole string    `json:"senderRole" example:"student"`
	SenderName string    `json:"senderName" example:"Priya Sharma"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TicketResponse is the read shape of a ticket with its thread
type TicketResponse struct {
	ID         int64                   `json:"id"`
	TicketID   string                  `json:"ticketId" example:"TKT48291307"`
	Category   string                  `json:"category" example:"IT"`
	Subject    string                  `json:"subject"`
	Priority   string                  `json:"priority" example:"Medium"`
	Status     string                  `json:"status" example:"In Progress"`
	Department *string                 `json:"department,omitempty"`
	CreatedAt  time.Time               `json:"createdAt"`
	UpdatedAt  time.Time               `json:"updatedAt"`
	Messages   []TicketMessageResponse `json:"messages,omitempty"`
}

// TicketListResponse is one page of tickets
type TicketListResponse struct {
	Tickets        []TicketResponse `json:"tickets"`
	PaginationInfo PaginationInfo   `json:"pagination"`
}

// NewTicketResponse maps a model onto the read shape
func NewTicketResponse(t *models.HelpdeskTicket) TicketResponse {
	resp := TicketResponse{
		ID:         t.ID,
		TicketID:   t.TicketID,
		Category:   t.Category,
		Subject:    t.Subject,
		Priority:   t.Priority,
		Status:     string(t.Status),
		Department: t.Department,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
	for _, m := range t.Messages {
		resp.Messages = append(resp.Messages, TicketMessageResponse{
			ID:         m.ID,
			SenderRole: m.SenderRole,
			SenderName: m.SenderName,
			Message:    m.Message,
			CreatedAt:  m.CreatedAt,
		})
	}
	return resp
}
