package models

import "time"

// TicketStatus represents the lifecycle state of a helpdesk ticket
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusResolved   TicketStatus = "Resolved"
)

var validTicketStatuses = map[TicketStatus]bool{
	TicketStatusOpen:       true,
	TicketStatusInProgress: true,
	TicketStatusResolved:   true,
}

// IsValid reports whether the status is a known lifecycle state
func (s TicketStatus) IsValid() bool {
	return validTicketStatuses[s]
}

// HelpdeskTicket represents a support request with an append-only message
// thread. Every ticket has at least one message: the opening message is
// inserted in the same transaction as the ticket row.
type HelpdeskTicket struct {
	ID         int64        `json:"id" db:"id"`
	TicketID   string       `json:"ticketId" db:"ticket_id"`
	UserID     int64        `json:"userId" db:"user_id"`
	Category   string       `json:"category" db:"category"`
	Subject    string       `json:"subject" db:"subject"`
	Priority   string       `json:"priority" db:"priority"`
	Status     TicketStatus `json:"status" db:"status"`
	Department *string      `json:"department,omitempty" db:"department"`
	CreatedAt  time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time    `json:"updatedAt" db:"updated_at"`

	// Related entities
	Messages []*HelpdeskMessage `json:"messages,omitempty"`
}

// HelpdeskMessage is one entry in a ticket's conversation thread, ordered by
// creation time.
type HelpdeskMessage struct {
	ID         int64     `json:"id" db:"id"`
	TicketID   int64     `json:"ticketId" db:"ticket_id"`
	SenderRole string    `json:"senderRole" db:"sender_role"`
	SenderName string    `json:"senderName" db:"sender_name"`
	Message    string    `json:"message" db:"message"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
