package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/db"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

// HelpdeskRepository handles database operations for tickets and their
// message threads.
type HelpdeskRepository struct {
	db db.DBTX
}

// NewHelpdeskRepository creates a new HelpdeskRepository
func NewHelpdeskRepository(db db.DBTX) *HelpdeskRepository {
	return &HelpdeskRepository{db: db}
}

// InsertTicket writes a new ticket row on the caller's querier. The opening
// message must be inserted in the same transaction so a ticket is never
// observable without at least one message.
func (r *HelpdeskRepository) InsertTicket(ctx context.Context, q db.DBTX, t *models.HelpdeskTicket) (int64, error) {
	query := `
		INSERT INTO helpdesk_tickets (ticket_id, user_id, category, subject, priority, status, department)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		t.TicketID, t.UserID, t.Category, t.Subject, t.Priority, t.Status, t.Department).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting ticket: %w", err)
	}

	return id, nil
}

// InsertMessage appends a message to a ticket's thread on the caller's querier.
func (r *HelpdeskRepository) InsertMessage(ctx context.Context, q db.DBTX, m *models.HelpdeskMessage) error {
	query := `
		INSERT INTO helpdesk_messages (ticket_id, sender_role, sender_name, message)
		VALUES ($1, $2, $3, $4)
	`

	_, err := q.Exec(ctx, query, m.TicketID, m.SenderRole, m.SenderName, m.Message)
	if err != nil {
		return fmt.Errorf("error inserting ticket message: %w", err)
	}

	return nil
}

// TouchForReply bumps a ticket's updated_at and promotes its status to
// In Progress unless it is already there, in one statement. A reply advances
// the conversation whatever state the ticket was in; replying to an
// In Progress ticket leaves the status untouched. Zero matched rows means
// the ticket does not exist.
func (r *HelpdeskRepository) TouchForReply(ctx context.Context, q db.DBTX, ticketID int64) error {
	query := `
		UPDATE helpdesk_tickets
		SET status = CASE WHEN status <> 'In Progress' THEN 'In Progress' ELSE status END,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query, ticketID)
	if err != nil {
		return fmt.Errorf("error promoting ticket status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrTicketNotFound
	}

	return nil
}

// UpdateStatus sets a ticket's status directly.
func (r *HelpdeskRepository) UpdateStatus(ctx context.Context, id int64, status models.TicketStatus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE helpdesk_tickets SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating ticket status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrTicketNotFound
	}

	return nil
}

// GetTicketByID retrieves a ticket with its full message thread, oldest
// message first.
func (r *HelpdeskRepository) GetTicketByID(ctx context.Context, id int64) (*models.HelpdeskTicket, error) {
	query := `
		SELECT id, ticket_id, user_id, category, subject, priority, status, department, created_at, updated_at
		FROM helpdesk_tickets
		WHERE id = $1
	`

	var t models.HelpdeskTicket
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.TicketID, &t.UserID, &t.Category, &t.Subject,
		&t.Priority, &t.Status, &t.Department, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("error fetching ticket: %w", err)
	}

	messagesQuery := `
		SELECT id, ticket_id, sender_role, sender_name, message, created_at
		FROM helpdesk_messages
		WHERE ticket_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, messagesQuery, id)
	if err != nil {
		return nil, fmt.Errorf("error fetching ticket messages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.HelpdeskMessage
		if err := rows.Scan(&m.ID, &m.TicketID, &m.SenderRole, &m.SenderName, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning ticket message row: %w", err)
		}
		t.Messages = append(t.Messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ticket message rows: %w", err)
	}

	return &t, nil
}

// ListTickets retrieves one page of tickets, newest first. A nil userID lists
// every ticket (staff view); otherwise only the owner's.
func (r *HelpdeskRepository) ListTickets(ctx context.Context, userID *int64, offset uint64, limit int) ([]models.HelpdeskTicket, int64, error) {
	query := `
		SELECT id, ticket_id, user_id, category, subject, priority, status, department, created_at, updated_at,
			COUNT(*) OVER() AS total_count
		FROM helpdesk_tickets
		WHERE ($1::bigint IS NULL OR user_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing tickets: %w", err)
	}
	defer rows.Close()

	var tickets []models.HelpdeskTicket
	var total int64
	for rows.Next() {
		var t models.HelpdeskTicket
		if err := rows.Scan(
			&t.ID, &t.TicketID, &t.UserID, &t.Category, &t.Subject,
			&t.Priority, &t.Status, &t.Department, &t.CreatedAt, &t.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning ticket row: %w", err)
		}
		tickets = append(tickets, t)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating ticket rows: %w", err)
	}

	if tickets == nil {
		tickets = []models.HelpdeskTicket{}
	}

	return tickets, total, nil
}
