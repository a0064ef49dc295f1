package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/db"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/helpers"
	"github.com/campushub/campushub/internal/pkg/identifier"
	"github.com/campushub/campushub/internal/pkg/logger"
)

// helpdeskStore is the slice of the helpdesk repository this service uses
type helpdeskStore interface {
	InsertTicket(ctx context.Context, q db.DBTX, t *models.HelpdeskTicket) (int64, error)
	InsertMessage(ctx context.Context, q db.DBTX, m *models.HelpdeskMessage) error
	TouchForReply(ctx context.Context, q db.DBTX, ticketID int64) error
	UpdateStatus(ctx context.Context, id int64, status models.TicketStatus) error
	GetTicketByID(ctx context.Context, id int64) (*models.HelpdeskTicket, error)
	ListTickets(ctx context.Context, userID *int64, offset uint64, limit int) ([]models.HelpdeskTicket, int64, error)
}

// HelpdeskService defines the interface for helpdesk ticket operations
type HelpdeskService interface {
	CreateTicket(ctx context.Context, userID int64, req *dto.CreateTicketRequest) (*dto.CreateTicketResponse, error)
	AddMessage(ctx context.Context, ticketID, senderID int64, req *dto.AddMessageRequest) (*dto.TicketResponse, error)
	UpdateTicketStatus(ctx context.Context, ticketID int64, status string) (*dto.TicketResponse, error)
	GetTicket(ctx context.Context, id int64) (*dto.TicketResponse, error)
	ListTickets(ctx context.Context, userID *int64, page, size int) (*dto.TicketListResponse, error)
}

// helpdeskServiceImpl implements HelpdeskService
type helpdeskServiceImpl struct {
	helpdeskRepo helpdeskStore
	userRepo     userStore
	txManager    db.TxManager
}

// NewHelpdeskService creates a new HelpdeskService
func NewHelpdeskService(helpdeskRepo helpdeskStore, userRepo userStore, txManager db.TxManager) HelpdeskService {
	return &helpdeskServiceImpl{
		helpdeskRepo: helpdeskRepo,
		userRepo:     userRepo,
		txManager:    txManager,
	}
}

// CreateTicket opens a ticket with the request message as the first thread
// entry. The ticket row and the opening message commit in one transaction so
// a ticket can never exist with an empty thread.
func (s *helpdeskServiceImpl) CreateTicket(ctx context.Context, userID int64, req *dto.CreateTicketRequest) (*dto.CreateTicketResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, apperrors.NewValidationError("message must not be blank")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = "Medium"
	}

	ticket := &models.HelpdeskTicket{
		TicketID:   identifier.New(identifier.TicketPrefix),
		UserID:     userID,
		Category:   req.Category,
		Subject:    req.Subject,
		Priority:   priority,
		Status:     models.TicketStatusOpen,
		Department: user.Department,
	}

	err = s.txManager.WithTransaction(ctx, func(ctx context.Context, tx db.DBTX) error {
		id, err := s.helpdeskRepo.InsertTicket(ctx, tx, ticket)
		if err != nil {
			return err
		}
		ticket.ID = id

		opening := &models.HelpdeskMessage{
			TicketID:   id,
			SenderRole: string(user.Role),
			SenderName: user.Name,
			Message:    req.Message,
		}
		return s.helpdeskRepo.InsertMessage(ctx, tx, opening)
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Str("ticketId", ticket.TicketID).Int64("userId", userID).Msg("Helpdesk ticket created")

	return &dto.CreateTicketResponse{
		TicketID: ticket.TicketID,
		Status:   string(ticket.Status),
	}, nil
}

// AddMessage appends a reply to a ticket's thread. The status touch and the
// message insert share a transaction: a reply to a Resolved ticket reopens it
// as In Progress, and a reply to a missing ticket inserts nothing.
func (s *helpdeskServiceImpl) AddMessage(ctx context.Context, ticketID, senderID int64, req *dto.AddMessageRequest) (*dto.TicketResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, apperrors.NewValidationError("message must not be blank")
	}

	sender, err := s.userRepo.FindByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	err = s.txManager.WithTransaction(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := s.helpdeskRepo.TouchForReply(ctx, tx, ticketID); err != nil {
			return err
		}

		reply := &models.HelpdeskMessage{
			TicketID:   ticketID,
			SenderRole: string(sender.Role),
			SenderName: sender.Name,
			Message:    req.Message,
		}
		return s.helpdeskRepo.InsertMessage(ctx, tx, reply)
	})
	if err != nil {
		return nil, err
	}

	return s.GetTicket(ctx, ticketID)
}

// UpdateTicketStatus sets a ticket's status directly
func (s *helpdeskServiceImpl) UpdateTicketStatus(ctx context.Context, ticketID int64, status string) (*dto.TicketResponse, error) {
	ticketStatus := models.TicketStatus(status)
	if !ticketStatus.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, status)
	}

	if err := s.helpdeskRepo.UpdateStatus(ctx, ticketID, ticketStatus); err != nil {
		return nil, err
	}

	return s.GetTicket(ctx, ticketID)
}

// GetTicket retrieves one ticket with its full thread
func (s *helpdeskServiceImpl) GetTicket(ctx context.Context, id int64) (*dto.TicketResponse, error) {
	ticket, err := s.helpdeskRepo.GetTicketByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewTicketResponse(ticket)
	return &resp, nil
}

// ListTickets retrieves one page of tickets. A nil userID is the staff view
// across all requesters.
func (s *helpdeskServiceImpl) ListTickets(ctx context.Context, userID *int64, page, size int) (*dto.TicketListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	tickets, total, err := s.helpdeskRepo.ListTickets(ctx, userID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing tickets: %w", err)
	}

	responses := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		responses = append(responses, dto.NewTicketResponse(&tickets[i]))
	}

	return &dto.TicketListResponse{
		Tickets:        responses,
		PaginationInfo: helpers.NewPaginationInfo(total, page, size),
	}, nil
}
