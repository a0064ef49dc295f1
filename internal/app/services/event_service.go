package services

import (
	"context"
	"fmt"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/helpers"
)

// EventService defines the interface for campus event operations
type EventService interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	DeleteEvent(ctx context.Context, id int64) error
	GetEvent(ctx context.Context, id int64) (*dto.EventResponse, error)
	ListEvents(ctx context.Context, filter repositories.EventFilter, page, size int) ([]dto.EventResponse, dto.PaginationInfo, error)
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	eventRepo *repositories.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo *repositories.EventRepository) EventService {
	return &eventServiceImpl{eventRepo: eventRepo}
}

// CreateEvent schedules a new event
func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if !req.EndsAt.After(req.StartsAt) {
		return nil, apperrors.NewValidationError("event must end after it starts")
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Venue:       req.Venue,
		ClubID:      req.ClubID,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}

	id, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	return s.GetEvent(ctx, id)
}

// UpdateEvent applies a partial update to an event
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	if req.StartsAt != nil && req.EndsAt != nil && !req.EndsAt.After(*req.StartsAt) {
		return nil, apperrors.NewValidationError("event must end after it starts")
	}

	if err := s.eventRepo.Update(ctx, id, req.Title, req.Description, req.Venue, req.StartsAt, req.EndsAt); err != nil {
		return nil, err
	}

	return s.GetEvent(ctx, id)
}

// DeleteEvent removes an event
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}

// GetEvent retrieves one event
func (s *eventServiceImpl) GetEvent(ctx context.Context, id int64) (*dto.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewEventResponse(event)
	return &resp, nil
}

// ListEvents retrieves one page of events
func (s *eventServiceImpl) ListEvents(ctx context.Context, filter repositories.EventFilter, page, size int) ([]dto.EventResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	events, total, err := s.eventRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing events: %w", err)
	}

	responses := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, dto.NewEventResponse(&events[i]))
	}

	return responses, helpers.NewPaginationInfo(total, page, size), nil
}
