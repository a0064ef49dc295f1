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
	"github.com/campushub/campushub/internal/pkg/logger"
)

// pollStore is the slice of the poll repository this service uses
type pollStore interface {
	InsertPoll(ctx context.Context, q db.DBTX, p *models.Poll) (int64, error)
	InsertOption(ctx context.Context, q db.DBTX, pollID int64, optionText string) error
	Delete(ctx context.Context, q db.DBTX, id int64) error
	UpdateStatus(ctx context.Context, id int64, status models.PollStatus) error
	GetStatus(ctx context.Context, q db.DBTX, id int64) (models.PollStatus, error)
	InsertVote(ctx context.Context, q db.DBTX, v *models.PollVote) error
	IncrementVoteCount(ctx context.Context, q db.DBTX, pollID, optionID int64) error
	GetByID(ctx context.Context, id int64) (*models.Poll, error)
	List(ctx context.Context, status *models.PollStatus, offset uint64, limit int) ([]models.Poll, int64, error)
}

// PollService defines the interface for poll operations
type PollService interface {
	CreatePoll(ctx context.Context, req *dto.CreatePollRequest) (*dto.PollResponse, error)
	DeletePoll(ctx context.Context, id int64) error
	UpdatePollStatus(ctx context.Context, id int64, status string) (*dto.PollResponse, error)
	Vote(ctx context.Context, pollID, userID int64, optionID int64) (*dto.PollResponse, error)
	GetPoll(ctx context.Context, id int64) (*dto.PollResponse, error)
	ListPolls(ctx context.Context, status *string, page, size int) (*dto.PollListResponse, error)
}

// pollServiceImpl implements PollService
type pollServiceImpl struct {
	pollRepo  pollStore
	txManager db.TxManager
}

// NewPollService creates a new PollService
func NewPollService(pollRepo pollStore, txManager db.TxManager) PollService {
	return &pollServiceImpl{
		pollRepo:  pollRepo,
		txManager: txManager,
	}
}

// CreatePoll creates a poll and its options in one transaction. Blank option
// texts are dropped before any row is written; fewer than two surviving
// options fails the request without touching the database.
func (s *pollServiceImpl) CreatePoll(ctx context.Context, req *dto.CreatePollRequest) (*dto.PollResponse, error) {
	options := make([]string, 0, len(req.Options))
	for _, opt := range req.Options {
		trimmed := strings.TrimSpace(opt)
		if trimmed != "" {
			options = append(options, trimmed)
		}
	}
	if len(options) < 2 {
		return nil, apperrors.NewValidationError("poll needs at least two non-blank options")
	}

	poll := &models.Poll{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Deadline:    req.Deadline,
		Status:      models.PollStatusActive,
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context, tx db.DBTX) error {
		id, err := s.pollRepo.InsertPoll(ctx, tx, poll)
		if err != nil {
			return err
		}
		poll.ID = id

		for _, opt := range options {
			if err := s.pollRepo.InsertOption(ctx, tx, id, opt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("pollId", poll.ID).Int("options", len(options)).Msg("Poll created")

	return s.GetPoll(ctx, poll.ID)
}

// DeletePoll removes a poll inside a transaction; options and votes go with
// it through the schema cascade, so no orphan can survive a partial failure.
func (s *pollServiceImpl) DeletePoll(ctx context.Context, id int64) error {
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context, tx db.DBTX) error {
		return s.pollRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("pollId", id).Msg("Poll deleted")
	return nil
}

// UpdatePollStatus opens or closes a poll
func (s *pollServiceImpl) UpdatePollStatus(ctx context.Context, id int64, status string) (*dto.PollResponse, error) {
	pollStatus := models.PollStatus(status)
	if !pollStatus.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, status)
	}

	if err := s.pollRepo.UpdateStatus(ctx, id, pollStatus); err != nil {
		return nil, err
	}

	return s.GetPoll(ctx, id)
}

// Vote casts one vote. The status check, the vote row, and the tally bump
// share a transaction; a duplicate vote or an option from another poll rolls
// the whole thing back.
func (s *pollServiceImpl) Vote(ctx context.Context, pollID, userID int64, optionID int64) (*dto.PollResponse, error) {
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context, tx db.DBTX) error {
		status, err := s.pollRepo.GetStatus(ctx, tx, pollID)
		if err != nil {
			return err
		}
		if status == models.PollStatusClosed {
			return apperrors.ErrPollClosed
		}

		vote := &models.PollVote{
			PollID:   pollID,
			OptionID: optionID,
			UserID:   userID,
		}
		if err := s.pollRepo.InsertVote(ctx, tx, vote); err != nil {
			return err
		}

		return s.pollRepo.IncrementVoteCount(ctx, tx, pollID, optionID)
	})
	if err != nil {
		return nil, err
	}

	return s.GetPoll(ctx, pollID)
}

// GetPoll retrieves one poll with its options and tallies
func (s *pollServiceImpl) GetPoll(ctx context.Context, id int64) (*dto.PollResponse, error) {
	poll, err := s.pollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewPollResponse(poll)
	return &resp, nil
}

// ListPolls retrieves one page of polls, optionally filtered by status
func (s *pollServiceImpl) ListPolls(ctx context.Context, status *string, page, size int) (*dto.PollListResponse, error) {
	var statusFilter *models.PollStatus
	if status != nil {
		ps := models.PollStatus(*status)
		if !ps.IsValid() {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, *status)
		}
		statusFilter = &ps
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)

	polls, total, err := s.pollRepo.List(ctx, statusFilter, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing polls: %w", err)
	}

	responses := make([]dto.PollResponse, 0, len(polls))
	for i := range polls {
		responses = append(responses, dto.NewPollResponse(&polls[i]))
	}

	return &dto.PollListResponse{
		Polls:          responses,
		PaginationInfo: helpers.NewPaginationInfo(total, page, size),
	}, nil
}
