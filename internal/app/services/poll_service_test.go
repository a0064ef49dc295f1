package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/db"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

func storedPoll(id int64, status models.PollStatus) *models.Poll {
	return &models.Poll{
		ID: id, Title: "Canteen menu revamp", Status: status,
		Deadline: time.Now().Add(24 * time.Hour),
		Options: []*models.PollOption{
			{ID: 1, PollID: id, OptionText: "South Indian", VotesCount: 3},
			{ID: 2, PollID: id, OptionText: "Continental", VotesCount: 1},
		},
	}
}

func TestCreatePoll(t *testing.T) {
	t.Run("drops blank options and inserts the survivors", func(t *testing.T) {
		var inserted []string
		polls := &mockPollStore{
			InsertPollFn: func(ctx context.Context, q db.DBTX, p *models.Poll) (int64, error) {
				assert.Equal(t, models.PollStatusActive, p.Status)
				return 9, nil
			},
			InsertOptionFn: func(ctx context.Context, q db.DBTX, pollID int64, optionText string) error {
				assert.Equal(t, int64(9), pollID)
				inserted = append(inserted, optionText)
				return nil
			},
			GetByIDFn: func(ctx context.Context, id int64) (*models.Poll, error) {
				return storedPoll(id, models.PollStatusActive), nil
			},
		}
		tm := &fakeTxManager{}
		svc := NewPollService(polls, tm)

		resp, err := svc.CreatePoll(context.Background(), &dto.CreatePollRequest{
			Title:    "Canteen menu revamp",
			Deadline: time.Now().Add(24 * time.Hour),
			Options:  []string{" South Indian ", "", "Continental", "   "},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, tm.calls)
		assert.Equal(t, []string{"South Indian", "Continental"}, inserted)
		assert.Len(t, resp.Options, 2)
	})

	t.Run("fewer than two non-blank options fails before any row", func(t *testing.T) {
		polls := &mockPollStore{
			InsertPollFn: func(ctx context.Context, q db.DBTX, p *models.Poll) (int64, error) {
				t.Fatal("insert must not be called")
				return 0, nil
			},
		}
		tm := &fakeTxManager{}
		svc := NewPollService(polls, tm)

		_, err := svc.CreatePoll(context.Background(), &dto.CreatePollRequest{
			Title:    "Broken poll",
			Deadline: time.Now(),
			Options:  []string{"Only one", "  ", ""},
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Equal(t, 0, tm.calls)
	})
}

func TestDeletePoll(t *testing.T) {
	t.Run("delete runs inside a transaction", func(t *testing.T) {
		deleted := false
		polls := &mockPollStore{
			DeleteFn: func(ctx context.Context, q db.DBTX, id int64) error {
				deleted = true
				return nil
			},
		}
		tm := &fakeTxManager{}
		svc := NewPollService(polls, tm)

		require.NoError(t, svc.DeletePoll(context.Background(), 9))
		assert.True(t, deleted)
		assert.Equal(t, 1, tm.calls)
	})

	t.Run("missing poll surfaces not found", func(t *testing.T) {
		polls := &mockPollStore{
			DeleteFn: func(ctx context.Context, q db.DBTX, id int64) error {
				return apperrors.ErrPollNotFound
			},
		}
		svc := NewPollService(polls, &fakeTxManager{})

		assert.ErrorIs(t, svc.DeletePoll(context.Background(), 99), apperrors.ErrPollNotFound)
	})
}

func TestVote(t *testing.T) {
	t.Run("vote checks status, records the vote and bumps the tally", func(t *testing.T) {
		var votedOption int64
		var bumped bool
		polls := &mockPollStore{
			GetStatusFn: func(ctx context.Context, q db.DBTX, id int64) (models.PollStatus, error) {
				return models.PollStatusActive, nil
			},
			InsertVoteFn: func(ctx context.Context, q db.DBTX, v *models.PollVote) error {
				votedOption = v.OptionID
				return nil
			},
			IncrementVoteCountFn: func(ctx context.Context, q db.DBTX, pollID, optionID int64) error {
				assert.Equal(t, votedOption, optionID, "tally bump must follow the vote row")
				bumped = true
				return nil
			},
			GetByIDFn: func(ctx context.Context, id int64) (*models.Poll, error) {
				return storedPoll(id, models.PollStatusActive), nil
			},
		}
		tm := &fakeTxManager{}
		svc := NewPollService(polls, tm)

		_, err := svc.Vote(context.Background(), 9, 5, 2)
		require.NoError(t, err)
		assert.True(t, bumped)
		assert.Equal(t, 1, tm.calls)
	})

	t.Run("closed poll rejects the vote before the insert", func(t *testing.T) {
		polls := &mockPollStore{
			GetStatusFn: func(ctx context.Context, q db.DBTX, id int64) (models.PollStatus, error) {
				return models.PollStatusClosed, nil
			},
			InsertVoteFn: func(ctx context.Context, q db.DBTX, v *models.PollVote) error {
				t.Fatal("insert must not be called")
				return nil
			},
		}
		svc := NewPollService(polls, &fakeTxManager{})

		_, err := svc.Vote(context.Background(), 9, 5, 2)
		assert.ErrorIs(t, err, apperrors.ErrPollClosed)
	})

	t.Run("duplicate vote surfaces the conflict", func(t *testing.T) {
		polls := &mockPollStore{
			GetStatusFn: func(ctx context.Context, q db.DBTX, id int64) (models.PollStatus, error) {
				return models.PollStatusActive, nil
			},
			InsertVoteFn: func(ctx context.Context, q db.DBTX, v *models.PollVote) error {
				return apperrors.ErrAlreadyVoted
			},
			IncrementVoteCountFn: func(ctx context.Context, q db.DBTX, pollID, optionID int64) error {
				t.Fatal("tally must not be bumped")
				return nil
			},
		}
		svc := NewPollService(polls, &fakeTxManager{})

		_, err := svc.Vote(context.Background(), 9, 5, 2)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyVoted)
	})

	t.Run("option from another poll rolls the vote back", func(t *testing.T) {
		polls := &mockPollStore{
			GetStatusFn: func(ctx context.Context, q db.DBTX, id int64) (models.PollStatus, error) {
				return models.PollStatusActive, nil
			},
			InsertVoteFn: func(ctx context.Context, q db.DBTX, v *models.PollVote) error {
				return nil
			},
			IncrementVoteCountFn: func(ctx context.Context, q db.DBTX, pollID, optionID int64) error {
				return apperrors.ErrPollOptionNotFound
			},
		}
		svc := NewPollService(polls, &fakeTxManager{})

		_, err := svc.Vote(context.Background(), 9, 5, 77)
		assert.ErrorIs(t, err, apperrors.ErrPollOptionNotFound)
	})
}

func TestUpdatePollStatus(t *testing.T) {
	t.Run("unknown status is rejected", func(t *testing.T) {
		svc := NewPollService(&mockPollStore{}, &fakeTxManager{})

		_, err := svc.UpdatePollStatus(context.Background(), 9, "archived")
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})

	t.Run("closing a poll is stored", func(t *testing.T) {
		var gotStatus models.PollStatus
		polls := &mockPollStore{
			UpdateStatusFn: func(ctx context.Context, id int64, status models.PollStatus) error {
				gotStatus = status
				return nil
			},
			GetByIDFn: func(ctx context.Context, id int64) (*models.Poll, error) {
				return storedPoll(id, models.PollStatusClosed), nil
			},
		}
		svc := NewPollService(polls, &fakeTxManager{})

		resp, err := svc.UpdatePollStatus(context.Background(), 9, "closed")
		require.NoError(t, err)
		assert.Equal(t, models.PollStatusClosed, gotStatus)
		assert.Equal(t, "closed", resp.Status)
	})
}
