package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/db"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

func studentStore() *mockUserStore {
	return &mockUserStore{
		FindByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			dept := "Computer Science"
			return &models.User{
				ID: id, Name: "Priya Sharma", Email: "priya@campus.edu",
				Role: models.RoleStudent, Department: &dept,
			}, nil
		},
	}
}

func TestCreateTicket(t *testing.T) {
	req := &dto.CreateTicketRequest{
		Category: "IT",
		Subject:  "Cannot access the library portal",
		Message:  "Login keeps redirecting me back",
	}

	t.Run("ticket and opening message share one transaction", func(t *testing.T) {
		var insertedTicket *models.HelpdeskTicket
		var insertedMessage *models.HelpdeskMessage

		tickets := &mockHelpdeskStore{
			InsertTicketFn: func(ctx context.Context, q db.DBTX, tk *models.HelpdeskTicket) (int64, error) {
				insertedTicket = tk
				return 11, nil
			},
			InsertMessageFn: func(ctx context.Context, q db.DBTX, m *models.HelpdeskMessage) error {
				insertedMessage = m
				return nil
			},
		}
		tm := &fakeTxManager{}
		svc := NewHelpdeskService(tickets, studentStore(), tm)

		resp, err := svc.CreateTicket(context.Background(), 5, req)
		require.NoError(t, err)

		assert.Equal(t, 1, tm.calls)
		assert.Equal(t, "Open", resp.Status)
		assert.Regexp(t, `^TKT\d{8}$`, resp.TicketID)

		require.NotNil(t, insertedTicket)
		assert.Equal(t, models.TicketStatusOpen, insertedTicket.Status)
		assert.Equal(t, "Medium", insertedTicket.Priority)
		require.NotNil(t, insertedTicket.Department)
		assert.Equal(t, "Computer Science", *insertedTicket.Department)

		require.NotNil(t, insertedMessage)
		assert.Equal(t, int64(11), insertedMessage.TicketID)
		assert.Equal(t, "student", insertedMessage.SenderRole)
		assert.Equal(t, "Priya Sharma", insertedMessage.SenderName)
		assert.Equal(t, req.Message, insertedMessage.Message)
	})

	t.Run("blank opening message is rejected before any insert", func(t *testing.T) {
		tickets := &mockHelpdeskStore{
			InsertTicketFn: func(ctx context.Context, q db.DBTX, tk *models.HelpdeskTicket) (int64, error) {
				t.Fatal("insert must not be called")
				return 0, nil
			},
		}
		svc := NewHelpdeskService(tickets, studentStore(), &fakeTxManager{})

		_, err := svc.CreateTicket(context.Background(), 5, &dto.CreateTicketRequest{
			Category: "IT",
			Subject:  "Broken",
			Message:  "   ",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("message insert failure fails the whole creation", func(t *testing.T) {
		tickets := &mockHelpdeskStore{
			InsertTicketFn: func(ctx context.Context, q db.DBTX, tk *models.HelpdeskTicket) (int64, error) {
				return 11, nil
			},
			InsertMessageFn: func(ctx context.Context, q db.DBTX, m *models.HelpdeskMessage) error {
				return errors.New("insert failed")
			},
		}
		svc := NewHelpdeskService(tickets, studentStore(), &fakeTxManager{})

		_, err := svc.CreateTicket(context.Background(), 5, req)
		assert.Error(t, err)
	})
}

func TestAddMessage(t *testing.T) {
	storedTicket := func(status models.TicketStatus) *models.HelpdeskTicket {
		return &models.HelpdeskTicket{
			ID: 11, TicketID: "TKT48291307", Status: status,
			Messages: []*models.HelpdeskMessage{{ID: 1, Message: "first"}},
		}
	}

	t.Run("reply touches status and appends in one transaction", func(t *testing.T) {
		touched := false
		var insertedMessage *models.HelpdeskMessage

		tickets := &mockHelpdeskStore{
			TouchForReplyFn: func(ctx context.Context, q db.DBTX, ticketID int64) error {
				touched = true
				return nil
			},
			InsertMessageFn: func(ctx context.Context, q db.DBTX, m *models.HelpdeskMessage) error {
				require.True(t, touched, "status touch must precede the insert")
				insertedMessage = m
				return nil
			},
			GetTicketByIDFn: func(ctx context.Context, id int64) (*models.HelpdeskTicket, error) {
				return storedTicket(models.TicketStatusInProgress), nil
			},
		}
		tm := &fakeTxManager{}
		svc := NewHelpdeskService(tickets, studentStore(), tm)

		resp, err := svc.AddMessage(context.Background(), 11, 5, &dto.AddMessageRequest{Message: "Still broken"})
		require.NoError(t, err)

		assert.Equal(t, 1, tm.calls)
		assert.Equal(t, "In Progress", resp.Status)
		require.NotNil(t, insertedMessage)
		assert.Equal(t, int64(11), insertedMessage.TicketID)
	})

	t.Run("reply to a missing ticket inserts nothing", func(t *testing.T) {
		tickets := &mockHelpdeskStore{
			TouchForReplyFn: func(ctx context.Context, q db.DBTX, ticketID int64) error {
				return apperrors.ErrTicketNotFound
			},
			InsertMessageFn: func(ctx context.Context, q db.DBTX, m *models.HelpdeskMessage) error {
				t.Fatal("insert must not be called")
				return nil
			},
		}
		svc := NewHelpdeskService(tickets, studentStore(), &fakeTxManager{})

		_, err := svc.AddMessage(context.Background(), 99, 5, &dto.AddMessageRequest{Message: "hello"})
		assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)
	})

	t.Run("blank reply is rejected", func(t *testing.T) {
		svc := NewHelpdeskService(&mockHelpdeskStore{}, studentStore(), &fakeTxManager{})

		_, err := svc.AddMessage(context.Background(), 11, 5, &dto.AddMessageRequest{Message: "\t \n"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestUpdateTicketStatus(t *testing.T) {
	t.Run("valid status is stored", func(t *testing.T) {
		var gotStatus models.TicketStatus
		tickets := &mockHelpdeskStore{
			UpdateStatusFn: func(ctx context.Context, id int64, status models.TicketStatus) error {
				gotStatus = status
				return nil
			},
			GetTicketByIDFn: func(ctx context.Context, id int64) (*models.HelpdeskTicket, error) {
				return &models.HelpdeskTicket{ID: id, Status: models.TicketStatusResolved}, nil
			},
		}
		svc := NewHelpdeskService(tickets, studentStore(), &fakeTxManager{})

		resp, err := svc.UpdateTicketStatus(context.Background(), 11, "Resolved")
		require.NoError(t, err)
		assert.Equal(t, models.TicketStatusResolved, gotStatus)
		assert.Equal(t, "Resolved", resp.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		svc := NewHelpdeskService(&mockHelpdeskStore{}, studentStore(), &fakeTxManager{})

		_, err := svc.UpdateTicketStatus(context.Background(), 11, "Closed")
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})
}
