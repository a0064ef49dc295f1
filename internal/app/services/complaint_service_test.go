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

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func facultyUser(id int64) *models.User {
	return &models.User{ID: id, Name: "Dr. Rao", Email: "rao@campus.edu", Role: models.RoleFaculty}
}

func TestCreateComplaint(t *testing.T) {
	req := &dto.CreateComplaintRequest{
		Category:    "Hostel",
		SubCategory: "WiFi",
		Subject:     "No connectivity",
		Description: "No WiFi in block C since Monday",
	}

	t.Run("commits complaint and notification together", func(t *testing.T) {
		var insertedComplaint *models.Complaint
		var insertedNotification *models.Notification

		complaints := &mockComplaintStore{
			InsertFn: func(ctx context.Context, q db.DBTX, c *models.Complaint) (int64, error) {
				insertedComplaint = c
				return 42, nil
			},
		}
		notifications := &mockNotificationStore{
			InsertFn: func(ctx context.Context, q db.DBTX, n *models.Notification) error {
				insertedNotification = n
				return nil
			},
		}
		tm := &fakeTxManager{}
		svc := NewComplaintService(complaints, notifications, &mockUserStore{}, tm, &mockFileStorage{})

		resp, err := svc.CreateComplaint(context.Background(), 5, req, nil)
		require.NoError(t, err)

		assert.Equal(t, 1, tm.calls)
		assert.Equal(t, "Pending", resp.Status)
		assert.Regexp(t, `^CMP\d{8}$`, resp.ComplaintID)

		require.NotNil(t, insertedComplaint)
		assert.Equal(t, models.ComplaintStatusPending, insertedComplaint.Status)
		assert.Equal(t, models.PriorityMedium, insertedComplaint.Priority)

		require.NotNil(t, insertedNotification)
		assert.Equal(t, int64(5), insertedNotification.UserID)
		assert.Equal(t, models.NotificationTypeComplaint, insertedNotification.Type)
		require.NotNil(t, insertedNotification.RelatedID)
		assert.Equal(t, int64(42), *insertedNotification.RelatedID)
	})

	t.Run("notification failure rolls back and surfaces taxonomy error", func(t *testing.T) {
		complaints := &mockComplaintStore{
			InsertFn: func(ctx context.Context, q db.DBTX, c *models.Complaint) (int64, error) {
				return 42, nil
			},
		}
		notifications := &mockNotificationStore{
			InsertFn: func(ctx context.Context, q db.DBTX, n *models.Notification) error {
				return errors.New("disk full")
			},
		}
		svc := NewComplaintService(complaints, notifications, &mockUserStore{}, &fakeTxManager{}, &mockFileStorage{})

		_, err := svc.CreateComplaint(context.Background(), 5, req, nil)
		assert.ErrorIs(t, err, apperrors.ErrNotificationWrite)
	})

	t.Run("removes staged attachment when transaction fails", func(t *testing.T) {
		complaints := &mockComplaintStore{
			InsertFn: func(ctx context.Context, q db.DBTX, c *models.Complaint) (int64, error) {
				return 0, errors.New("insert failed")
			},
		}
		storage := &mockFileStorage{}
		svc := NewComplaintService(complaints, &mockNotificationStore{}, &mockUserStore{}, &fakeTxManager{}, storage)

		filePath := "complaints/abc.pdf"
		_, err := svc.CreateComplaint(context.Background(), 5, req, &filePath)
		require.Error(t, err)
		assert.Equal(t, []string{"complaints/abc.pdf"}, storage.Deleted)
	})
}

func TestUpdateComplaint(t *testing.T) {
	stored := &models.Complaint{
		ID:          42,
		ComplaintID: "CMP48291307",
		Status:      models.ComplaintStatusInProgress,
		Priority:    models.PriorityMedium,
	}

	t.Run("applies a valid partial update", func(t *testing.T) {
		var gotUpdate models.ComplaintUpdate
		complaints := &mockComplaintStore{
			UpdateFn: func(ctx context.Context, id int64, upd models.ComplaintUpdate) (int64, error) {
				gotUpdate = upd
				return 1, nil
			},
			GetByIDFn: func(ctx context.Context, id int64) (*models.Complaint, error) {
				return stored, nil
			},
		}
		svc := NewComplaintService(complaints, &mockNotificationStore{}, &mockUserStore{}, &fakeTxManager{}, &mockFileStorage{})

		resp, err := svc.UpdateComplaint(context.Background(), 42, &dto.UpdateComplaintRequest{
			Status:       strPtr("Resolved"),
			FacultyReply: strPtr("Access point replaced"),
		})
		require.NoError(t, err)

		require.NotNil(t, gotUpdate.Status)
		assert.Equal(t, models.ComplaintStatusResolved, *gotUpdate.Status)
		assert.Nil(t, gotUpdate.Priority)
		assert.Equal(t, "CMP48291307", resp.ComplaintID)
	})

	t.Run("rejects unknown status before touching the store", func(t *testing.T) {
		complaints := &mockComplaintStore{
			UpdateFn: func(ctx context.Context, id int64, upd models.ComplaintUpdate) (int64, error) {
				t.Fatal("update must not be called")
				return 0, nil
			},
		}
		svc := NewComplaintService(complaints, &mockNotificationStore{}, &mockUserStore{}, &fakeTxManager{}, &mockFileStorage{})

		_, err := svc.UpdateComplaint(context.Background(), 42, &dto.UpdateComplaintRequest{
			Status: strPtr("Done"),
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})

	t.Run("rejects unknown priority", func(t *testing.T) {
		svc := NewComplaintService(&mockComplaintStore{}, &mockNotificationStore{}, &mockUserStore{}, &fakeTxManager{}, &mockFileStorage{})

		_, err := svc.UpdateComplaint(context.Background(), 42, &dto.UpdateComplaintRequest{
			Priority: strPtr("Urgent"),
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidPriority)
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		svc := NewComplaintService(&mockComplaintStore{}, &mockNotificationStore{}, &mockUserStore{}, &fakeTxManager{}, &mockFileStorage{})

		_, err := svc.UpdateComplaint(context.Background(), 42, &dto.UpdateComplaintRequest{})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("propagates not found from the store", func(t *testing.T) {
		complaints := &mockComplaintStore{
			UpdateFn: func(ctx context.Context, id int64, upd models.ComplaintUpdate) (int64, error) {
				return 0, apperrors.ErrComplaintNotFound
			},
		}
		svc := NewComplaintService(complaints, &mockNotificationStore{}, &mockUserStore{}, &fakeTxManager{}, &mockFileStorage{})

		_, err := svc.UpdateComplaint(context.Background(), 99, &dto.UpdateComplaintRequest{
			Priority: strPtr("High"),
		})
		assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
	})
}

func TestAssignComplaint(t *testing.T) {
	t.Run("assignment carries only the assignee field", func(t *testing.T) {
		var gotUpdate models.ComplaintUpdate
		complaints := &mockComplaintStore{
			UpdateFn: func(ctx context.Context, id int64, upd models.ComplaintUpdate) (int64, error) {
				gotUpdate = upd
				return 1, nil
			},
			GetByIDFn: func(ctx context.Context, id int64) (*models.Complaint, error) {
				return &models.Complaint{
					ID:         id,
					Status:     models.ComplaintStatusInProgress,
					Priority:   models.PriorityMedium,
					AssignedTo: int64Ptr(7),
				}, nil
			},
		}
		users := &mockUserStore{
			FindByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
				return facultyUser(id), nil
			},
		}
		svc := NewComplaintService(complaints, &mockNotificationStore{}, users, &fakeTxManager{}, &mockFileStorage{})

		resp, err := svc.AssignComplaint(context.Background(), 42, 7)
		require.NoError(t, err)

		require.NotNil(t, gotUpdate.AssignedTo)
		assert.Equal(t, int64(7), *gotUpdate.AssignedTo)
		assert.Nil(t, gotUpdate.Status)
		assert.Equal(t, "In-Progress", resp.Status)
	})

	t.Run("rejects assignment to a student", func(t *testing.T) {
		users := &mockUserStore{
			FindByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
				return &models.User{ID: id, Role: models.RoleStudent}, nil
			},
		}
		svc := NewComplaintService(&mockComplaintStore{}, &mockNotificationStore{}, users, &fakeTxManager{}, &mockFileStorage{})

		_, err := svc.AssignComplaint(context.Background(), 42, 5)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("rejects assignment to a missing user", func(t *testing.T) {
		users := &mockUserStore{
			FindByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		svc := NewComplaintService(&mockComplaintStore{}, &mockNotificationStore{}, users, &fakeTxManager{}, &mockFileStorage{})

		_, err := svc.AssignComplaint(context.Background(), 42, 99)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
