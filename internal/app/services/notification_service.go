package services

import (
	"context"
	"fmt"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/pkg/helpers"
)

// notificationReader covers the user-facing notification queries
type notificationReader interface {
	ListByUser(ctx context.Context, userID int64, offset uint64, limit int) ([]models.Notification, int64, int64, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

// NotificationService defines the interface for notification queries
type NotificationService interface {
	ListNotifications(ctx context.Context, userID int64, page, size int) (*dto.NotificationListResponse, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

// notificationServiceImpl implements NotificationService
type notificationServiceImpl struct {
	notificationRepo notificationReader
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo notificationReader) NotificationService {
	return &notificationServiceImpl{notificationRepo: notificationRepo}
}

// ListNotifications retrieves one page of a user's notifications with the
// unread count for the badge.
func (s *notificationServiceImpl) ListNotifications(ctx context.Context, userID int64, page, size int) (*dto.NotificationListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	notifications, total, unread, err := s.notificationRepo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, dto.NewNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications:  responses,
		UnreadCount:    unread,
		PaginationInfo: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// MarkRead marks one notification as read, scoped to its owner
func (s *notificationServiceImpl) MarkRead(ctx context.Context, id, userID int64) error {
	return s.notificationRepo.MarkRead(ctx, id, userID)
}

// MarkAllRead marks all of a user's notifications as read
func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, userID int64) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}
