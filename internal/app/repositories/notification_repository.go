package repositories

import (
	"context"
	"fmt"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/db"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

// NotificationRepository handles database operations for notifications.
// Notifications are append-only; rows are only ever inserted and flagged read.
type NotificationRepository struct {
	db db.DBTX
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Insert writes a notification row on the caller's querier. Lifecycle
// services pass their open transaction here so the acknowledgement commits
// or rolls back together with the row it acknowledges.
func (r *NotificationRepository) Insert(ctx context.Context, q db.DBTX, n *models.Notification) error {
	query := `
		INSERT INTO notifications (user_id, title, message, type, related_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := q.Exec(ctx, query, n.UserID, n.Title, n.Message, n.Type, n.RelatedID)
	if err != nil {
		return fmt.Errorf("error inserting notification: %w", err)
	}

	return nil
}

// ListByUser retrieves one page of a user's notifications, newest first,
// along with the total count and the number still unread.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64, offset uint64, limit int) ([]models.Notification, int64, int64, error) {
	query := `
		SELECT id, user_id, title, message, type, related_id, is_read, created_at,
			COUNT(*) OVER() AS total_count,
			COUNT(*) FILTER (WHERE NOT is_read) OVER() AS unread_count
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	var total, unread int64
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.RelatedID,
			&n.IsRead, &n.CreatedAt, &total, &unread,
		); err != nil {
			return nil, 0, 0, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, 0, fmt.Errorf("error iterating notification rows: %w", err)
	}

	if notifications == nil {
		notifications = []models.Notification{}
	}

	return notifications, total, unread, nil
}

// MarkRead flags a single notification as read; the row must belong to userID.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead flags all of a user's notifications as read.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND NOT is_read`, userID)
	if err != nil {
		return fmt.Errorf("error marking notifications read: %w", err)
	}

	return nil
}
