package dto

import (
	"time"

	"github.com/campushub/campushub/internal/app/models"
)

// NotificationResponse is the read shape of a notification
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title" example:"Complaint submitted"`
	Message   string    `json:"message"`
	Type      string    `json:"type" example:"complaint"`
	RelatedID *int64    `json:"relatedId,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationListResponse is one page of a user's notifications
type NotificationListResponse struct {
	Notifications  []NotificationResponse `json:"notifications"`
	UnreadCount    int64                  `json:"unreadCount"`
	PaginationInfo PaginationInfo         `json:"pagination"`
}

// NewNotificationResponse maps a model onto the read shape
func NewNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		RelatedID: n.RelatedID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
