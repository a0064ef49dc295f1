package models

import "time"

// NotificationType tags what kind of event a notification is about
type NotificationType string

const (
	NotificationTypeComplaint NotificationType = "complaint"
	NotificationTypeHelpdesk  NotificationType = "helpdesk"
	NotificationTypeGeneral   NotificationType = "general"
)

// Notification is an append-only acknowledgement row written as a side effect
// of another entity's lifecycle event. It carries no business rules of its
// own; the creating transaction owns its consistency.
type Notification struct {
	ID        int64            `json:"id" db:"id"`
	UserID    int64            `json:"userId" db:"user_id"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Type      NotificationType `json:"type" db:"type"`
	RelatedID *int64           `json:"relatedId,omitempty" db:"related_id"`
	IsRead    bool             `json:"isRead" db:"is_read"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
}
