package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	ComplaintRepository    *ComplaintRepository
	NotificationRepository *NotificationRepository
	HelpdeskRepository     *HelpdeskRepository
	PollRepository         *PollRepository
	NoticeRepository       *NoticeRepository
	ClubRepository         *ClubRepository
	EventRepository        *EventRepository
	PlacementRepository    *PlacementRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		ComplaintRepository:    NewComplaintRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		HelpdeskRepository:     NewHelpdeskRepository(db),
		PollRepository:         NewPollRepository(db),
		NoticeRepository:       NewNoticeRepository(db),
		ClubRepository:         NewClubRepository(db),
		EventRepository:        NewEventRepository(db),
		PlacementRepository:    NewPlacementRepository(db),
	}
}
