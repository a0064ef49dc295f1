package services

import (
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/db"
	"github.com/campushub/campushub/internal/pkg/auth"
	"github.com/campushub/campushub/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService         AuthService
	ComplaintService    ComplaintService
	HelpdeskService     HelpdeskService
	PollService         PollService
	NotificationService NotificationService
	NoticeService       NoticeService
	ClubService         ClubService
	EventService        EventService
	PlacementService    PlacementService
}

// NewServices wires all services to their repositories
func NewServices(
	repos *repositories.Repositories,
	txManager db.TxManager,
	jwtService *auth.JWTService,
	fileStorage filestorage.FileStorage,
) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, jwtService),
		ComplaintService: NewComplaintService(
			repos.ComplaintRepository,
			repos.NotificationRepository,
			repos.UserRepository,
			txManager,
			fileStorage,
		),
		HelpdeskService:     NewHelpdeskService(repos.HelpdeskRepository, repos.UserRepository, txManager),
		PollService:         NewPollService(repos.PollRepository, txManager),
		NotificationService: NewNotificationService(repos.NotificationRepository),
		NoticeService:       NewNoticeService(repos.NoticeRepository),
		ClubService:         NewClubService(repos.ClubRepository),
		EventService:        NewEventService(repos.EventRepository),
		PlacementService:    NewPlacementService(repos.PlacementRepository),
	}
}
