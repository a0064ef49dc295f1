package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/controllers"
	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	complaintController *controllers.ComplaintController,
	helpdeskController *controllers.HelpdeskController,
	pollController *controllers.PollController,
	notificationController *controllers.NotificationController,
	noticeController *controllers.NoticeController,
	clubController *controllers.ClubController,
	eventController *controllers.EventController,
	placementController *controllers.PlacementController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	staff := []string{string(models.RoleFaculty), string(models.RoleAdmin)}

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.GetProfile)

		// Complaint routes
		complaints := authenticated.Group("/complaints")
		{
			complaints.POST("", complaintController.CreateComplaint)
			complaints.GET("", complaintController.ListComplaints)
			complaints.GET("/:id", complaintController.GetComplaint)

			complaintsStaff := complaints.Group("")
			complaintsStaff.Use(authMiddleware.RoleRequired(staff...))
			{
				complaintsStaff.PATCH("/:id", complaintController.UpdateComplaint)
				complaintsStaff.POST("/:id/assign", complaintController.AssignComplaint)
			}
		}

		// Helpdesk routes
		tickets := authenticated.Group("/helpdesk/tickets")
		{
			tickets.POST("", helpdeskController.CreateTicket)
			tickets.GET("", helpdeskController.ListTickets)
			tickets.GET("/:id", helpdeskController.GetTicket)
			tickets.POST("/:id/messages", helpdeskController.AddMessage)

			ticketsStaff := tickets.Group("")
			ticketsStaff.Use(authMiddleware.RoleRequired(staff...))
			{
				ticketsStaff.PATCH("/:id/status", helpdeskController.UpdateTicketStatus)
			}
		}

		// Poll routes
		polls := authenticated.Group("/polls")
		{
			polls.GET("", pollController.ListPolls)
			polls.GET("/:id", pollController.GetPoll)
			polls.POST("/:id/vote", pollController.Vote)

			pollsStaff := polls.Group("")
			pollsStaff.Use(authMiddleware.RoleRequired(staff...))
			{
				pollsStaff.POST("", pollController.CreatePoll)
				pollsStaff.DELETE("/:id", pollController.DeletePoll)
				pollsStaff.PATCH("/:id/status", pollController.UpdatePollStatus)
			}
		}

		// Notification routes
		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.ListNotifications)
			notifications.POST("/:id/read", notificationController.MarkRead)
			notifications.POST("/read-all", notificationController.MarkAllRead)
		}

		// Notice board routes
		notices := authenticated.Group("/notices")
		{
			notices.GET("", noticeController.ListNotices)
			notices.GET("/:id", noticeController.GetNotice)

			noticesStaff := notices.Group("")
			noticesStaff.Use(authMiddleware.RoleRequired(staff...))
			{
				noticesStaff.POST("", noticeController.CreateNotice)
				noticesStaff.PATCH("/:id", noticeController.UpdateNotice)
				noticesStaff.DELETE("/:id", noticeController.DeleteNotice)
			}
		}

		// Club routes
		clubs := authenticated.Group("/clubs")
		{
			clubs.GET("", clubController.ListClubs)
			clubs.GET("/:id", clubController.GetClub)
			clubs.GET("/:id/members", clubController.ListMembers)
			clubs.POST("/:id/join", clubController.JoinClub)
			clubs.POST("/:id/leave", clubController.LeaveClub)

			clubsStaff := clubs.Group("")
			clubsStaff.Use(authMiddleware.RoleRequired(staff...))
			{
				clubsStaff.POST("", clubController.CreateClub)
				clubsStaff.PATCH("/:id", clubController.UpdateClub)
				clubsStaff.DELETE("/:id", clubController.DeleteClub)
			}
		}

		// Event routes
		events := authenticated.Group("/events")
		{
			events.GET("", eventController.ListEvents)
			events.GET("/:id", eventController.GetEvent)

			eventsStaff := events.Group("")
			eventsStaff.Use(authMiddleware.RoleRequired(staff...))
			{
				eventsStaff.POST("", eventController.CreateEvent)
				eventsStaff.PATCH("/:id", eventController.UpdateEvent)
				eventsStaff.DELETE("/:id", eventController.DeleteEvent)
			}
		}

		// Placement routes
		placements := authenticated.Group("/placements")
		{
			placements.GET("", placementController.ListPlacements)
			placements.GET("/:id", placementController.GetPlacement)

			placementsStaff := placements.Group("")
			placementsStaff.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				placementsStaff.POST("", placementController.CreatePlacement)
				placementsStaff.PATCH("/:id", placementController.UpdatePlacement)
				placementsStaff.DELETE("/:id", placementController.DeletePlacement)
			}
		}
	}
}
