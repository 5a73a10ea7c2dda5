package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/1RJB/green-neighbourhood-backend/internal/handlers"
	"github.com/1RJB/green-neighbourhood-backend/internal/middleware"
)

func RegisterEventRoutes(r gin.IRouter) {
	events := r.Group("/events")
	{
		events.GET("", handlers.ListEvents)
		events.GET("/:id", handlers.GetEvent)

		// Walk-ins may register without an account; logged-in registrants
		// are linked to theirs for points and achievements.
		events.POST("/:id/register", middleware.OptionalAuthMiddleware(), handlers.RegisterForEvent)

		events.POST("/:id/volunteer", middleware.AuthMiddleware(), handlers.VolunteerForEvent)
	}

	staff := r.Group("/staff/events")
	staff.Use(middleware.AuthMiddleware(), middleware.StaffOnly())
	{
		staff.POST("", handlers.CreateEvent)
		staff.PUT("/:id", handlers.UpdateEvent)
		staff.DELETE("/:id", handlers.DeleteEvent)

		staff.GET("/:id/participants", handlers.ListParticipants)
		staff.POST("/:id/participants/:participantId/confirm", handlers.ConfirmParticipation)

		staff.GET("/:id/volunteers", handlers.ListVolunteers)
		staff.PUT("/:id/volunteers/:userId", handlers.ConfirmVolunteer)
	}
}
