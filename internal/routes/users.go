package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/1RJB/green-neighbourhood-backend/internal/handlers"
	"github.com/1RJB/green-neighbourhood-backend/internal/middleware"
)

func RegisterUserRoutes(r gin.IRouter) {
	users := r.Group("/users")
	{
		protected := users.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", handlers.GetProfile)
			protected.PUT("/profile", handlers.UpdateProfile)

			protected.GET("/me/achievements", handlers.GetMyAchievements)
			protected.PUT("/me/achievements/:id/seen", handlers.MarkAchievementSeen)
		}

		// Staff view of any account's achievements
		users.GET("/:id/achievements", middleware.AuthMiddleware(), middleware.StaffOnly(), handlers.GetUserAchievements)
	}
}
