package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/1RJB/green-neighbourhood-backend/internal/handlers"
	"github.com/1RJB/green-neighbourhood-backend/internal/middleware"
)

func RegisterAdminRoutes(r gin.IRouter) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
	{
		admin.GET("/users", handlers.AdminListUsers)
		admin.PUT("/users/:id/role", handlers.AdminUpdateUserRole)
		admin.POST("/users/:id/points", handlers.AdminAdjustPoints)
		admin.POST("/users/:id/achievements/:achievementId", handlers.AdminGrantAchievement)

		admin.GET("/achievements", handlers.AdminListAchievements)
		admin.POST("/achievements", handlers.AdminCreateAchievement)
		admin.DELETE("/achievements/:id", handlers.AdminDeleteAchievement)
	}
}
