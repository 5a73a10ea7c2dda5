package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/1RJB/green-neighbourhood-backend/internal/handlers"
	"github.com/1RJB/green-neighbourhood-backend/internal/middleware"
)

func RegisterRewardRoutes(r gin.IRouter) {
	rewards := r.Group("/rewards")
	{
		// Public catalog
		rewards.GET("", handlers.ListRewards)
		rewards.GET("/:id", handlers.GetReward)

		// Redemption workflow
		rewards.POST("/:id/redeem",
			middleware.AuthMiddleware(),
			middleware.RedeemRateLimit(),
			handlers.RedeemReward)
	}

	// Staff catalog management
	staff := r.Group("/staff/rewards")
	staff.Use(middleware.AuthMiddleware(), middleware.StaffOnly())
	{
		staff.POST("", handlers.CreateReward)
		staff.PUT("/:id", handlers.UpdateReward)
		staff.DELETE("/:id", handlers.DeleteReward)
	}
}
