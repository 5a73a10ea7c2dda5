package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/1RJB/green-neighbourhood-backend/internal/handlers"
	"github.com/1RJB/green-neighbourhood-backend/internal/middleware"
)

func RegisterRedemptionRoutes(r gin.IRouter) {
	redemptions := r.Group("/redemptions")
	redemptions.Use(middleware.AuthMiddleware())
	{
		redemptions.GET("/my", handlers.GetMyRedemptions)

		// Staff routes
		staff := redemptions.Group("")
		staff.Use(middleware.StaffOnly())
		{
			staff.GET("", handlers.ListRedemptions)
			staff.PUT("/:id", handlers.UpdateRedemption)
		}
	}
}
