package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/1RJB/green-neighbourhood-backend/internal/handlers"
	"github.com/1RJB/green-neighbourhood-backend/internal/middleware"
)

func RegisterAuthRoutes(r gin.IRouter) {
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.POST("/logout", middleware.AuthMiddleware(), handlers.Logout)

	// OAuth
	r.GET("/google", handlers.GoogleLogin)
	r.GET("/google/callback", handlers.GoogleCallback)
}
