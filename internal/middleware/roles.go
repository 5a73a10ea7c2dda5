package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
)

// The principal's role is a closed set {USER, STAFF, ADMIN} checked here at
// the route boundary, never inside individual handlers.

func loadPrincipal(c *gin.Context) (*models.User, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return nil, false
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID.(string)).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		c.Abort()
		return nil, false
	}
	return &user, true
}

// StaffOnly allows STAFF and ADMIN roles.
func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := loadPrincipal(c)
		if !ok {
			return
		}

		if !user.IsStaff() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly restricts access to users with ADMIN role only
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := loadPrincipal(c)
		if !ok {
			return
		}

		if user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
