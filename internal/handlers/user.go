package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
)

// GetProfile handles GET /users/profile
func GetProfile(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile handles PUT /users/profile
func UpdateProfile(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user.Name = input.Name
	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetMyAchievements handles GET /users/me/achievements.
// Returns all grants with their notice flags so the client can surface
// unseen achievements exactly once.
func GetMyAchievements(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	var grants []models.UserAchievement
	if err := database.DB.Preload("Achievement").
		Where("user_id = ?", userID).
		Order("earned_at desc").
		Find(&grants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch achievements"})
		return
	}

	var unseen int64
	database.DB.Model(&models.UserAchievement{}).
		Where("user_id = ? AND notice = ?", userID, true).
		Count(&unseen)

	c.JSON(http.StatusOK, gin.H{"achievements": grants, "unseen": unseen})
}

// GetUserAchievements handles GET /users/:id/achievements (staff view).
func GetUserAchievements(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := database.DB.Select("id").First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var grants []models.UserAchievement
	if err := database.DB.Preload("Achievement").
		Where("user_id = ?", userID).
		Order("earned_at desc").
		Find(&grants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch achievements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"achievements": grants})
}

// MarkAchievementSeen handles PUT /users/me/achievements/:id/seen.
// Resets the notice flag; repeat calls are no-ops.
func MarkAchievementSeen(c *gin.Context) {
	userID := c.MustGet("userId").(string)
	achievementID := c.Param("id")

	res := database.DB.Model(&models.UserAchievement{}).
		Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		Update("notice", false)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notice"})
		return
	}
	if res.RowsAffected == 0 {
		// Distinguish "never earned" from "already seen"
		var count int64
		database.DB.Model(&models.UserAchievement{}).
			Where("user_id = ? AND achievement_id = ?", userID, achievementID).
			Count(&count)
		if count == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Achievement not earned"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Marked as seen"})
}
