package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/middleware"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	"github.com/1RJB/green-neighbourhood-backend/internal/services"
)

// GetMyRedemptions handles GET /redemptions/my
func GetMyRedemptions(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	query := database.DB.Preload("Reward").Where("user_id = ?", userID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var redemptions []models.Redemption
	if err := query.Order("created_at desc").Find(&redemptions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch redemptions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"redemptions": redemptions})
}

// ListRedemptions handles GET /redemptions (Staff)
// Filters: status, userId, rewardId. Sorting: sortBy in a whitelisted column
// set, order asc|desc.
func ListRedemptions(c *gin.Context) {
	query := database.DB.Preload("User").Preload("Reward")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if userID := c.Query("userId"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if rewardID := c.Query("rewardId"); rewardID != "" {
		query = query.Where("reward_id = ?", rewardID)
	}

	sortBy := c.DefaultQuery("sortBy", "created_at")
	// Whitelist sortable columns; anything else falls back to created_at
	switch sortBy {
	case "created_at", "collect_by", "status":
	default:
		sortBy = "created_at"
	}
	order := c.DefaultQuery("order", "desc")
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	var redemptions []models.Redemption
	if err := query.Order(sortBy + " " + order).Find(&redemptions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch redemptions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"redemptions": redemptions})
}

// UpdateRedemption handles PUT /redemptions/:id (Staff).
// PENDING -> COLLECTED credits the collection bonus exactly once; repeating
// the call is a no-op.
func UpdateRedemption(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Status    string     `json:"status" binding:"required"`
		CollectBy *time.Time `json:"collectBy"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := services.UpdateRedemptionStatus(id, models.RedemptionStatus(input.Status), input.CollectBy)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	resp := gin.H{"redemption": result.Redemption}
	if result.Achievement != nil {
		resp["achievementGranted"] = result.Achievement
	}
	if result.BonusPoints > 0 {
		resp["bonusPoints"] = result.BonusPoints
	}

	c.JSON(http.StatusOK, resp)
}
