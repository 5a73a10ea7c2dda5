package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/middleware"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	"github.com/1RJB/green-neighbourhood-backend/internal/services"
	apperrors "github.com/1RJB/green-neighbourhood-backend/pkg/errors"
	"github.com/1RJB/green-neighbourhood-backend/pkg/utils"
)

const rewardCacheKey = "rewards:list"

// Per-account redemption limit, on top of the per-IP limiter on the route.
// Counted in Redis so it holds across server instances.
const (
	redeemPerAccountLimit  = 10
	redeemPerAccountWindow = time.Minute
)

// ListRewards handles GET /rewards. The full catalog is cached in Redis and
// invalidated whenever staff edit it.
func ListRewards(c *gin.Context) {
	if database.Redis != nil {
		var cached []models.Reward
		if err := database.CacheGet(rewardCacheKey, &cached); err == nil {
			c.JSON(http.StatusOK, gin.H{"rewards": cached, "cached": true})
			return
		}
	}

	query := database.DB.Order("start_date desc")

	if search := c.Query("search"); search != "" {
		term := utils.SanitizeSearchQuery(search)
		query = query.Where("title ILIKE ? OR description ILIKE ?", term, term)
	}

	var rewards []models.Reward
	if err := query.Find(&rewards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rewards"})
		return
	}

	// Only cache the unfiltered listing
	if database.Redis != nil && c.Query("search") == "" {
		database.CacheSet(rewardCacheKey, rewards, 5*time.Minute)
	}

	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}

// GetReward handles GET /rewards/:id (accepts id or slug)
func GetReward(c *gin.Context) {
	id := c.Param("id")

	var reward models.Reward
	query := database.DB
	if utils.IsUUID(id) {
		query = query.Where("id = ?", id)
	} else {
		query = query.Where("slug = ?", id)
	}

	if err := query.First(&reward).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reward not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reward": reward})
}

// RedeemReward handles POST /rewards/:id/redeem. The whole workflow —
// eligibility, debit, record, achievement — runs as one transaction inside
// services.Redeem.
func RedeemReward(c *gin.Context) {
	userID := c.MustGet("userId").(string)
	rewardID := c.Param("id")

	// Fails open: a Redis outage must not block redemptions.
	if database.Redis != nil {
		allowed, err := database.CheckRateLimit("redeem:"+userID, redeemPerAccountLimit, redeemPerAccountWindow)
		if err == nil && !allowed {
			middleware.RespondError(c, apperrors.ErrRateLimit)
			return
		}
	}

	result, err := services.Redeem(userID, rewardID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	resp := gin.H{
		"balance":    result.Balance,
		"redemption": result.Redemption,
	}
	if result.Achievement != nil {
		resp["achievement"] = result.Achievement
	}

	c.JSON(http.StatusOK, resp)
}
