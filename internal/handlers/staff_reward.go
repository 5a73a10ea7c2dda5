package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	"github.com/1RJB/green-neighbourhood-backend/pkg/logger"
	"github.com/1RJB/green-neighbourhood-backend/pkg/utils"
)

type RewardInput struct {
	Title          string    `json:"title" binding:"required"`
	Description    string    `json:"description"`
	Image          string    `json:"image"`
	PointsCost     int       `json:"pointsCost" binding:"required,gt=0"`
	StartDate      time.Time `json:"startDate" binding:"required"`
	EndDate        time.Time `json:"endDate" binding:"required"`
	MaxEachRedeem  *int      `json:"maxEachRedeem"`
	MaxTotalRedeem *int      `json:"maxTotalRedeem"`
	Tags           []string  `json:"tags"`
}

func (in *RewardInput) validate() string {
	if !in.EndDate.After(in.StartDate) {
		return "endDate must be after startDate"
	}
	if in.MaxEachRedeem != nil && *in.MaxEachRedeem <= 0 {
		return "maxEachRedeem must be positive when set"
	}
	if in.MaxTotalRedeem != nil && *in.MaxTotalRedeem <= 0 {
		return "maxTotalRedeem must be positive when set"
	}
	return ""
}

// CreateReward handles POST /staff/rewards
func CreateReward(c *gin.Context) {
	staffID := c.MustGet("userId").(string)

	var input RewardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := input.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	reward := models.Reward{
		ID:             utils.GenerateID(),
		Title:          input.Title,
		Slug:           utils.GenerateSlug(input.Title),
		Description:    input.Description,
		Image:          input.Image,
		PointsCost:     input.PointsCost,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		MaxEachRedeem:  input.MaxEachRedeem,
		MaxTotalRedeem: input.MaxTotalRedeem,
		Tags:           pq.StringArray(input.Tags),
		CreatedBy:      staffID,
	}

	if err := database.DB.Create(&reward).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to create reward")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reward"})
		return
	}

	invalidateRewardCache()
	c.JSON(http.StatusCreated, gin.H{"reward": reward})
}

// UpdateReward handles PUT /staff/rewards/:id
func UpdateReward(c *gin.Context) {
	id := c.Param("id")

	var reward models.Reward
	if err := database.DB.First(&reward, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reward not found"})
		return
	}

	var input RewardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := input.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	reward.Title = input.Title
	reward.Description = input.Description
	reward.Image = input.Image
	reward.PointsCost = input.PointsCost
	reward.StartDate = input.StartDate
	reward.EndDate = input.EndDate
	reward.MaxEachRedeem = input.MaxEachRedeem
	reward.MaxTotalRedeem = input.MaxTotalRedeem
	reward.Tags = pq.StringArray(input.Tags)

	if err := database.DB.Save(&reward).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reward"})
		return
	}

	invalidateRewardCache()
	c.JSON(http.StatusOK, gin.H{"reward": reward})
}

// DeleteReward handles DELETE /staff/rewards/:id.
// Existing redemption records always outlive the catalog entry.
func DeleteReward(c *gin.Context) {
	id := c.Param("id")

	res := database.DB.Delete(&models.Reward{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reward"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reward not found"})
		return
	}

	invalidateRewardCache()
	c.JSON(http.StatusOK, gin.H{"message": "Reward deleted"})
}

func invalidateRewardCache() {
	if database.Redis != nil {
		if err := database.CacheInvalidate(rewardCacheKey); err != nil {
			logger.Warn().Err(err).Msg("Failed to invalidate reward cache")
		}
	}
}
