package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/middleware"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	"github.com/1RJB/green-neighbourhood-backend/internal/services"
	"github.com/1RJB/green-neighbourhood-backend/pkg/logger"
	"github.com/1RJB/green-neighbourhood-backend/pkg/utils"
)

// AdminListUsers handles GET /admin/users?search=&page=&limit=
func AdminListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := database.DB.Model(&models.User{})
	if search := c.Query("search"); search != "" {
		term := utils.SanitizeSearchQuery(search)
		query = query.Where("email ILIKE ? OR username ILIKE ? OR name ILIKE ?", term, term, term)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "total": total, "page": page})
}

// AdminUpdateUserRole handles PUT /admin/users/:id/role
func AdminUpdateUserRole(c *gin.Context) {
	userID := c.Param("id")

	var input struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := models.Role(input.Role)
	switch role {
	case models.RoleUser, models.RoleStaff, models.RoleAdmin:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	res := database.DB.Model(&models.User{}).Where("id = ?", userID).Update("role", role)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	logger.Info().Str("user_id", userID).Str("role", input.Role).Msg("Role updated")
	c.JSON(http.StatusOK, gin.H{"message": "Role updated", "role": role})
}

// AdminAdjustPoints handles POST /admin/users/:id/points.
// Grants or deducts through the ledger so the non-negative invariant holds;
// a deduction below zero fails rather than clamping silently.
func AdminAdjustPoints(c *gin.Context) {
	userID := c.Param("id")

	var input struct {
		Amount int    `json:"amount" binding:"required"` // positive to grant, negative to deduct
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var balance int
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		if input.Amount >= 0 {
			balance, err = services.Credit(tx, userID, input.Amount)
		} else {
			balance, err = services.Debit(tx, userID, -input.Amount)
		}
		return err
	})
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	logger.Info().
		Str("user_id", userID).
		Int("amount", input.Amount).
		Str("reason", input.Reason).
		Msg("Points adjusted by admin")

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// --- Achievement definitions ---

type AchievementInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Trigger     string `json:"trigger" binding:"required"`
}

func validTrigger(t models.AchievementTrigger) bool {
	switch t {
	case models.TriggerFirstRedemption, models.TriggerFirstCollection,
		models.TriggerFirstEventSignup, models.TriggerFirstParticipation,
		models.TriggerFirstVolunteer, models.TriggerManual:
		return true
	}
	return false
}

// AdminListAchievements handles GET /admin/achievements
func AdminListAchievements(c *gin.Context) {
	var achievements []models.Achievement
	if err := database.DB.Order("created_at asc").Find(&achievements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch achievements"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": achievements})
}

// AdminCreateAchievement handles POST /admin/achievements
func AdminCreateAchievement(c *gin.Context) {
	var input AchievementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trigger := models.AchievementTrigger(input.Trigger)
	if !validTrigger(trigger) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown trigger"})
		return
	}

	// One automatic achievement per trigger; MANUAL may repeat.
	if trigger != models.TriggerManual {
		var count int64
		database.DB.Model(&models.Achievement{}).Where(map[string]interface{}{"trigger": trigger}).Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "An achievement for this trigger already exists"})
			return
		}
	}

	achievement := models.Achievement{
		ID:          utils.GenerateID(),
		Title:       input.Title,
		Description: input.Description,
		Icon:        input.Icon,
		Trigger:     trigger,
	}
	if err := database.DB.Create(&achievement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create achievement"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"achievement": achievement})
}

// AdminDeleteAchievement handles DELETE /admin/achievements/:id
func AdminDeleteAchievement(c *gin.Context) {
	id := c.Param("id")

	res := database.DB.Delete(&models.Achievement{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete achievement"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Achievement not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Achievement deleted"})
}

// AdminGrantAchievement handles POST /admin/users/:id/achievements/:achievementId
func AdminGrantAchievement(c *gin.Context) {
	userID := c.Param("id")
	achievementID := c.Param("achievementId")

	var user models.User
	if err := database.DB.Select("id").First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	var achievement models.Achievement
	if err := database.DB.First(&achievement, "id = ?", achievementID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Achievement not found"})
		return
	}

	var granted bool
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		granted, err = services.GrantManualAchievement(tx, userID, achievementID)
		return err
	})
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"granted": granted, "achievement": achievement})
}
