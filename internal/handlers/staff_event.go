package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/middleware"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	"github.com/1RJB/green-neighbourhood-backend/internal/services"
	"github.com/1RJB/green-neighbourhood-backend/pkg/logger"
	"github.com/1RJB/green-neighbourhood-backend/pkg/utils"
)

type EventInput struct {
	Title          string    `json:"title" binding:"required"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	Banner         string    `json:"banner"`
	EventDate      time.Time `json:"eventDate" binding:"required"`
	PointsAward    int       `json:"pointsAward"`
	VolunteerSlots *int      `json:"volunteerSlots"`
}

// CreateEvent handles POST /staff/events
func CreateEvent(c *gin.Context) {
	staffID := c.MustGet("userId").(string)

	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.PointsAward < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pointsAward cannot be negative"})
		return
	}

	event := models.Event{
		ID:             utils.GenerateID(),
		Title:          input.Title,
		Slug:           utils.GenerateSlug(input.Title),
		Description:    input.Description,
		Location:       input.Location,
		Banner:         input.Banner,
		EventDate:      input.EventDate,
		PointsAward:    input.PointsAward,
		VolunteerSlots: input.VolunteerSlots,
		CreatedBy:      staffID,
	}

	if err := database.DB.Create(&event).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to create event")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event": event})
}

// UpdateEvent handles PUT /staff/events/:id
func UpdateEvent(c *gin.Context) {
	id := c.Param("id")

	var event models.Event
	if err := database.DB.First(&event, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event.Title = input.Title
	event.Description = input.Description
	event.Location = input.Location
	event.Banner = input.Banner
	event.EventDate = input.EventDate
	event.PointsAward = input.PointsAward
	event.VolunteerSlots = input.VolunteerSlots

	if err := database.DB.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// DeleteEvent handles DELETE /staff/events/:id
func DeleteEvent(c *gin.Context) {
	id := c.Param("id")

	res := database.DB.Delete(&models.Event{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

// ListParticipants handles GET /staff/events/:id/participants
func ListParticipants(c *gin.Context) {
	eventID := c.Param("id")

	var event models.Event
	if err := database.DB.Select("id").First(&event, "id = ?", eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var participants []models.Participant
	if err := database.DB.Where("event_id = ?", eventID).
		Order("created_at asc").
		Find(&participants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch participants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"participants": participants})
}

// ListVolunteers handles GET /staff/events/:id/volunteers
func ListVolunteers(c *gin.Context) {
	eventID := c.Param("id")

	var volunteers []models.Volunteer
	if err := database.DB.Preload("User").
		Where("event_id = ?", eventID).
		Order("created_at asc").
		Find(&volunteers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch volunteers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"volunteers": volunteers})
}

// ConfirmVolunteer handles PUT /staff/events/:id/volunteers/:userId
func ConfirmVolunteer(c *gin.Context) {
	eventID := c.Param("id")
	userID := c.Param("userId")

	volunteer, err := services.ConfirmVolunteer(eventID, userID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"volunteer": volunteer})
}

// ConfirmParticipation handles POST /staff/events/:id/participants/:participantId/confirm.
// Credits the event's point award and evaluates the participation achievement
// for account-linked participants; idempotent across repeat calls.
func ConfirmParticipation(c *gin.Context) {
	participantID := c.Param("participantId")

	participant, achievement, awarded, err := services.ConfirmParticipation(participantID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	resp := gin.H{"participant": participant}
	if awarded > 0 {
		resp["pointsAwarded"] = awarded
	}
	if achievement != nil {
		resp["achievementGranted"] = achievement
	}

	c.JSON(http.StatusOK, resp)
}
