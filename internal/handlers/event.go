package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/middleware"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	"github.com/1RJB/green-neighbourhood-backend/internal/services"
	"github.com/1RJB/green-neighbourhood-backend/pkg/utils"
)

type eventView struct {
	models.Event
	Phase services.EventPhase `json:"phase"`
}

// ListEvents handles GET /events?phase=UPCOMING|OPEN|PAST
func ListEvents(c *gin.Context) {
	var events []models.Event
	if err := database.DB.Order("event_date asc").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	now := time.Now()
	phaseFilter := c.Query("phase")

	views := make([]eventView, 0, len(events))
	for i := range events {
		phase := services.EventPhaseAt(&events[i], now)
		if phaseFilter != "" && string(phase) != phaseFilter {
			continue
		}
		views = append(views, eventView{Event: events[i], Phase: phase})
	}

	c.JSON(http.StatusOK, gin.H{"events": views})
}

// GetEvent handles GET /events/:id (accepts id or slug)
func GetEvent(c *gin.Context) {
	id := c.Param("id")

	var event models.Event
	query := database.DB
	if utils.IsUUID(id) {
		query = query.Where("id = ?", id)
	} else {
		query = query.Where("slug = ?", id)
	}
	if err := query.First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": eventView{
		Event: event,
		Phase: services.EventPhaseAt(&event, time.Now()),
	}})
}

// RegisterForEvent handles POST /events/:id/register.
// Works for logged-in accounts (achievement-eligible) and walk-in sign-ups.
func RegisterForEvent(c *gin.Context) {
	eventID := c.Param("id")

	var input struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var userID *string
	if id, exists := c.Get("userId"); exists {
		s := id.(string)
		userID = &s
	}

	participant, achievement, err := services.RegisterParticipant(eventID, input.Name, input.Email, userID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	resp := gin.H{"participant": participant}
	if achievement != nil {
		resp["achievement"] = achievement
	}
	c.JSON(http.StatusCreated, resp)
}

// VolunteerForEvent handles POST /events/:id/volunteer
func VolunteerForEvent(c *gin.Context) {
	eventID := c.Param("id")
	userID := c.MustGet("userId").(string)

	volunteer, achievement, err := services.SignUpVolunteer(eventID, userID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	resp := gin.H{"volunteer": volunteer}
	if achievement != nil {
		resp["achievement"] = achievement
	}
	c.JSON(http.StatusCreated, resp)
}
