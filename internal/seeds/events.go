package seeds

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	"github.com/1RJB/green-neighbourhood-backend/pkg/utils"
)

func SeedEvents(creator models.User) {
	log.Println("📅 Seeding Events...")

	now := time.Now()
	events := []models.Event{
		{
			Title:          "Community Beach Cleanup",
			Description:    "Gloves and bags provided. Points awarded on attendance.",
			Location:       "East Coast Park, Area C",
			EventDate:      now.AddDate(0, 0, 14),
			PointsAward:    1000,
			VolunteerSlots: intPtr(10),
		},
		{
			Title:       "Urban Farming Workshop",
			Description: "Hands-on introduction to growing vegetables in small spaces.",
			Location:    "Community Centre, Level 2",
			EventDate:   now.AddDate(0, 0, 21),
			PointsAward: 500,
		},
		{
			Title:          "Recycling Drive",
			Description:    "Bring your e-waste and old clothes.",
			Location:       "Block 123 Void Deck",
			EventDate:      now.AddDate(0, 2, 0), // registration not yet open
			PointsAward:    800,
			VolunteerSlots: intPtr(5),
		},
	}

	for _, e := range events {
		e.ID = uuid.New().String()
		e.Slug = utils.GenerateSlug(e.Title)
		e.CreatedBy = creator.ID

		var count int64
		database.DB.Model(&models.Event{}).Where("slug = ?", e.Slug).Count(&count)
		if count > 0 {
			continue
		}
		if err := database.DB.Create(&e).Error; err != nil {
			log.Printf("⚠️ Failed to seed event %s: %v", e.Title, err)
		}
	}
}
