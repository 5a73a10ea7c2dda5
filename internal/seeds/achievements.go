package seeds

import (
	"log"

	"github.com/google/uuid"

	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
)

func SeedAchievements() {
	log.Println("🎖️ Seeding Achievements...")

	achievements := []models.Achievement{
		{
			Title:       "First Redemption",
			Description: "Redeemed your first reward.",
			Icon:        "gift",
			Trigger:     models.TriggerFirstRedemption,
		},
		{
			Title:       "Collector",
			Description: "Collected your first redeemed reward in person.",
			Icon:        "package-check",
			Trigger:     models.TriggerFirstCollection,
		},
		{
			Title:       "Signed Up",
			Description: "Registered for your first neighbourhood event.",
			Icon:        "calendar-plus",
			Trigger:     models.TriggerFirstEventSignup,
		},
		{
			Title:       "Showed Up",
			Description: "Attended your first neighbourhood event.",
			Icon:        "calendar-check",
			Trigger:     models.TriggerFirstParticipation,
		},
		{
			Title:       "Helping Hand",
			Description: "Volunteered for your first event.",
			Icon:        "heart-handshake",
			Trigger:     models.TriggerFirstVolunteer,
		},
	}

	for _, a := range achievements {
		var count int64
		database.DB.Model(&models.Achievement{}).Where(map[string]interface{}{"trigger": a.Trigger}).Count(&count)
		if count > 0 {
			continue
		}
		a.ID = uuid.New().String()
		if err := database.DB.Create(&a).Error; err != nil {
			log.Printf("⚠️ Failed to seed achievement %s: %v", a.Title, err)
		}
	}
}
