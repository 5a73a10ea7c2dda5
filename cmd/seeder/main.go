package main

import (
	"log"

	"github.com/1RJB/green-neighbourhood-backend/internal/config"
	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	"github.com/1RJB/green-neighbourhood-backend/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("🔄 Running migrations (just in case)...")
	database.DB.AutoMigrate(
		&models.User{},
		&models.Reward{},
		&models.Redemption{},
		&models.Event{},
		&models.Participant{},
		&models.Volunteer{},
		&models.Achievement{},
		&models.UserAchievement{},
	)

	admin := seeds.SeedUsers()
	seeds.SeedAchievements()
	seeds.SeedRewards(admin)
	seeds.SeedEvents(admin)

	log.Println("✅ Seeding Complete!")
}
