package services

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/1RJB/green-neighbourhood-backend/internal/config"
	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	"github.com/1RJB/green-neighbourhood-backend/pkg/logger"
	"github.com/1RJB/green-neighbourhood-backend/pkg/utils"
)

// setupTestDB initializes a fresh in-memory SQLite DB for each test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	logger.Init("test")
	config.AppConfig = &config.Config{
		JWTSecret:             "test_secret_key_12345",
		CollectionBonusPoints: 5000,
		RedeemMaxRetries:      3,
	}

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_busy_timeout=5000"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}

	// Shared-cache in-memory DBs persist between tests in the same process;
	// drop everything for isolation.
	for _, table := range []string{"user_achievements", "achievements", "volunteers", "participants", "events", "redemptions", "rewards", "users"} {
		db.Exec("DROP TABLE IF EXISTS " + table)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Reward{},
		&models.Redemption{},
		&models.Event{},
		&models.Participant{},
		&models.Volunteer{},
		&models.Achievement{},
		&models.UserAchievement{},
	); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	database.DB = db
	return db
}

func createTestUser(t *testing.T, points int) models.User {
	t.Helper()
	user := models.User{
		ID:       utils.GenerateID(),
		Name:     "Test Resident",
		Username: "resident_" + utils.GenerateID()[:8],
		Email:    utils.GenerateID() + "@test.local",
		Points:   points,
		Role:     models.RoleUser,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}

func createTestReward(t *testing.T, cost int, maxEach, maxTotal *int) models.Reward {
	t.Helper()
	reward := models.Reward{
		ID:             utils.GenerateID(),
		Title:          "Test Reward",
		Slug:           "test-reward-" + utils.GenerateID()[:8],
		PointsCost:     cost,
		StartDate:      time.Now().Add(-time.Hour),
		EndDate:        time.Now().Add(time.Hour),
		MaxEachRedeem:  maxEach,
		MaxTotalRedeem: maxTotal,
	}
	if err := database.DB.Create(&reward).Error; err != nil {
		t.Fatalf("Failed to create reward: %v", err)
	}
	return reward
}

func createTestAchievement(t *testing.T, trigger models.AchievementTrigger) models.Achievement {
	t.Helper()
	achievement := models.Achievement{
		ID:      utils.GenerateID(),
		Title:   "Test " + string(trigger),
		Trigger: trigger,
	}
	if err := database.DB.Create(&achievement).Error; err != nil {
		t.Fatalf("Failed to create achievement: %v", err)
	}
	return achievement
}

func createTestEvent(t *testing.T, eventDate time.Time, pointsAward int, slots *int) models.Event {
	t.Helper()
	event := models.Event{
		ID:             utils.GenerateID(),
		Title:          "Test Event",
		Slug:           "test-event-" + utils.GenerateID()[:8],
		EventDate:      eventDate,
		PointsAward:    pointsAward,
		VolunteerSlots: slots,
	}
	if err := database.DB.Create(&event).Error; err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}
	return event
}

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }
