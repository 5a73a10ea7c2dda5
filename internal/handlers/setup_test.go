package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/1RJB/green-neighbourhood-backend/internal/config"
	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	"github.com/1RJB/green-neighbourhood-backend/pkg/logger"
	"github.com/1RJB/green-neighbourhood-backend/pkg/utils"
)

// SetupTestDB initializes a fresh in-memory SQLite DB for testing.
func SetupTestDB(t *testing.T) {
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

	// The shared in-memory DB survives between tests; wipe for isolation.
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
	database.Redis = nil
}

func seedUser(t *testing.T, points int) models.User {
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
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user
}

func seedReward(t *testing.T, cost int, maxEach, maxTotal *int) models.Reward {
	t.Helper()
	reward := models.Reward{
		ID:             utils.GenerateID(),
		Title:          "Reusable Bottle",
		Slug:           "reusable-bottle-" + utils.GenerateID()[:8],
		PointsCost:     cost,
		StartDate:      time.Now().Add(-time.Hour),
		EndDate:        time.Now().Add(time.Hour),
		MaxEachRedeem:  maxEach,
		MaxTotalRedeem: maxTotal,
	}
	if err := database.DB.Create(&reward).Error; err != nil {
		t.Fatalf("Failed to seed reward: %v", err)
	}
	return reward
}

func seedEvent(t *testing.T, daysAhead int) models.Event {
	t.Helper()
	event := models.Event{
		ID:        utils.GenerateID(),
		Title:     "Park Cleanup",
		Slug:      "park-cleanup-" + utils.GenerateID()[:8],
		EventDate: time.Now().AddDate(0, 0, daysAhead),
	}
	if err := database.DB.Create(&event).Error; err != nil {
		t.Fatalf("Failed to seed event: %v", err)
	}
	return event
}

// testContext builds a gin test context with an optional JSON body.
func testContext(t *testing.T, method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return out
}

func intPtr(i int) *int { return &i }
