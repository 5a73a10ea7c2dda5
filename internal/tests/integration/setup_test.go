package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/1RJB/green-neighbourhood-backend/internal/config"
	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/middleware"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	"github.com/1RJB/green-neighbourhood-backend/internal/routes"
	"github.com/1RJB/green-neighbourhood-backend/pkg/logger"
	"github.com/1RJB/green-neighbourhood-backend/pkg/utils"
)

// setupTestDB connects to TEST_DATABASE_URL when set (CI runs against real
// Postgres), falling back to in-memory SQLite for local runs.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	logger.Init("test")
	config.AppConfig = &config.Config{
		JWTSecret:             "test_secret_key_12345",
		CollectionBonusPoints: 5000,
		RedeemMaxRetries:      3,
	}

	var dialector gorm.Dialector
	if dsn := os.Getenv("TEST_DATABASE_URL"); dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open("file::memory:?cache=shared&_busy_timeout=5000")
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test DB: %v", err)
	}

	// Children first so plain DROP works on both dialects.
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

// setupRouter mimics the route layout of cmd/server/main.go.
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandlerMiddleware())

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		routes.RegisterAuthRoutes(auth)

		routes.RegisterUserRoutes(api)
		routes.RegisterRewardRoutes(api)
		routes.RegisterRedemptionRoutes(api)
		routes.RegisterEventRoutes(api)
		routes.RegisterAdminRoutes(api)
	}

	return r
}

func createTestUser(t *testing.T, prefix string, role string, points int) (models.User, string) {
	t.Helper()

	passHash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := models.User{
		ID:       utils.GenerateID(),
		Username: prefix + "_user",
		Email:    prefix + "@test.com",
		Password: string(passHash),
		Name:     prefix + " Test",
		Role:     models.Role(role),
		Points:   points,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", prefix, err)
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return user, token
}

func performRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(jsonBytes))
	} else {
		bodyReader = strings.NewReader("")
	}

	req, _ := http.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return resp
}
