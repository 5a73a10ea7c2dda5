package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	"github.com/1RJB/green-neighbourhood-backend/internal/services"
)

func TestListRewards(t *testing.T) {
	SetupTestDB(t)
	seedReward(t, 100, nil, nil)
	seedReward(t, 250, nil, nil)

	c, w := testContext(t, "GET", "/api/rewards", nil)

	ListRewards(c)

	assert.Equal(t, http.StatusOK, w.Code)
	rewards := decodeBody(t, w)["rewards"].([]interface{})
	assert.Len(t, rewards, 2)
}

func TestGetReward_ByIDAndSlug(t *testing.T) {
	SetupTestDB(t)
	reward := seedReward(t, 100, nil, nil)

	c, w := testContext(t, "GET", "/api/rewards/"+reward.ID, nil)
	c.Params = gin.Params{{Key: "id", Value: reward.ID}}
	GetReward(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testContext(t, "GET", "/api/rewards/"+reward.Slug, nil)
	c.Params = gin.Params{{Key: "id", Value: reward.Slug}}
	GetReward(c)
	assert.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)["reward"].(map[string]interface{})
	assert.Equal(t, reward.ID, got["id"])
}

func TestRedeemReward_RateLimitFailsOpen(t *testing.T) {
	SetupTestDB(t)
	user := seedUser(t, 1000)
	reward := seedReward(t, 100, nil, nil)

	// Unreachable Redis: the per-account counter errors and the
	// redemption must still go through.
	database.Redis = redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	t.Cleanup(func() { database.Redis = nil })

	c, w := testContext(t, "POST", "/api/rewards/"+reward.ID+"/redeem", nil)
	c.Params = gin.Params{{Key: "id", Value: reward.ID}}
	c.Set("userId", user.ID)

	RedeemReward(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 900, decodeBody(t, w)["balance"])
}

func TestGetReward_NotFound(t *testing.T) {
	SetupTestDB(t)

	c, w := testContext(t, "GET", "/api/rewards/no-such-reward", nil)
	c.Params = gin.Params{{Key: "id", Value: "no-such-reward"}}

	GetReward(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMyAchievements_UnseenCount(t *testing.T) {
	SetupTestDB(t)
	user := seedUser(t, 1000)
	reward := seedReward(t, 100, nil, nil)

	achievement := models.Achievement{
		ID:      "ach-first-redemption",
		Title:   "First Redemption",
		Trigger: models.TriggerFirstRedemption,
	}
	database.DB.Create(&achievement)

	_, err := services.Redeem(user.ID, reward.ID)
	assert.NoError(t, err)

	c, w := testContext(t, "GET", "/api/users/me/achievements", nil)
	c.Set("userId", user.ID)
	GetMyAchievements(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["achievements"].([]interface{}), 1)
	assert.EqualValues(t, 1, body["unseen"])

	// Mark seen, then the unseen count drops to zero.
	c, w = testContext(t, "PUT", "/api/users/me/achievements/"+achievement.ID+"/seen", nil)
	c.Params = gin.Params{{Key: "id", Value: achievement.ID}}
	c.Set("userId", user.ID)
	MarkAchievementSeen(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testContext(t, "GET", "/api/users/me/achievements", nil)
	c.Set("userId", user.ID)
	GetMyAchievements(c)
	assert.EqualValues(t, 0, decodeBody(t, w)["unseen"])
}

func TestMarkAchievementSeen_NeverEarned(t *testing.T) {
	SetupTestDB(t)
	user := seedUser(t, 0)

	c, w := testContext(t, "PUT", "/api/users/me/achievements/nope/seen", nil)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	c.Set("userId", user.ID)

	MarkAchievementSeen(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
