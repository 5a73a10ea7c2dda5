package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	"github.com/1RJB/green-neighbourhood-backend/internal/services"
)

func TestRedeemReward_Success(t *testing.T) {
	SetupTestDB(t)
	user := seedUser(t, 10000)
	reward := seedReward(t, 5000, intPtr(1), nil)

	c, w := testContext(t, "POST", "/api/rewards/"+reward.ID+"/redeem", nil)
	c.Params = gin.Params{{Key: "id", Value: reward.ID}}
	c.Set("userId", user.ID)

	RedeemReward(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 5000, body["balance"])
	redemption := body["redemption"].(map[string]interface{})
	assert.Equal(t, "PENDING", redemption["status"])
}

func TestRedeemReward_InsufficientPoints(t *testing.T) {
	SetupTestDB(t)
	user := seedUser(t, 100)
	reward := seedReward(t, 5000, nil, nil)

	c, w := testContext(t, "POST", "/api/rewards/"+reward.ID+"/redeem", nil)
	c.Params = gin.Params{{Key: "id", Value: reward.ID}}
	c.Set("userId", user.ID)

	RedeemReward(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INSUFFICIENT_POINTS", decodeBody(t, w)["kind"])
}

func TestRedeemReward_PerAccountCap(t *testing.T) {
	SetupTestDB(t)
	user := seedUser(t, 10000)
	reward := seedReward(t, 100, intPtr(1), nil)

	for i, wantKind := range []string{"", "PER_ACCOUNT_CAP_EXCEEDED"} {
		c, w := testContext(t, "POST", "/api/rewards/"+reward.ID+"/redeem", nil)
		c.Params = gin.Params{{Key: "id", Value: reward.ID}}
		c.Set("userId", user.ID)

		RedeemReward(c)

		if wantKind == "" {
			assert.Equal(t, http.StatusOK, w.Code, "attempt %d", i+1)
		} else {
			assert.Equal(t, http.StatusBadRequest, w.Code, "attempt %d", i+1)
			assert.Equal(t, wantKind, decodeBody(t, w)["kind"])
		}
	}
}

func TestRedeemReward_NotFound(t *testing.T) {
	SetupTestDB(t)
	user := seedUser(t, 100)

	c, w := testContext(t, "POST", "/api/rewards/nope/redeem", nil)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	c.Set("userId", user.ID)

	RedeemReward(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateRedemption_CollectAndRepeat(t *testing.T) {
	SetupTestDB(t)
	user := seedUser(t, 10000)
	reward := seedReward(t, 5000, nil, nil)

	redeemed, err := services.Redeem(user.ID, reward.ID)
	assert.NoError(t, err)

	c, w := testContext(t, "PUT", "/api/redemptions/"+redeemed.Redemption.ID,
		map[string]string{"status": "COLLECTED"})
	c.Params = gin.Params{{Key: "id", Value: redeemed.Redemption.ID}}

	UpdateRedemption(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 5000, body["bonusPoints"])

	var fresh models.User
	database.DB.First(&fresh, "id = ?", user.ID)
	assert.Equal(t, 10000, fresh.Points)

	// Same PUT again: idempotent, no second bonus.
	c, w = testContext(t, "PUT", "/api/redemptions/"+redeemed.Redemption.ID,
		map[string]string{"status": "COLLECTED"})
	c.Params = gin.Params{{Key: "id", Value: redeemed.Redemption.ID}}

	UpdateRedemption(c)

	assert.Equal(t, http.StatusOK, w.Code)
	_, hasBonus := decodeBody(t, w)["bonusPoints"]
	assert.False(t, hasBonus)

	database.DB.First(&fresh, "id = ?", user.ID)
	assert.Equal(t, 10000, fresh.Points)
}

func TestUpdateRedemption_TerminalConflict(t *testing.T) {
	SetupTestDB(t)
	user := seedUser(t, 1000)
	reward := seedReward(t, 100, nil, nil)

	redeemed, err := services.Redeem(user.ID, reward.ID)
	assert.NoError(t, err)

	c, w := testContext(t, "PUT", "/api/redemptions/"+redeemed.Redemption.ID,
		map[string]string{"status": "EXPIRED"})
	c.Params = gin.Params{{Key: "id", Value: redeemed.Redemption.ID}}
	UpdateRedemption(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testContext(t, "PUT", "/api/redemptions/"+redeemed.Redemption.ID,
		map[string]string{"status": "COLLECTED"})
	c.Params = gin.Params{{Key: "id", Value: redeemed.Redemption.ID}}
	UpdateRedemption(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", decodeBody(t, w)["kind"])
}

func TestUpdateRedemption_UnknownStatus(t *testing.T) {
	SetupTestDB(t)

	c, w := testContext(t, "PUT", "/api/redemptions/whatever",
		map[string]string{"status": "SHIPPED"})
	c.Params = gin.Params{{Key: "id", Value: "whatever"}}

	UpdateRedemption(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMyRedemptions_Filter(t *testing.T) {
	SetupTestDB(t)
	user := seedUser(t, 1000)
	other := seedUser(t, 1000)
	reward := seedReward(t, 100, nil, nil)

	first, err := services.Redeem(user.ID, reward.ID)
	assert.NoError(t, err)
	_, err = services.Redeem(user.ID, reward.ID)
	assert.NoError(t, err)
	_, err = services.Redeem(other.ID, reward.ID)
	assert.NoError(t, err)

	_, err = services.UpdateRedemptionStatus(first.Redemption.ID, models.RedemptionStatusCollected, nil)
	assert.NoError(t, err)

	c, w := testContext(t, "GET", "/api/redemptions/my?status=PENDING", nil)
	c.Set("userId", user.ID)

	GetMyRedemptions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	redemptions := decodeBody(t, w)["redemptions"].([]interface{})
	assert.Len(t, redemptions, 1, "one collected, one pending, other user excluded")
}

func TestListRedemptions_FilterAndSortWhitelist(t *testing.T) {
	SetupTestDB(t)
	user := seedUser(t, 1000)
	reward := seedReward(t, 100, nil, nil)

	_, err := services.Redeem(user.ID, reward.ID)
	assert.NoError(t, err)
	_, err = services.Redeem(user.ID, reward.ID)
	assert.NoError(t, err)

	// An unknown sort column must fall back instead of reaching the SQL.
	c, w := testContext(t, "GET", "/api/redemptions?userId="+user.ID+"&sortBy=points;drop&order=sideways", nil)

	ListRedemptions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	redemptions := decodeBody(t, w)["redemptions"].([]interface{})
	assert.Len(t, redemptions, 2)
}
