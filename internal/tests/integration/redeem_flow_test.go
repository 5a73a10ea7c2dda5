package integration

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	"github.com/1RJB/green-neighbourhood-backend/pkg/utils"
)

// The canonical happy path: a resident with 10000 points redeems a 5000-point
// reward capped at one per account, staff mark it collected, the resident
// banks the collection bonus.
func TestRedeemFlow_e2e(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	resident, residentToken := createTestUser(t, "redeem_resident", "USER", 10000)
	_, staffToken := createTestUser(t, "redeem_staff", "STAFF", 0)

	database.DB.Create(&models.Achievement{
		ID:      utils.GenerateID(),
		Title:   "First Redemption",
		Trigger: models.TriggerFirstRedemption,
	})

	// 1. Staff publish the reward
	w := performRequest(r, "POST", "/api/staff/rewards", map[string]interface{}{
		"title":         "Eco Hamper",
		"pointsCost":    5000,
		"startDate":     time.Now().Add(-time.Hour).Format(time.RFC3339),
		"endDate":       time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"maxEachRedeem": 1,
	}, staffToken)
	assert.Equal(t, http.StatusCreated, w.Code)
	rewardID := decode(t, w)["reward"].(map[string]interface{})["id"].(string)

	// 2. Resident redeems
	w = performRequest(r, "POST", "/api/rewards/"+rewardID+"/redeem", nil, residentToken)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.EqualValues(t, 5000, resp["balance"])
	assert.NotNil(t, resp["achievement"], "first redemption grants the achievement")
	redemptionID := resp["redemption"].(map[string]interface{})["id"].(string)

	// 3. Second attempt fails on the per-account cap, not the balance
	w = performRequest(r, "POST", "/api/rewards/"+rewardID+"/redeem", nil, residentToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PER_ACCOUNT_CAP_EXCEEDED", decode(t, w)["kind"])

	// 4. Staff mark the redemption collected; bonus credited once
	w = performRequest(r, "PUT", "/api/redemptions/"+redemptionID,
		map[string]string{"status": "COLLECTED"}, staffToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 5000, decode(t, w)["bonusPoints"])

	// 5. Repeat PUT is idempotent
	w = performRequest(r, "PUT", "/api/redemptions/"+redemptionID,
		map[string]string{"status": "COLLECTED"}, staffToken)
	assert.Equal(t, http.StatusOK, w.Code)
	_, hasBonus := decode(t, w)["bonusPoints"]
	assert.False(t, hasBonus)

	var fresh models.User
	database.DB.First(&fresh, "id = ?", resident.ID)
	assert.Equal(t, 10000, fresh.Points)

	// 6. Resident sees the collected redemption
	w = performRequest(r, "GET", "/api/redemptions/my", nil, residentToken)
	assert.Equal(t, http.StatusOK, w.Code)
	redemptions := decode(t, w)["redemptions"].([]interface{})
	assert.Len(t, redemptions, 1)
	assert.Equal(t, "COLLECTED", redemptions[0].(map[string]interface{})["status"])
}

func TestRedeemFlow_AuthRequired(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	w := performRequest(r, "POST", "/api/rewards/some-id/redeem", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRedeemFlow_StaffOnlyUpdates(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	user, userToken := createTestUser(t, "nonstaff", "USER", 10000)

	reward := models.Reward{
		ID:         utils.GenerateID(),
		Title:      "Tote Bag",
		Slug:       "tote-bag",
		PointsCost: 100,
		StartDate:  time.Now().Add(-time.Hour),
		EndDate:    time.Now().Add(time.Hour),
	}
	database.DB.Create(&reward)

	w := performRequest(r, "POST", "/api/rewards/"+reward.ID+"/redeem", nil, userToken)
	assert.Equal(t, http.StatusOK, w.Code)
	redemptionID := decode(t, w)["redemption"].(map[string]interface{})["id"].(string)

	// A regular account cannot flip its own redemption to COLLECTED.
	w = performRequest(r, "PUT", "/api/redemptions/"+redemptionID,
		map[string]string{"status": "COLLECTED"}, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var fresh models.User
	database.DB.First(&fresh, "id = ?", user.ID)
	assert.Equal(t, 9900, fresh.Points, "no self-service bonus")
}

func TestAdminAdjustPoints_e2e(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	resident, _ := createTestUser(t, "adjust_resident", "USER", 100)
	_, adminToken := createTestUser(t, "adjust_admin", "ADMIN", 0)
	_, staffToken := createTestUser(t, "adjust_staff", "STAFF", 0)

	// Staff are not admins here.
	w := performRequest(r, "POST", "/api/admin/users/"+resident.ID+"/points",
		map[string]interface{}{"amount": 50, "reason": "cleanup helper"}, staffToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(r, "POST", "/api/admin/users/"+resident.ID+"/points",
		map[string]interface{}{"amount": 50, "reason": "cleanup helper"}, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	// Debits that would go negative are rejected, not clamped.
	w = performRequest(r, "POST", "/api/admin/users/"+resident.ID+"/points",
		map[string]interface{}{"amount": -500, "reason": "correction"}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var fresh models.User
	database.DB.First(&fresh, "id = ?", resident.ID)
	assert.Equal(t, 150, fresh.Points)
}
