package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/1RJB/green-neighbourhood-backend/internal/models"
)

// EvaluateAchievement grants the achievement mapped to trigger if the account
// has not earned it yet. Safe to call redundantly: the insert is ON CONFLICT
// DO NOTHING against the (user_id, achievement_id) primary key, so a repeat
// call can never double-grant even if two evaluations race.
//
// Returns the achievement only when this call actually granted it; nil when
// no definition exists for the trigger or the account already holds it.
func EvaluateAchievement(tx *gorm.DB, userID string, trigger models.AchievementTrigger) (*models.Achievement, error) {
	if trigger == models.TriggerManual {
		return nil, nil
	}

	var achievement models.Achievement
	// "trigger" is a reserved word in SQLite, so let GORM quote the column.
	err := tx.Where(map[string]interface{}{"trigger": trigger}).First(&achievement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	grant := models.UserAchievement{
		UserID:        userID,
		AchievementID: achievement.ID,
		EarnedAt:      time.Now(),
		Notice:        true,
	}

	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&grant)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Already earned
		return nil, nil
	}

	return &achievement, nil
}

// GrantManualAchievement awards an admin-managed achievement directly,
// through the same idempotent insert path as trigger evaluation.
func GrantManualAchievement(tx *gorm.DB, userID, achievementID string) (bool, error) {
	grant := models.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		EarnedAt:      time.Now(),
		Notice:        true,
	}

	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&grant)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
