package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/1RJB/green-neighbourhood-backend/internal/config"
	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	"github.com/1RJB/green-neighbourhood-backend/pkg/logger"
	"github.com/1RJB/green-neighbourhood-backend/pkg/utils"
	apperrors "github.com/1RJB/green-neighbourhood-backend/pkg/errors"
)

// DefaultCollectWindow is how long a customer has to pick up a redeemed
// reward before staff may expire the record.
const DefaultCollectWindow = 30 * 24 * time.Hour

// RedeemResult is what a successful redemption returns to the handler.
type RedeemResult struct {
	Balance     int                 `json:"balance"`
	Redemption  *models.Redemption  `json:"redemption"`
	Achievement *models.Achievement `json:"achievement,omitempty"`
}

// Redeem runs the whole redemption workflow as one transaction: eligibility,
// point debit, redemption record, achievement evaluation. Either everything
// persists or nothing does; a failed insert after the debit rolls the debit
// back too.
//
// Serialization conflicts are retried a bounded number of times before
// surfacing as a CONCURRENCY_CONFLICT.
func Redeem(userID, rewardID string) (*RedeemResult, error) {
	var result *RedeemResult

	attempt := func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			now := time.Now()

			reward, err := CheckRedeemEligibility(tx, userID, rewardID, now)
			if err != nil {
				return err
			}

			// Balance check is folded into the debit so it is atomic with
			// the write. It deliberately runs after every other check.
			balance, err := Debit(tx, userID, reward.PointsCost)
			if err != nil {
				return err
			}

			collectBy := now.Add(DefaultCollectWindow)
			redemption := models.Redemption{
				ID:        utils.GenerateID(),
				UserID:    userID,
				RewardID:  reward.ID,
				Status:    models.RedemptionStatusPending,
				CollectBy: &collectBy,
				CreatedAt: now,
			}
			if err := tx.Create(&redemption).Error; err != nil {
				return err
			}

			achievement, err := EvaluateAchievement(tx, userID, models.TriggerFirstRedemption)
			if err != nil {
				return err
			}

			result = &RedeemResult{
				Balance:     balance,
				Redemption:  &redemption,
				Achievement: achievement,
			}
			return nil
		})
	}

	if err := withConflictRetry(attempt); err != nil {
		return nil, err
	}

	logger.Info().
		Str("user_id", userID).
		Str("reward_id", rewardID).
		Int("balance", result.Balance).
		Msg("Reward redeemed")

	return result, nil
}

// CollectionResult is returned by redemption status updates.
type CollectionResult struct {
	Redemption  *models.Redemption  `json:"redemption"`
	Achievement *models.Achievement `json:"achievement,omitempty"`
	BonusPoints int                 `json:"bonusPoints,omitempty"`
}

// UpdateRedemptionStatus applies a staff-side status transition.
//
// PENDING -> COLLECTED credits the configured collection bonus exactly once
// (guarded by the BonusAwarded flag, flipped in the same transaction) and
// evaluates the first-collection achievement. PENDING -> EXPIRED has no side
// effects. COLLECTED and EXPIRED are terminal; repeating the same update is
// an idempotent no-op.
func UpdateRedemptionStatus(recordID string, status models.RedemptionStatus, collectBy *time.Time) (*CollectionResult, error) {
	if !models.ValidStatus(status) {
		return nil, apperrors.BadRequest("Unknown redemption status")
	}

	var result *CollectionResult

	attempt := func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			var redemption models.Redemption
			if err := lockForUpdate(tx).First(&redemption, "id = ?", recordID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NotFound("Redemption not found")
				}
				return err
			}

			// Repeat of an already-applied transition: report current state.
			if redemption.Status == status {
				if collectBy != nil && !redemption.Status.IsTerminal() {
					if err := tx.Model(&redemption).Update("collect_by", collectBy).Error; err != nil {
						return err
					}
					redemption.CollectBy = collectBy
				}
				result = &CollectionResult{Redemption: &redemption}
				return nil
			}

			if redemption.Status.IsTerminal() {
				return apperrors.Conflict("Redemption is already " + string(redemption.Status))
			}

			updates := map[string]interface{}{"status": status}
			if collectBy != nil {
				updates["collect_by"] = collectBy
			}

			result = &CollectionResult{Redemption: &redemption}

			if status == models.RedemptionStatusCollected && !redemption.BonusAwarded {
				bonus := collectionBonus()
				if bonus > 0 {
					if _, err := Credit(tx, redemption.UserID, bonus); err != nil {
						return err
					}
					result.BonusPoints = bonus
				}
				updates["bonus_awarded"] = true
				redemption.BonusAwarded = true

				achievement, err := EvaluateAchievement(tx, redemption.UserID, models.TriggerFirstCollection)
				if err != nil {
					return err
				}
				result.Achievement = achievement
			}

			if err := tx.Model(&redemption).Updates(updates).Error; err != nil {
				return err
			}
			redemption.Status = status
			if collectBy != nil {
				redemption.CollectBy = collectBy
			}
			return nil
		})
	}

	if err := withConflictRetry(attempt); err != nil {
		return nil, err
	}
	return result, nil
}

// withConflictRetry runs attempt, retrying bounded times on serialization
// conflicts, then surfaces ErrConcurrencyConflict.
func withConflictRetry(attempt func() error) error {
	retries := redeemMaxRetries()
	var err error
	for i := 0; i <= retries; i++ {
		err = attempt()
		if err == nil || !isRetryableTxError(err) {
			return err
		}
		logger.Warn().Err(err).Int("attempt", i+1).Msg("Retrying transaction after conflict")
		time.Sleep(time.Duration(i+1) * 10 * time.Millisecond)
	}
	return apperrors.ErrConcurrencyConflict
}

func collectionBonus() int {
	if config.AppConfig == nil {
		return 5000
	}
	return config.AppConfig.CollectionBonusPoints
}

func redeemMaxRetries() int {
	if config.AppConfig == nil || config.AppConfig.RedeemMaxRetries <= 0 {
		return 3
	}
	return config.AppConfig.RedeemMaxRetries
}
