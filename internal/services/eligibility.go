package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	apperrors "github.com/1RJB/green-neighbourhood-backend/pkg/errors"
)

// lockForUpdate applies a row-level write lock on dialects that support it.
// SQLite (used by the test suite) has no FOR UPDATE; its single-writer model
// serialises the transactions instead.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// CheckRedeemEligibility validates that the account may redeem the reward
// right now. Checks run in a fixed order and the first failure wins:
// existence, active window, global cap, per-account cap. The balance check is
// not here: it happens in Debit, atomically with the write, and is the last
// check the workflow performs.
//
// The reward row is locked before the caps are counted so that two requests
// racing for the last slot of a capped reward serialise on the row; exactly
// one of them sees the cap as still open.
func CheckRedeemEligibility(tx *gorm.DB, userID, rewardID string, now time.Time) (*models.Reward, error) {
	var reward models.Reward
	if err := lockForUpdate(tx).First(&reward, "id = ?", rewardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Reward not found")
		}
		return nil, err
	}

	if now.Before(reward.StartDate) || now.After(reward.EndDate) {
		return nil, apperrors.ErrOutOfWindow
	}

	if reward.MaxTotalRedeem != nil {
		var total int64
		if err := tx.Model(&models.Redemption{}).
			Where("reward_id = ?", reward.ID).
			Count(&total).Error; err != nil {
			return nil, err
		}
		if total >= int64(*reward.MaxTotalRedeem) {
			return nil, apperrors.ErrGlobalCapExceeded
		}
	}

	if reward.MaxEachRedeem != nil {
		var mine int64
		if err := tx.Model(&models.Redemption{}).
			Where("reward_id = ? AND user_id = ?", reward.ID, userID).
			Count(&mine).Error; err != nil {
			return nil, err
		}
		if mine >= int64(*reward.MaxEachRedeem) {
			return nil, apperrors.ErrPerAccountCapExceeded
		}
	}

	return &reward, nil
}

// isRetryableTxError reports whether the transaction failed due to a
// serialization conflict, deadlock, or SQLite write contention. Such
// transactions are safe to retry from the top.
func isRetryableTxError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "40001") || // serialization_failure
		strings.Contains(msg, "40P01") || // deadlock_detected
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "deadlock detected") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}
