package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	apperrors "github.com/1RJB/green-neighbourhood-backend/pkg/errors"
)

// The ledger is the only place account balances are mutated. Both operations
// run on the caller's transaction handle so a debit and the rows that justify
// it commit or roll back together.

// Debit subtracts amount points from the account. The balance check and the
// write are a single conditional UPDATE, so concurrent debits on the same
// account can never drive the balance negative.
func Debit(tx *gorm.DB, userID string, amount int) (int, error) {
	if amount <= 0 {
		return 0, apperrors.ErrInvalidAmount
	}

	res := tx.Model(&models.User{}).
		Where("id = ? AND points >= ?", userID, amount).
		Update("points", gorm.Expr("points - ?", amount))
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected == 0 {
		// Either the account is missing or the balance is too low.
		var user models.User
		if err := tx.Select("id").First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, apperrors.NotFound("Account not found")
			}
			return 0, err
		}
		return 0, apperrors.ErrInsufficientPoints
	}

	return currentBalance(tx, userID)
}

// Credit adds amount points to the account.
func Credit(tx *gorm.DB, userID string, amount int) (int, error) {
	if amount <= 0 {
		return 0, apperrors.ErrInvalidAmount
	}

	res := tx.Model(&models.User{}).
		Where("id = ?", userID).
		Update("points", gorm.Expr("points + ?", amount))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, apperrors.NotFound("Account not found")
	}

	return currentBalance(tx, userID)
}

func currentBalance(tx *gorm.DB, userID string) (int, error) {
	var user models.User
	if err := tx.Select("points").First(&user, "id = ?", userID).Error; err != nil {
		return 0, err
	}
	return user.Points, nil
}
