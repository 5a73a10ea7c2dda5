package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/1RJB/green-neighbourhood-backend/internal/database"
	"github.com/1RJB/green-neighbourhood-backend/internal/models"
	"github.com/1RJB/green-neighbourhood-backend/pkg/utils"
	apperrors "github.com/1RJB/green-neighbourhood-backend/pkg/errors"
)

// RegisterParticipant signs name/email up for the event. Duplicate sign-ups
// are rejected by both a server-side check and the (event_id, email) unique
// index; the index is what actually guarantees it under concurrency.
// When the registrant is a logged-in account the first-registration
// achievement is evaluated in the same transaction.
func RegisterParticipant(eventID, name, email string, userID *string) (*models.Participant, *models.Achievement, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var participant models.Participant
	var achievement *models.Achievement

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.First(&event, "id = ?", eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Event not found")
			}
			return err
		}

		if !RegistrationOpen(&event, time.Now()) {
			return apperrors.ErrOutOfWindow
		}

		var count int64
		if err := tx.Model(&models.Participant{}).
			Where("event_id = ? AND email = ?", eventID, email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.Conflict("This email is already registered for the event")
		}

		participant = models.Participant{
			ID:      utils.GenerateID(),
			EventID: eventID,
			Email:   email,
			Name:    name,
			UserID:  userID,
		}
		if err := tx.Create(&participant).Error; err != nil {
			// Unique index may still fire under a racing duplicate.
			if strings.Contains(err.Error(), "idx_event_email") ||
				strings.Contains(strings.ToLower(err.Error()), "unique") {
				return apperrors.Conflict("This email is already registered for the event")
			}
			return err
		}

		if userID != nil {
			granted, err := EvaluateAchievement(tx, *userID, models.TriggerFirstEventSignup)
			if err != nil {
				return err
			}
			achievement = granted
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &participant, achievement, nil
}

// SignUpVolunteer applies the account as a volunteer for the event. One
// application per (event, account); first application grants the volunteer
// achievement.
func SignUpVolunteer(eventID, userID string) (*models.Volunteer, *models.Achievement, error) {
	var volunteer models.Volunteer
	var achievement *models.Achievement

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.First(&event, "id = ?", eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Event not found")
			}
			return err
		}

		if !RegistrationOpen(&event, time.Now()) {
			return apperrors.ErrOutOfWindow
		}

		var count int64
		if err := tx.Model(&models.Volunteer{}).
			Where("event_id = ? AND user_id = ?", eventID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.Conflict("Already applied to volunteer for this event")
		}

		volunteer = models.Volunteer{
			ID:      utils.GenerateID(),
			EventID: eventID,
			UserID:  userID,
			Status:  models.VolunteerStatusApplied,
		}
		if err := tx.Create(&volunteer).Error; err != nil {
			if strings.Contains(err.Error(), "idx_event_volunteer") ||
				strings.Contains(strings.ToLower(err.Error()), "unique") {
				return apperrors.Conflict("Already applied to volunteer for this event")
			}
			return err
		}

		granted, err := EvaluateAchievement(tx, userID, models.TriggerFirstVolunteer)
		if err != nil {
			return err
		}
		achievement = granted
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &volunteer, achievement, nil
}

// ConfirmVolunteer moves an application to CONFIRMED, respecting the event's
// volunteer slot cap. The event row is locked while confirmed volunteers are
// counted so the cap holds under concurrent confirmations.
func ConfirmVolunteer(eventID, userID string) (*models.Volunteer, error) {
	var volunteer models.Volunteer

	err := withConflictRetry(func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			var event models.Event
			if err := lockForUpdate(tx).First(&event, "id = ?", eventID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NotFound("Event not found")
				}
				return err
			}

			if err := tx.First(&volunteer, "event_id = ? AND user_id = ?", eventID, userID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NotFound("Volunteer application not found")
				}
				return err
			}

			if volunteer.Status == models.VolunteerStatusConfirmed {
				return nil // idempotent
			}

			if event.VolunteerSlots != nil {
				var confirmed int64
				if err := tx.Model(&models.Volunteer{}).
					Where("event_id = ? AND status = ?", eventID, models.VolunteerStatusConfirmed).
					Count(&confirmed).Error; err != nil {
					return err
				}
				if confirmed >= int64(*event.VolunteerSlots) {
					return apperrors.ErrGlobalCapExceeded
				}
			}

			if err := tx.Model(&volunteer).Update("status", models.VolunteerStatusConfirmed).Error; err != nil {
				return err
			}
			volunteer.Status = models.VolunteerStatusConfirmed
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &volunteer, nil
}

// ConfirmParticipation marks a participant as attended and, when the sign-up
// is linked to an account, credits the event's point award and evaluates the
// first-participation achievement — all in one transaction. Repeat calls are
// idempotent no-ops.
func ConfirmParticipation(participantID string) (*models.Participant, *models.Achievement, int, error) {
	var participant models.Participant
	var achievement *models.Achievement
	awarded := 0

	err := withConflictRetry(func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			if err := lockForUpdate(tx).First(&participant, "id = ?", participantID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NotFound("Participant not found")
				}
				return err
			}

			if participant.Attended {
				return nil // already confirmed
			}

			var event models.Event
			if err := tx.First(&event, "id = ?", participant.EventID).Error; err != nil {
				return err
			}

			if err := tx.Model(&participant).Update("attended", true).Error; err != nil {
				return err
			}
			participant.Attended = true

			if participant.UserID != nil {
				if event.PointsAward > 0 {
					if _, err := Credit(tx, *participant.UserID, event.PointsAward); err != nil {
						return err
					}
					awarded = event.PointsAward
				}
				granted, err := EvaluateAchievement(tx, *participant.UserID, models.TriggerFirstParticipation)
				if err != nil {
					return err
				}
				achievement = granted
			}
			return nil
		})
	})
	if err != nil {
		return nil, nil, 0, err
	}
	return &participant, achievement, awarded, nil
}
