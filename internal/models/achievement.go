package models

import "time"

type AchievementTrigger string

const (
	TriggerFirstRedemption    AchievementTrigger = "FIRST_REDEMPTION"
	TriggerFirstCollection    AchievementTrigger = "FIRST_COLLECTION"
	TriggerFirstEventSignup   AchievementTrigger = "FIRST_EVENT_REGISTRATION"
	TriggerFirstParticipation AchievementTrigger = "FIRST_EVENT_PARTICIPATION"
	TriggerFirstVolunteer     AchievementTrigger = "FIRST_VOLUNTEER"
	TriggerManual             AchievementTrigger = "MANUAL"
)

type Achievement struct {
	ID          string `gorm:"primaryKey;type:text" json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"` // Name of the Lucide icon

	// Trigger maps a tracked first occurrence to this achievement. MANUAL
	// achievements are only granted by admins and may share the trigger value.
	Trigger AchievementTrigger `gorm:"type:text;index" json:"trigger"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// UserAchievement records a grant. The composite primary key is the
// at-most-once invariant: an account can earn a given achievement exactly
// once, no matter how often the evaluator runs.
type UserAchievement struct {
	UserID        string    `gorm:"primaryKey;type:text" json:"userId"`
	AchievementID string    `gorm:"primaryKey;type:text" json:"achievementId"`
	EarnedAt      time.Time `json:"earnedAt"`

	// Notice is the unread indicator, reset once the holder has seen the grant.
	Notice bool `gorm:"default:true" json:"notice"`

	Achievement Achievement `gorm:"foreignKey:AchievementID" json:"achievement"`
	User        User        `gorm:"foreignKey:UserID" json:"-"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
