package models

import "time"

type RedemptionStatus string

const (
	RedemptionStatusPending   RedemptionStatus = "PENDING"
	RedemptionStatusCollected RedemptionStatus = "COLLECTED"
	RedemptionStatusExpired   RedemptionStatus = "EXPIRED"
)

// Redemption is the append-only record of one reward redemption. Created only
// by the redemption workflow, in the same transaction as the point debit.
type Redemption struct {
	ID       string `gorm:"primaryKey;type:text" json:"id"`
	UserID   string `gorm:"index" json:"userId"`
	RewardID string `gorm:"index" json:"rewardId"`

	Status RedemptionStatus `gorm:"type:text;default:'PENDING'" json:"status"`

	// CollectBy is the deadline for picking up the reward in person.
	CollectBy *time.Time `json:"collectBy"`

	// BonusAwarded guards the one-time collection bonus: it flips to true in
	// the same transaction that credits the bonus, so repeated COLLECTED
	// updates never double-credit.
	BonusAwarded bool `gorm:"default:false" json:"bonusAwarded"`

	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Reward Reward `gorm:"foreignKey:RewardID" json:"reward,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Redemption) TableName() string {
	return "redemptions"
}

// IsTerminal reports whether the status admits no further transitions.
func (s RedemptionStatus) IsTerminal() bool {
	return s == RedemptionStatusCollected || s == RedemptionStatusExpired
}

// ValidStatus reports whether s is a member of the closed status set.
func ValidStatus(s RedemptionStatus) bool {
	switch s {
	case RedemptionStatusPending, RedemptionStatusCollected, RedemptionStatusExpired:
		return true
	}
	return false
}
