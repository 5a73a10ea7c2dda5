package models

import (
	"time"

	"github.com/lib/pq"
)

type Reward struct {
	ID          string `gorm:"primaryKey;type:text" json:"id"`
	Title       string `json:"title"`
	Slug        string `gorm:"uniqueIndex" json:"slug"` // URL friendly
	Description string `json:"description"`
	Image       string `json:"image"`

	// PointsCost is what a single redemption debits from the account.
	PointsCost int `json:"pointsCost"`

	// Active window. A redemption is only allowed while
	// StartDate <= now <= EndDate.
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	// MaxEachRedeem caps redemptions per account, MaxTotalRedeem caps
	// redemptions across all accounts. nil means unlimited.
	MaxEachRedeem  *int `json:"maxEachRedeem"`
	MaxTotalRedeem *int `json:"maxTotalRedeem"`

	Tags pq.StringArray `gorm:"type:text[]" json:"tags"`

	CreatedBy string `json:"createdBy"`
	Creator   User   `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Reward) TableName() string {
	return "rewards"
}
