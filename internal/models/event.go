package models

import "time"

type Event struct {
	ID          string `gorm:"primaryKey;type:text" json:"id"`
	Title       string `json:"title"`
	Slug        string `gorm:"uniqueIndex" json:"slug"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Banner      string `json:"banner"`

	EventDate time.Time `json:"eventDate"`

	// PointsAward is credited to a participant once staff confirm attendance.
	PointsAward int `json:"pointsAward"`

	// VolunteerSlots caps confirmed volunteers. nil means unlimited.
	VolunteerSlots *int `json:"volunteerSlots"`

	CreatedBy string `json:"createdBy"`
	Creator   User   `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Event) TableName() string {
	return "events"
}

// Participant is one sign-up for an event. Uniqueness of (event_id, email) is
// enforced in the schema, not just at the API layer.
type Participant struct {
	ID      string `gorm:"primaryKey;type:text" json:"id"`
	EventID string `gorm:"uniqueIndex:idx_event_email" json:"eventId"`
	Email   string `gorm:"uniqueIndex:idx_event_email" json:"email"`
	Name    string `json:"name"`

	// UserID links the sign-up to an account when the participant registered
	// while logged in. Walk-in registrations leave it nil.
	UserID *string `gorm:"index" json:"userId"`

	Attended bool `gorm:"default:false" json:"attended"`

	Event Event `gorm:"foreignKey:EventID" json:"event,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Participant) TableName() string {
	return "participants"
}

type VolunteerStatus string

const (
	VolunteerStatusApplied   VolunteerStatus = "APPLIED"
	VolunteerStatusConfirmed VolunteerStatus = "CONFIRMED"
)

type Volunteer struct {
	ID      string `gorm:"primaryKey;type:text" json:"id"`
	EventID string `gorm:"uniqueIndex:idx_event_volunteer" json:"eventId"`
	UserID  string `gorm:"uniqueIndex:idx_event_volunteer" json:"userId"`

	Status VolunteerStatus `gorm:"type:text;default:'APPLIED'" json:"status"`

	Event Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Volunteer) TableName() string {
	return "volunteers"
}
