package model

import (
	"time"

	"gorm.io/gorm"
)

// Hackathon represents a hackathon entity in the system.
// Matches the hackathons table schema.
type Hackathon struct {
	HackathonID    string    `gorm:"primaryKey;column:hackathon_id;type:varchar(36)"           json:"hackathon_id"`
	Name           string    `gorm:"column:name;type:varchar(100);not null"                    json:"name"`
	OrganizerEmail string    `gorm:"column:organizer_email;type:varchar(255);not null"         json:"organizer_email"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt      time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Hackathon) TableName() string {
	return "hackathons"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (h *Hackathon) BeforeUpdate(tx *gorm.DB) error {
	h.UpdatedAt = time.Now()
	return nil
}

// Participant represents a registered hackathon participant.
// Matches the hackathon_participants table schema.
type Participant struct {
	HackathonID string    `gorm:"primaryKey;column:hackathon_id;type:varchar(36)"           json:"hackathon_id"`
	Email       string    `gorm:"primaryKey;column:email;type:varchar(255)"                 json:"email"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"                    json:"name"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Participant) TableName() string {
	return "hackathon_participants"
}
