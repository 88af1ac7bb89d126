package model

import (
	"time"

	"gorm.io/gorm"
)

// LogisticsItem represents a finite physical supply for a hackathon.
// Matches the logistics_items table schema. SecretCode is the capability
// token volunteers use to redeem units; it is immutable post-creation.
type LogisticsItem struct {
	LogisticsID   string    `gorm:"primaryKey;column:logistics_id;type:varchar(36)"           json:"logistics_id"`
	HackathonID   string    `gorm:"column:hackathon_id;type:varchar(36);not null;index:idx_logistics_items_hackathon" json:"hackathon_id"`
	Name          string    `gorm:"column:name;type:varchar(100);not null"                    json:"name"`
	TotalQuantity int       `gorm:"column:total_quantity;type:integer;not null"               json:"total_quantity"`
	GivenAway     int       `gorm:"column:given_away;type:integer;not null;default:0"         json:"given_away"`
	SecretCode    string    `gorm:"column:secret_code;type:varchar(36);not null;uniqueIndex"  json:"-"`
	CreatedAt     time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt     time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (LogisticsItem) TableName() string {
	return "logistics_items"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (i *LogisticsItem) BeforeUpdate(tx *gorm.DB) error {
	i.UpdatedAt = time.Now()
	return nil
}

// Redemption records one unit of an item granted to one participant.
// Append-only; the primary key enforces the exact-once policy.
type Redemption struct {
	LogisticsID      string    `gorm:"primaryKey;column:logistics_id;type:varchar(36)"           json:"logistics_id"`
	ParticipantEmail string    `gorm:"primaryKey;column:participant_email;type:varchar(255)"     json:"participant_email"`
	CreatedAt        time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Redemption) TableName() string {
	return "redemptions"
}
