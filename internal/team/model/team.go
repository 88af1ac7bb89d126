package model

import (
	"time"

	"gorm.io/gorm"
)

// Team represents a team entity in the system.
// Matches the teams table schema. TeamID doubles as the public join code.
type Team struct {
	HackathonID string    `gorm:"primaryKey;column:hackathon_id;type:varchar(36)"           json:"hackathon_id"`
	TeamID      string    `gorm:"primaryKey;column:team_id;type:char(6)"                    json:"team_id"`
	TeamName    string    `gorm:"column:team_name;type:varchar(50);not null"                json:"team_name"`
	LeaderEmail string    `gorm:"column:leader_email;type:varchar(255);not null"            json:"leader_email"`
	Submitted   bool      `gorm:"column:submitted;type:boolean;not null;default:false"      json:"submitted"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// TeamMember represents a participant's membership in a team.
// The (hackathon_id, email) primary key enforces one team per hackathon.
type TeamMember struct {
	HackathonID string    `gorm:"primaryKey;column:hackathon_id;type:varchar(36)"          json:"hackathon_id"`
	Email       string    `gorm:"primaryKey;column:email;type:varchar(255)"                json:"email"`
	TeamID      string    `gorm:"column:team_id;type:char(6);not null;index:idx_team_members_team" json:"team_id"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"                   json:"name"`
	JoinedAt    time.Time `gorm:"column:joined_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (TeamMember) TableName() string {
	return "team_members"
}
