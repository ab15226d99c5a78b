package models

import "time"

// SkillProfile describes what a user offers and wants in exchange. Each user
// has at most one row; the unique index on UserID backs the atomic upsert in
// the profile repository.
type SkillProfile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	SkillOffered string    `json:"skill_offered"`
	SkillWanted  string    `json:"skill_wanted"`
	Availability string    `json:"availability"`
	IsPublic     bool      `json:"is_public"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for GORM
func (SkillProfile) TableName() string {
	return "skill_profiles"
}

// DirectoryEntry is a public profile row joined with its owner's display name,
// as returned by the browse endpoint.
type DirectoryEntry struct {
	ProfileID    uint   `json:"profile_id"`
	UserID       uint   `json:"user_id"`
	OwnerName    string `json:"owner_name"`
	SkillOffered string `json:"skill_offered"`
	SkillWanted  string `json:"skill_wanted"`
	Availability string `json:"availability"`
	Location     string `json:"location"`
}
