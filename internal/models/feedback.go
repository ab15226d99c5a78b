package models

import "time"

// Feedback is a free-text rating attached to a swap id. The swap id is not
// validated to exist and the rating range is unchecked; rows are written once
// and never updated.
type Feedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SwapID    uint      `gorm:"index" json:"swap_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Feedback) TableName() string {
	return "feedback"
}
