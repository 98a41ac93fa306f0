package models

import "time"

// Skill is a catalog entry users can offer or want. The catalog is seeded and
// extended by admins; regular users only read it.
type Skill struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Category    string    `gorm:"not null" json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
