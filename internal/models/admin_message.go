package models

import "time"

// MessageSeverity tags the visual weight of a platform message.
type MessageSeverity string

const (
	// SeverityInfo is an informational banner.
	SeverityInfo MessageSeverity = "info"
	// SeverityWarning warns about upcoming changes or degraded behavior.
	SeverityWarning MessageSeverity = "warning"
	// SeveritySuccess announces positive platform news.
	SeveritySuccess MessageSeverity = "success"
	// SeverityError flags incidents.
	SeverityError MessageSeverity = "error"
)

// Valid reports whether the severity is a known value.
func (s MessageSeverity) Valid() bool {
	switch s {
	case SeverityInfo, SeverityWarning, SeveritySuccess, SeverityError:
		return true
	}
	return false
}

// AdminMessage is a broadcast banner managed by admins and shown to all
// clients while active.
type AdminMessage struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Title     string          `gorm:"not null" json:"title"`
	Body      string          `gorm:"not null" json:"body"`
	Severity  MessageSeverity `gorm:"type:varchar(10);default:'info'" json:"severity"`
	IsActive  bool            `gorm:"not null;index" json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (AdminMessage) TableName() string {
	return "admin_messages"
}
