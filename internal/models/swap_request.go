package models

import "time"

// SwapStatus represents the status of a swap request.
type SwapStatus string

const (
	// SwapStatusPending indicates a swap request awaiting a decision.
	SwapStatusPending SwapStatus = "pending"
	// SwapStatusAccepted indicates the recipient accepted the swap.
	SwapStatusAccepted SwapStatus = "accepted"
	// SwapStatusRejected indicates the recipient rejected the swap.
	SwapStatusRejected SwapStatus = "rejected"
	// SwapStatusCancelled indicates the requester withdrew the swap.
	SwapStatusCancelled SwapStatus = "cancelled"
)

// Valid reports whether the status is a known value.
func (s SwapStatus) Valid() bool {
	switch s {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected, SwapStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status permits no further transitions.
// Only pending requests may be accepted, rejected or cancelled.
func (s SwapStatus) Terminal() bool {
	return s == SwapStatusAccepted || s == SwapStatusRejected || s == SwapStatusCancelled
}

// SwapRequest is a directed proposal from a requester to a recipient to
// exchange one offered skill for another. Both skill references point at
// offered associations: the requester's own, and one of the recipient's.
type SwapRequest struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	RequesterID      uint       `gorm:"not null;index:idx_swap_requests_requester" json:"requester_id"`
	RecipientID      uint       `gorm:"not null;index:idx_swap_requests_recipient" json:"recipient_id"`
	OfferedSkillID   uint       `gorm:"not null" json:"offered_skill_id"`
	RequestedSkillID uint       `gorm:"not null" json:"requested_skill_id"`
	Message          string     `json:"message"`
	Status           SwapStatus `gorm:"type:varchar(20);default:'pending';index:idx_swap_requests_status" json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Relationships
	Requester      User      `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Recipient      User      `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	OfferedSkill   UserSkill `gorm:"foreignKey:OfferedSkillID" json:"offered_skill,omitempty"`
	RequestedSkill UserSkill `gorm:"foreignKey:RequestedSkillID" json:"requested_skill,omitempty"`
}

// TableName specifies the table name for GORM
func (SwapRequest) TableName() string {
	return "swap_requests"
}

// Counterparty returns the other participant's ID, or 0 when userID is not a
// participant.
func (r *SwapRequest) Counterparty(userID uint) uint {
	switch userID {
	case r.RequesterID:
		return r.RecipientID
	case r.RecipientID:
		return r.RequesterID
	}
	return 0
}
