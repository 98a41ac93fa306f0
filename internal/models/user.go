// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a member of the skill swap marketplace.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Email        string         `gorm:"unique;not null" json:"email"`
	Password     string         `gorm:"not null" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Location     string         `json:"location"`
	Availability string         `json:"availability"`
	PhotoURL     string         `json:"photo_url"`
	IsPublic     bool           `gorm:"not null" json:"is_public"`
	IsAdmin      bool           `gorm:"default:false" json:"is_admin"`
	IsBanned     bool           `gorm:"default:false;index" json:"is_banned"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Skills       []UserSkill    `gorm:"foreignKey:UserID" json:"skills,omitempty"`
}

// UserProfile is a user annotated with their offered and wanted skill lists,
// as returned by browse/discovery and profile endpoints.
type UserProfile struct {
	User
	OfferedSkills []UserSkill `json:"offered_skills"`
	WantedSkills  []UserSkill `json:"wanted_skills"`
}

// Profile splits the user's associations by role.
func (u User) Profile() UserProfile {
	profile := UserProfile{
		User:          u,
		OfferedSkills: []UserSkill{},
		WantedSkills:  []UserSkill{},
	}
	for _, assoc := range u.Skills {
		switch assoc.Role {
		case SkillRoleOffered:
			profile.OfferedSkills = append(profile.OfferedSkills, assoc)
		case SkillRoleWanted:
			profile.WantedSkills = append(profile.WantedSkills, assoc)
		}
	}
	profile.Skills = nil
	return profile
}
