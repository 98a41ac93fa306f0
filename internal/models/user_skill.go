package models

import "time"

// SkillRole distinguishes skills a user teaches from skills they want to learn.
type SkillRole string

const (
	// SkillRoleOffered marks a skill the user can teach.
	SkillRoleOffered SkillRole = "offered"
	// SkillRoleWanted marks a skill the user wants to learn.
	SkillRoleWanted SkillRole = "wanted"
)

// Valid reports whether the role is a known value.
func (r SkillRole) Valid() bool {
	return r == SkillRoleOffered || r == SkillRoleWanted
}

// Levels for offered associations (proficiency).
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Levels for wanted associations (priority).
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// ValidLevel reports whether level is allowed for this role. Offered
// associations carry a proficiency, wanted ones a priority.
func (r SkillRole) ValidLevel(level string) bool {
	switch r {
	case SkillRoleOffered:
		return level == LevelBeginner || level == LevelIntermediate || level == LevelAdvanced
	case SkillRoleWanted:
		return level == LevelLow || level == LevelMedium || level == LevelHigh
	}
	return false
}

// UserSkill links a user to a catalog skill in a given role. A user has at
// most one association per (skill, role) pair.
type UserSkill struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_user_skill_role" json:"user_id"`
	SkillID     uint      `gorm:"not null;uniqueIndex:idx_user_skill_role" json:"skill_id"`
	Role        SkillRole `gorm:"type:varchar(10);not null;uniqueIndex:idx_user_skill_role" json:"role"`
	Level       string    `gorm:"type:varchar(20);not null" json:"level"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Skill Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

// TableName specifies the table name for GORM
func (UserSkill) TableName() string {
	return "user_skills"
}
