package models

import "time"

// Rating score bounds.
const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating is feedback left by one participant of an accepted swap about the
// other. Each participant may rate a swap at most once.
type Rating struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SwapRequestID uint      `gorm:"not null;uniqueIndex:idx_ratings_swap_rater" json:"swap_request_id"`
	RaterID       uint      `gorm:"not null;uniqueIndex:idx_ratings_swap_rater" json:"rater_id"`
	RatedID       uint      `gorm:"not null;index:idx_ratings_rated" json:"rated_id"`
	Score         int       `gorm:"not null" json:"score"`
	Feedback      string    `json:"feedback"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	SwapRequest SwapRequest `gorm:"foreignKey:SwapRequestID" json:"-"`
	Rater       User        `gorm:"foreignKey:RaterID" json:"rater,omitempty"`
	Rated       User        `gorm:"foreignKey:RatedID" json:"-"`
}

// ValidScore reports whether score is within the accepted range.
func ValidScore(score int) bool {
	return score >= MinRatingScore && score <= MaxRatingScore
}
