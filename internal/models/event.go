package models

import (
	"time"

	"github.com/google/uuid"
)

// IntakeEvent is a single logged occurrence affecting hydration state.
// Events are immutable once created, so there is no UpdatedAt/DeletedAt.
// Amount is ml for water/electrolyte and g for protein/food.
type IntakeEvent struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index:idx_events_user_time" json:"user_id"`
	Type      string    `gorm:"size:20;not null" json:"type"`
	At        time.Time `gorm:"not null;index:idx_events_user_time" json:"at"`
	Amount    float64   `json:"amount"`
	FoodID    string    `gorm:"size:50" json:"food_id,omitempty"`
	Mood      string    `gorm:"size:20" json:"mood,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Workout-only fields. Pre/post weight come as a pair or not at all.
	Activity    string   `gorm:"size:30" json:"activity,omitempty"`
	PreWeight   *float64 `json:"pre_weight,omitempty"`
	PostWeight  *float64 `json:"post_weight,omitempty"`
	DurationMin int      `json:"duration_min,omitempty"`
	Intensity   string   `gorm:"size:10" json:"intensity,omitempty"`
}
