package types

import "time"

// RegisterRequest is the body for POST /auth/register
type RegisterRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Username string  `json:"username" binding:"required,max=50"`
	WeightKg float64 `json:"weight_kg"`
	Sex      string  `json:"sex" binding:"omitempty,oneof=male female"`
	BodyType string  `json:"body_type"`
}

// LoginRequest is the body for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries partial profile updates; nil means "leave
// as is".
type UpdateProfileRequest struct {
	Username *string  `json:"username,omitempty"`
	WeightKg *float64 `json:"weight_kg,omitempty"`
	Sex      *string  `json:"sex,omitempty" binding:"omitempty,oneof=male female"`
	BodyType *string  `json:"body_type,omitempty"`
}

// LogEventRequest is the body for POST /events
type LogEventRequest struct {
	Type        string    `json:"type" binding:"required,oneof=water electrolyte protein workout food"`
	At          time.Time `json:"at"`
	Amount      float64   `json:"amount" binding:"omitempty,min=0"`
	FoodID      string    `json:"food_id"`
	Mood        string    `json:"mood"`
	Activity    string    `json:"activity"`
	PreWeight   *float64  `json:"pre_weight"`
	PostWeight  *float64  `json:"post_weight"`
	DurationMin int       `json:"duration_min" binding:"omitempty,min=0"`
	Intensity   string    `json:"intensity" binding:"omitempty,oneof=light moderate intense"`
}

// RecommendationQuery are the optional knobs on the recommendation
// endpoints.
type RecommendationQuery struct {
	Activity string `form:"activity"`
	Mood     string `form:"mood"`
}

// CreateOrderRequest is the body for POST /orders
type CreateOrderRequest struct {
	KitName   string `json:"kit_name" binding:"required"`
	Archetype string `json:"archetype"`
	Note      string `json:"note" binding:"max=500"`
}

// UpdateOrderStatusRequest is the staff body for order status transitions
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed"`
}

// CoachMessageRequest is the body for POST /coach/message
type CoachMessageRequest struct {
	Question string `json:"question" binding:"required,max=1000"`
}
