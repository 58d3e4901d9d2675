package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order fulfillment states. The backend only exposes the current status
// and the staff transition between them; there is no workflow engine.
const (
	OrderPending    = "pending"
	OrderInProgress = "in_progress"
	OrderCompleted  = "completed"
)

// KitOrder is one user's request for a kit, usually created straight from
// a recommendation.
type KitOrder struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	KitName   string         `gorm:"size:50;not null" json:"kit_name"`
	Archetype string         `gorm:"size:30" json:"archetype"`
	Status    string         `gorm:"size:20;not null;default:'pending'" json:"status"`
	Note      string         `gorm:"type:text" json:"note"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
