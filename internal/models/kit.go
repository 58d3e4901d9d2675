package models

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// Kit is one pre-composed product bundle from the fixed catalog. The
// catalog is reference data seeded once; rows change only when the product
// team reworks copy or artwork.
type Kit struct {
	ID          uuid.UUID       `gorm:"type:varchar(36);primarykey" json:"id"`
	Name        string          `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	RitualSteps StringList      `gorm:"type:jsonb;not null;default:'[]'" json:"ritual_steps"`
	Archetypes  StringList      `gorm:"type:jsonb;not null;default:'[]'" json:"archetypes"`
	ArtworkURL  string          `gorm:"size:255" json:"artwork_url"`
	Embedding   pgvector.Vector `gorm:"type:vector(3)" json:"-"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}
