// File: entities/recipe.go
package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type Recipe struct {
	ID           string    `gorm:"type:varchar(64);primary_key" json:"id"`
	Category     string    `gorm:"index" json:"category"`
	Name         string    `json:"name"`
	Time         Freeform  `json:"time"`
	Ingredients  Freeform  `json:"ingredients"`
	Instructions Freeform  `json:"instructions"`
	SortOrder    int       `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt    time.Time `gorm:"type:timestamp;autoCreateTime" json:"createdAt"`
}

// Stamp fills the generated fields the caller left empty.
func (r *Recipe) Stamp() {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	r.Stamp()
	return nil
}
