package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Guest is one invited person. Guests are created by admin action and never
// hard-deleted outside the gated full wipe.
type Guest struct {
	ID                 string    `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName          string    `gorm:"type:varchar(120);not null" json:"firstName"`
	LastName           string    `gorm:"type:varchar(120);not null;index" json:"lastName"`
	IsChild            bool      `gorm:"not null;default:false" json:"isChild"`
	ExpectedGlutenFree bool      `gorm:"not null;default:false" json:"expectedGlutenFree"`
	CreatedAt          time.Time `json:"-"`
}

func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
