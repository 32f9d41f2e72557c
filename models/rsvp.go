package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RSVPEntry is one immutable response row in the RSVP ledger. Rows are only
// ever appended; the current status of a guest is its row with the latest
// CreatedAt. All rows of one submission share the same CreatedAt and RSVPBy.
type RSVPEntry struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	GuestID       string    `gorm:"type:uuid;not null;index" json:"guestId"`
	RSVPBy        string    `gorm:"type:uuid;not null;column:rsvp_by" json:"rsvpBy"`
	Attending     bool      `gorm:"not null" json:"attending"`
	GlutenFree    bool      `gorm:"not null;default:false" json:"glutenFree"`
	NeedTransport bool      `gorm:"not null;default:false" json:"needTransport"`
	DietaryNotes  *string   `gorm:"type:text" json:"dietaryNotes"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
}

func (RSVPEntry) TableName() string { return "rsvp_guest" }

func (e *RSVPEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
