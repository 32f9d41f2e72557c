package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a free-text note left alongside an RSVP submission. It lives in
// its own store and never affects the ledger. When Anonymous is set, the
// display layer must not show Sender.
type Message struct {
	ID          string    `gorm:"type:uuid;primaryKey;column:message_id" json:"id"`
	SubmittedAt time.Time `gorm:"not null;index" json:"submittedAt"`
	Content     string    `gorm:"type:varchar(1000);not null" json:"content"`
	Sender      *string   `gorm:"type:varchar(120)" json:"sender"`
	GuestID     *string   `gorm:"type:uuid" json:"guestId"`
	Publish     bool      `gorm:"not null;default:true" json:"publish"`
	Anonymous   bool      `gorm:"not null;default:false" json:"anonymous"`
}

func (Message) TableName() string { return "messages" }

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
