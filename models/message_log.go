package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageLog records every direct-chat send attempt, successful or not.
type MessageLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`

	Body         string    `gorm:"type:text;not null" json:"body"`
	Channel      string    `gorm:"type:varchar(20)" json:"channel"` // "whatsapp" or "sms"
	Status       string    `gorm:"type:varchar(20)" json:"status"`  // "sent" or "failed"
	ErrorMessage string    `json:"errorMessage,omitempty"`
	SentAt       time.Time `json:"sentAt"`

	gorm.Model
}

func (m *MessageLog) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
