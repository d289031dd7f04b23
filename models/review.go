package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review status values. "sent" means the review request went out but the
// customer has not answered yet; only non-"sent" reviews count for display.
const (
	ReviewStatusSent     = "sent"
	ReviewStatusReceived = "received"
	ReviewStatusOther    = "other"
)

type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`
	ReviewerID uuid.UUID `gorm:"type:uuid;index" json:"reviewerId"`

	// Rating 0 means "no rating given"; rated aggregates skip it.
	Rating  float64 `gorm:"type:decimal(3,2);default:0.0" json:"rating"`
	Message string  `gorm:"type:text" json:"message"`
	Status  string  `gorm:"type:varchar(20);default:'sent'" json:"status"`

	gorm.Model
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
