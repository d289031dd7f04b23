package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment status values
const (
	PaymentStatusSuccess = "success"
	PaymentStatusPending = "pending"
	PaymentStatusFailed  = "failed"
)

type Payment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`
	BusinessID uuid.UUID `gorm:"type:uuid;index" json:"businessId"`

	Reference string `gorm:"uniqueIndex;not null" json:"reference"`

	Total           float64 `gorm:"type:decimal(10,2);default:0.0" json:"total"`
	TotalWithoutVAT float64 `gorm:"type:decimal(10,2);default:0.0" json:"totalWithoutVAT"`
	TotalVAT        float64 `gorm:"type:decimal(10,2);default:0.0" json:"totalVAT"`

	Status               string     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	RevenuePaymentStatus *string    `json:"revenuePaymentStatus,omitempty"`
	PaymentDate          *time.Time `json:"paymentDate"`

	gorm.Model
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
