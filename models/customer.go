package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer status values
const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
	CustomerStatusPending  = "pending"
)

type Customer struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null" json:"createdByUserId"`

	Email          string `gorm:"not null" json:"email"`
	FirstName      string `gorm:"not null" json:"firstName"`
	LastName       string `gorm:"not null" json:"lastName"`
	PhoneNumber    string `gorm:"not null;index" json:"phoneNumber"`
	WhatsappNumber string `json:"whatsappNumber"`

	BusinessName string `gorm:"not null" json:"businessName"`
	BusinessType string `gorm:"type:varchar(30);not null" json:"businessType"`
	Address      string `json:"address"`

	DirectChatMessage string `gorm:"type:text" json:"directChatMessage"`
	Notes             string `gorm:"type:text" json:"notes"`

	Rating      float64 `gorm:"type:decimal(3,2);default:0.0" json:"rating"`
	LastPayment float64 `gorm:"type:decimal(10,2);default:0.0" json:"lastPayment"`
	// TotalSpent caches the payment history sum. It is updated in the same
	// transaction that records a payment and repaired by the nightly
	// reconciler; the payment rows are the source of truth.
	TotalSpent float64 `gorm:"type:decimal(10,2);default:0.0" json:"totalSpent"`

	Status string `gorm:"type:varchar(20);default:'pending'" json:"status"`

	Reviews        []Review      `gorm:"foreignKey:CustomerID" json:"reviews,omitempty"`
	Appointments   []Appointment `gorm:"foreignKey:CustomerID" json:"appointments,omitempty"`
	PaymentHistory []Payment     `gorm:"foreignKey:CustomerID" json:"paymentHistory,omitempty"`

	gorm.Model
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
