// services/reconcile_service.go
package services

import (
	"log"

	"crmadmin-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ReconcileService keeps each customer's cached TotalSpent consistent with
// the payment rows, which are the source of truth.
type ReconcileService struct {
	db *gorm.DB
}

func NewReconcileService(db *gorm.DB) *ReconcileService {
	return &ReconcileService{db: db}
}

func (s *ReconcileService) StartScheduler() {
	c := cron.New()

	// Run every night at 3 AM
	c.AddFunc("0 3 * * *", s.ReconcileTotals)

	c.Start()
	log.Println("Reconcile scheduler started")
}

// ReconcileTotals recomputes TotalSpent for every active customer from its
// payment history and repairs any drift.
func (s *ReconcileService) ReconcileTotals() {
	log.Println("Starting total-spent reconciliation...")

	var customers []models.Customer
	if err := s.db.Preload("PaymentHistory").
		Find(&customers, "status = ?", models.CustomerStatusActive).Error; err != nil {
		log.Printf("Failed to fetch customers: %v", err)
		return
	}

	repaired := 0
	for _, customer := range customers {
		total := PaymentHistoryTotal(customer.PaymentHistory)
		if total == customer.TotalSpent {
			continue
		}
		if err := s.db.Model(&models.Customer{}).Where("id = ?", customer.ID).
			Update("total_spent", total).Error; err != nil {
			log.Printf("Customer %s: failed to repair total spent: %v", customer.ID, err)
			continue
		}
		log.Printf("Customer %s: total spent %.2f -> %.2f", customer.ID, customer.TotalSpent, total)
		repaired++
	}

	log.Printf("Total-spent reconciliation completed, %d customers repaired", repaired)
}
