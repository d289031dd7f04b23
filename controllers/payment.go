package controllers

import (
	"net/http"
	"time"

	"crmadmin-backend/config"
	"crmadmin-backend/models"
	"crmadmin-backend/services"
	"crmadmin-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreatePaymentInput defines the expected JSON structure for recording a payment
type CreatePaymentInput struct {
	Total                float64    `json:"total" binding:"min=0"`
	TotalWithoutVAT      float64    `json:"totalWithoutVAT" binding:"min=0"`
	TotalVAT             float64    `json:"totalVAT" binding:"min=0"`
	Status               string     `json:"status" binding:"oneof=success pending failed"`
	RevenuePaymentStatus *string    `json:"revenuePaymentStatus"`
	PaymentDate          *time.Time `json:"paymentDate"`
	BusinessID           uuid.UUID  `json:"businessId"`
}

// PaymentView decorates a payment with its display date
type PaymentView struct {
	models.Payment
	DateDisplay string `json:"dateDisplay"`
}

// GetCustomerPayments returns the payment history tab: the list, the sum of
// its totals, and the customer's cached TotalSpent so the panel can show
// either figure.
func GetCustomerPayments(c *gin.Context) {
	customer, ok := fetchCustomer(c)
	if !ok {
		return
	}

	var payments []models.Payment
	if err := config.DB.Where("customer_id = ?", customer.ID).
		Order("payment_date DESC").Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	views := make([]PaymentView, 0, len(payments))
	var lastPaymentDate *time.Time
	for _, payment := range payments {
		views = append(views, PaymentView{
			Payment:     payment,
			DateDisplay: utils.FormatDate(payment.PaymentDate),
		})
		if payment.PaymentDate != nil &&
			(lastPaymentDate == nil || payment.PaymentDate.After(*lastPaymentDate)) {
			lastPaymentDate = payment.PaymentDate
		}
	}

	response := gin.H{
		"payments":            views,
		"paymentHistoryTotal": services.PaymentHistoryTotal(payments),
		"totalSpent":          customer.TotalSpent,
		"lastPayment":         customer.LastPayment,
	}
	if lastPaymentDate != nil {
		response["daysSinceLastPayment"] = utils.DaysBetween(*lastPaymentDate, time.Now())
	}

	c.JSON(http.StatusOK, response)
}

// CreatePayment records a payment and updates the customer's cached totals
// in the same transaction
func CreatePayment(c *gin.Context) {
	customer, ok := fetchCustomer(c)
	if !ok {
		return
	}

	var input CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	paymentDate := time.Now()
	if input.PaymentDate != nil {
		paymentDate = *input.PaymentDate
	}

	payment := models.Payment{
		ID:                   uuid.New(),
		CustomerID:           customer.ID,
		BusinessID:           input.BusinessID,
		Total:                input.Total,
		TotalWithoutVAT:      input.TotalWithoutVAT,
		TotalVAT:             input.TotalVAT,
		Status:               input.Status,
		RevenuePaymentStatus: input.RevenuePaymentStatus,
		PaymentDate:          &paymentDate,
	}
	payment.Reference = "PAY-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6)

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create payment")
		return
	}

	// Keep the cached customer totals in step with the payment rows
	if err := tx.Model(&models.Customer{}).Where("id = ?", customer.ID).
		Updates(map[string]interface{}{
			"total_spent":  gorm.Expr("total_spent + ?", input.Total),
			"last_payment": input.Total,
		}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer totals")
		return
	}

	tx.Commit()

	c.JSON(http.StatusCreated, payment)
}
