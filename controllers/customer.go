package controllers

import (
	"errors"
	"net/http"

	"crmadmin-backend/config"
	"crmadmin-backend/models"
	"crmadmin-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerFormInput is the full edit-form payload. Every field is submitted
// on create and update alike; the rule table decides what is acceptable.
type CustomerFormInput struct {
	Email             string   `json:"email"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	PhoneNumber       string   `json:"phoneNumber"`
	WhatsappNumber    string   `json:"whatsappNumber"`
	BusinessName      string   `json:"businessName"`
	BusinessType      string   `json:"businessType"`
	Address           string   `json:"address"`
	DirectChatMessage string   `json:"directChatMessage"`
	Notes             string   `json:"notes"`
	Rating            *float64 `json:"rating"`
	LastPayment       *float64 `json:"lastPayment"`
	Status            string   `json:"status" binding:"omitempty,oneof=active inactive pending"`
}

func validateCustomerInput(input CustomerFormInput) map[string]string {
	return utils.ValidateCustomerForm(
		map[string]string{
			"email":             input.Email,
			"firstName":         input.FirstName,
			"lastName":          input.LastName,
			"phoneNumber":       input.PhoneNumber,
			"whatsappNumber":    input.WhatsappNumber,
			"businessName":      input.BusinessName,
			"businessType":      input.BusinessType,
			"address":           input.Address,
			"directChatMessage": input.DirectChatMessage,
			"notes":             input.Notes,
		},
		map[string]*float64{
			"rating":      input.Rating,
			"lastPayment": input.LastPayment,
		},
	)
}

func applyCustomerInput(customer *models.Customer, input CustomerFormInput) {
	customer.Email = input.Email
	customer.FirstName = input.FirstName
	customer.LastName = input.LastName
	customer.PhoneNumber = input.PhoneNumber
	customer.WhatsappNumber = input.WhatsappNumber
	customer.BusinessName = input.BusinessName
	customer.BusinessType = input.BusinessType
	customer.Address = input.Address
	customer.DirectChatMessage = input.DirectChatMessage
	customer.Notes = input.Notes
	if input.Rating != nil {
		customer.Rating = *input.Rating
	}
	if input.LastPayment != nil {
		customer.LastPayment = *input.LastPayment
	}
	if input.Status != "" {
		customer.Status = input.Status
	}
}

// CreateCustomer creates a new customer record
func CreateCustomer(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CustomerFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Run the full rule table; nothing is persisted while any field fails
	if fieldErrors := validateCustomerInput(input); len(fieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrors})
		return
	}

	// Check if phone already exists
	var existingCustomer models.Customer
	if err := config.DB.Where("phone_number = ?", input.PhoneNumber).
		First(&existingCustomer).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Customer with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	customer := models.Customer{
		ID:              uuid.New(),
		CreatedByUserID: uuid.Must(uuid.Parse(userID.(string))),
		Status:          models.CustomerStatusPending,
	}
	applyCustomerInput(&customer, input)

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customers, optionally filtered by status
func GetCustomers(c *gin.Context) {
	query := config.DB
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var customers []models.Customer
	if err := query.Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a customer with its nested collections for the
// detail view
func GetCustomer(c *gin.Context) {
	customerID := c.Param("id")
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var customer models.Customer
	if err := config.DB.
		Preload("Reviews").
		Preload("Appointments").
		Preload("PaymentHistory").
		Where("id = ?", customerUUID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer replaces a customer's form fields with the submitted
// payload. The update is refused while any field fails its rule.
func UpdateCustomer(c *gin.Context) {
	customerID := c.Param("id")
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input CustomerFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if fieldErrors := validateCustomerInput(input); len(fieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrors})
		return
	}

	var customer models.Customer
	if err := config.DB.Where("id = ?", customerUUID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Check if phone is being changed to another existing customer
	if customer.PhoneNumber != input.PhoneNumber {
		var existingCustomer models.Customer
		if err := config.DB.Where("phone_number = ?", input.PhoneNumber).
			First(&existingCustomer).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Another customer with this phone number already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	applyCustomerInput(&customer, input)

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer soft deletes a customer
func DeleteCustomer(c *gin.Context) {
	customerID := c.Param("id")
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	result := config.DB.Where("id = ?", customerUUID).Delete(&models.Customer{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// fetchCustomer is shared by the nested-collection controllers
func fetchCustomer(c *gin.Context) (models.Customer, bool) {
	var customer models.Customer

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return customer, false
	}

	if err := config.DB.Where("id = ?", customerUUID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return customer, false
	}

	return customer, true
}
