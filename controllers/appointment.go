package controllers

import (
	"net/http"
	"time"

	"crmadmin-backend/config"
	"crmadmin-backend/models"
	"crmadmin-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateAppointmentInput defines the expected JSON structure for recording
// an appointment
type CreateAppointmentInput struct {
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Duration  int        `json:"duration" binding:"min=0"`
	Services  string     `json:"services"`
	Source    string     `json:"source"`
	Notes     string     `json:"notes"`
}

// AppointmentView decorates an appointment with the display strings the
// detail tab renders. Malformed or absent times degrade to the formatter
// sentinels instead of failing the request.
type AppointmentView struct {
	models.Appointment
	DateDisplay    string `json:"dateDisplay"`
	TimeRange      string `json:"timeRange"`
	CreatedDisplay string `json:"createdDisplay"`
}

// GetCustomerAppointments returns the customer's appointments with display
// strings precomputed for the panel
func GetCustomerAppointments(c *gin.Context) {
	customer, ok := fetchCustomer(c)
	if !ok {
		return
	}

	var appointments []models.Appointment
	if err := config.DB.Where("customer_id = ?", customer.ID).
		Order("start_time DESC").Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	views := make([]AppointmentView, 0, len(appointments))
	for _, appointment := range appointments {
		created := appointment.CreatedAt
		views = append(views, AppointmentView{
			Appointment:    appointment,
			DateDisplay:    utils.FormatDate(appointment.StartTime),
			TimeRange:      utils.FormatDateRange(appointment.StartTime, appointment.EndTime),
			CreatedDisplay: utils.FormatDateTime(&created, true),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"appointments": views,
		"count":        len(views),
	})
}

// CreateAppointment records an appointment for the customer
func CreateAppointment(c *gin.Context) {
	customer, ok := fetchCustomer(c)
	if !ok {
		return
	}

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Derive duration from the time range when not submitted
	duration := input.Duration
	if duration == 0 && input.StartTime != nil && input.EndTime != nil {
		duration = int(input.EndTime.Sub(*input.StartTime).Minutes())
		if duration < 0 {
			duration = 0
		}
	}

	appointment := models.Appointment{
		ID:         uuid.New(),
		CustomerID: customer.ID,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Duration:   duration,
		Services:   input.Services,
		Source:     input.Source,
		Notes:      input.Notes,
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, appointment)
}
