package controllers

import (
	"net/http"

	"crmadmin-backend/config"
	"crmadmin-backend/models"
	"crmadmin-backend/services"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview returns the panel's landing figures: customer counts
// by status, recorded revenue, and the review picture across the whole book.
func GetDashboardOverview(c *gin.Context) {
	var totalCustomers int64
	config.DB.Model(&models.Customer{}).Where("deleted_at IS NULL").Count(&totalCustomers)

	var activeCustomers int64
	config.DB.Model(&models.Customer{}).
		Where("status = ? AND deleted_at IS NULL", models.CustomerStatusActive).
		Count(&activeCustomers)

	var pendingCustomers int64
	config.DB.Model(&models.Customer{}).
		Where("status = ? AND deleted_at IS NULL", models.CustomerStatusPending).
		Count(&pendingCustomers)

	var totalRevenue float64
	config.DB.Model(&models.Payment{}).
		Where("status = ? AND deleted_at IS NULL", models.PaymentStatusSuccess).
		Select("COALESCE(SUM(total), 0)").Scan(&totalRevenue)

	var totalAppointments int64
	config.DB.Model(&models.Appointment{}).Where("deleted_at IS NULL").Count(&totalAppointments)

	var reviews []models.Review
	config.DB.Find(&reviews)
	stats := services.ComputeReviewStats(reviews)

	c.JSON(http.StatusOK, gin.H{
		"totalCustomers":    totalCustomers,
		"activeCustomers":   activeCustomers,
		"pendingCustomers":  pendingCustomers,
		"totalRevenue":      totalRevenue,
		"totalAppointments": totalAppointments,
		"reviewStats":       stats,
		"averageStars":      services.Stars(stats.Average),
	})
}
