package controllers

import (
	"net/http"

	"crmadmin-backend/config"
	"crmadmin-backend/models"
	"crmadmin-backend/services"
	"crmadmin-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateReviewInput defines the expected JSON structure for recording a review
type CreateReviewInput struct {
	Rating     float64   `json:"rating" binding:"min=0,max=5"`
	Message    string    `json:"message"`
	Status     string    `json:"status" binding:"omitempty,oneof=sent received other"`
	ReviewerID uuid.UUID `json:"reviewerId"`
}

// GetCustomerReviews returns the customer's reviews with the aggregate
// panel the detail view renders: average/min/max over the rated set and the
// star breakdown of the average. Stats are recomputed from the full list on
// every request.
func GetCustomerReviews(c *gin.Context) {
	customer, ok := fetchCustomer(c)
	if !ok {
		return
	}

	var reviews []models.Review
	if err := config.DB.Where("customer_id = ?", customer.ID).
		Order("created_at DESC").Find(&reviews).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	stats := services.ComputeReviewStats(reviews)

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"stats":   stats,
		"stars":   services.Stars(stats.Average),
	})
}

// CreateReview records a review for the customer
func CreateReview(c *gin.Context) {
	customer, ok := fetchCustomer(c)
	if !ok {
		return
	}

	var input CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	status := input.Status
	if status == "" {
		status = models.ReviewStatusSent
	}

	review := models.Review{
		ID:         uuid.New(),
		CustomerID: customer.ID,
		ReviewerID: input.ReviewerID,
		Rating:     input.Rating,
		Message:    input.Message,
		Status:     status,
	}

	if err := config.DB.Create(&review).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create review")
		return
	}

	c.JSON(http.StatusCreated, review)
}
