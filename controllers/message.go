package controllers

import (
	"net/http"

	"crmadmin-backend/config"
	"crmadmin-backend/services"
	"crmadmin-backend/utils"

	"github.com/gin-gonic/gin"
)

// SendDirectChat delivers the customer's stored direct-chat message over
// WhatsApp or SMS and returns the log entry
func SendDirectChat(c *gin.Context) {
	customer, ok := fetchCustomer(c)
	if !ok {
		return
	}

	if customer.DirectChatMessage == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Customer has no direct chat message to send")
		return
	}

	notify := services.NewNotifyService(config.DB)
	entry, err := notify.SendDirectChat(customer)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to send message",
			"log":   entry,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Message sent successfully",
		"log":     entry,
	})
}
