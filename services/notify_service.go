// services/notify_service.go
package services

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"crmadmin-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type NotifyService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewNotifyService(db *gorm.DB) *NotifyService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotifyService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// SendDirectChat delivers the customer's direct-chat message. WhatsApp is
// used when the WhatsApp number is in E.164 format, SMS otherwise. Every
// attempt is logged, failed ones included.
func (s *NotifyService) SendDirectChat(customer models.Customer) (models.MessageLog, error) {
	body := strings.TrimSpace(customer.DirectChatMessage)
	if body == "" {
		return models.MessageLog{}, errors.New("customer has no direct chat message")
	}

	channel := "sms"
	to := customer.PhoneNumber
	if strings.HasPrefix(customer.WhatsappNumber, "+") {
		to = "whatsapp:" + customer.WhatsappNumber
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(body)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, sendErr := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if sendErr != nil {
		log.Printf("Failed to send message to %s: %v", to, sendErr)
		status = "failed"
		errorMsg = sendErr.Error()
	} else if resp.Sid != nil {
		log.Printf("Message sent to %s, SID: %s", to, *resp.Sid)
	} else {
		log.Printf("Message sent to %s, but no SID returned", to)
	}

	entry := models.MessageLog{
		CustomerID:   customer.ID,
		Body:         body,
		Channel:      channel,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log message for customer %s: %v", customer.ID, err)
	}

	return entry, sendErr
}
