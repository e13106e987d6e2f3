package notifications

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/you/jobsvc/domain"
	"github.com/you/jobsvc/internal/logging"
)

// TwilioServiceImpl implements domain.NotificationService
type TwilioServiceImpl struct {
	client     *twilio.RestClient
	fromNumber string
	log        logging.Logger
}

// NewTwilioService creates a new Twilio notification service. Without a
// from-number messages are only logged.
func NewTwilioService(accountSID, authToken, fromNumber string, log logging.Logger) *TwilioServiceImpl {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioServiceImpl{
		client:     client,
		fromNumber: fromNumber,
		log:        log.With("component", "sms"),
	}
}

// SendSMS implements domain.NotificationService
func (t *TwilioServiceImpl) SendSMS(to, message string) error {
	if t.fromNumber == "" {
		t.log.Info(context.Background(), "sms delivery disabled, message dropped", "to", maskPhone(to), "length", len(message))
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.fromNumber)
	params.SetBody(message)

	_, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	return nil
}

// maskPhone keeps the last four digits of a phone number.
func maskPhone(number string) string {
	const keep = 4
	if len(number) <= keep {
		return strings.Repeat("*", len(number))
	}
	return strings.Repeat("*", len(number)-keep) + number[len(number)-keep:]
}

var _ domain.NotificationService = (*TwilioServiceImpl)(nil)
