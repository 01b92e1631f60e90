package notify

import (
	"context"
	"fmt"

	"lockers/internal/core/ports"
	"lockers/internal/pkg/errs"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// MessageCreator is the part of the Twilio REST API the SMS notifier uses.
type MessageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// SMS sends the access code as a text message through Twilio.
type SMS struct {
	api  MessageCreator
	from string
}

// NewTwilioSMS builds an SMS notifier from account credentials.
func NewTwilioSMS(accountSID, authToken, from string) (*SMS, error) {
	if accountSID == "" || authToken == "" {
		return nil, errs.NewValueIsRequiredError("twilio credentials")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return NewSMS(client.Api, from)
}

func NewSMS(api MessageCreator, from string) (*SMS, error) {
	if api == nil {
		return nil, errs.NewValueIsRequiredError("twilio api")
	}
	if from == "" {
		return nil, errs.NewValueIsRequiredError("sms sender number")
	}
	return &SMS{api: api, from: from}, nil
}

// NotifyAccessCode skips customers without a phone number.
func (s *SMS) NotifyAccessCode(ctx context.Context, notice ports.AccessCodeNotice) error {
	if notice.Phone == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(notice.Phone)
	params.SetFrom(s.from)
	params.SetBody(textBody(notice))

	if _, err := s.api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send to %s: %w", notice.Phone, err)
	}
	return nil
}
