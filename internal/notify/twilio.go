package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioNotifier sends alerts as SMS through Twilio.
type TwilioNotifier struct {
	client             *twilio.RestClient
	fromNumber         string
	defaultCountryCode string
}

func NewTwilioNotifier(accountSID, authToken, fromNumber, defaultCountryCode string) (*TwilioNotifier, error) {
	if accountSID == "" || authToken == "" || fromNumber == "" {
		return nil, fmt.Errorf("Twilio credentials are incomplete")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioNotifier{
		client:             client,
		fromNumber:         fromNumber,
		defaultCountryCode: defaultCountryCode,
	}, nil
}

func (n *TwilioNotifier) Name() string {
	return "twilio-sms"
}

func (n *TwilioNotifier) Send(ctx context.Context, recipient, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(n.normalize(recipient))
	params.SetFrom(n.fromNumber)
	params.SetBody(message)

	if _, err := n.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send failed: %w", err)
	}
	return nil
}

// normalize prefixes local numbers with the configured country code.
func (n *TwilioNotifier) normalize(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return n.defaultCountryCode + digits
}
