package notify

import "context"

// Notifier delivers one alert message to one recipient over a single
// channel (SMS, Telegram, ...). Alerts fan out across all configured
// notifiers; a channel failure never blocks the others.
type Notifier interface {
	Name() string
	Send(ctx context.Context, recipient, message string) error
}
