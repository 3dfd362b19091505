package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/clinicemr/clinic/pkg/broker"
)

var (
	ErrUnknownMessageType = errors.New("unknown message type")
	ErrNoRecipients       = errors.New("no recipients")
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=notifier.go -destination=../mocks/notifier.go -package=mocks

type Mailer interface {
	Send(subject, body string, recipients []string, contentType string) error
}

type EventHandler struct {
	mailer Mailer
}

func NewEventHandler(mailer Mailer) *EventHandler {
	return &EventHandler{mailer: mailer}
}

// SendNotification delivers a notification event published by the API process.
func (h *EventHandler) SendNotification(ctx context.Context, msg kafka.Message) error {
	var event broker.NotificationEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.Type != "email" {
		return fmt.Errorf("%w: %q", ErrUnknownMessageType, event.Type)
	}

	if len(event.Recipients) == 0 {
		return fmt.Errorf("%w: key %s", ErrNoRecipients, msg.Key)
	}

	err = h.mailer.Send(event.Subject, event.Message, event.Recipients, event.ContentType)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	slog.InfoContext(ctx, "notification sent", "key", string(msg.Key), "recipients", len(event.Recipients))

	return nil
}
