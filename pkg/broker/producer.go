package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/clinicemr/clinic/internal/entity"
	"github.com/clinicemr/clinic/pkg/logger"
)

type Producer struct {
	l                  *slog.Logger
	w                  *kafka.Writer
	notificationsTopic string
}

func NewProducer(brokers []string, topic string) *Producer {
	l := slog.Default().WithGroup("kafka").With("topic", topic)
	infoLogger, errorLogger := kafkaLoggers(l)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 infoLogger,
		ErrorLogger:            errorLogger,
		AllowAutoTopicCreation: true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				l.Warn("notification delivery failed", "messages", len(messages), "error", err)
			}
		},
	}

	return &Producer{
		l:                  l,
		w:                  w,
		notificationsTopic: topic,
	}
}

// NotificationEvent is the message consumed by the notifier process.
type NotificationEvent struct {
	Type        string   `json:"type"`
	Subject     string   `json:"subject"`
	Message     string   `json:"message"`
	Recipients  []string `json:"recipients"`
	ContentType string   `json:"contentType,omitempty"`
}

const requestIDHeader = "X-Request-Id"

func newNotificationMessage(ctx context.Context, topic string, n entity.Notification) (kafka.Message, error) {
	b, err := json.Marshal(NotificationEvent{
		Type:        "email",
		Subject:     n.Subject,
		Message:     n.Message,
		Recipients:  n.Recipients,
		ContentType: "text/plain",
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(n.Key),
		Value: b,
		Topic: topic,
	}

	if requestID := logger.RequestIDFromCtx(ctx); requestID != "" {
		msg.Headers = append(msg.Headers, kafka.Header{Key: requestIDHeader, Value: []byte(requestID)})
	}

	return msg, nil
}

// SendNotification enqueues n without waiting for the broker acknowledgement.
func (p *Producer) SendNotification(ctx context.Context, n entity.Notification) error {
	msg, err := newNotificationMessage(ctx, p.notificationsTopic, n)
	if err != nil {
		return err
	}

	err = p.w.WriteMessages(ctx, msg)
	if err != nil {
		return fmt.Errorf("write kafka message: %w", err)
	}

	return nil
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error("close kafka writer", "error", err)
	}
}
