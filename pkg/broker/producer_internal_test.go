package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/clinicemr/clinic/internal/entity"
	"github.com/clinicemr/clinic/pkg/logger"
)

func TestNewNotificationMessage(t *testing.T) {
	t.Parallel()

	ctx := logger.WithRequestID(context.Background(), "req-1")

	msg, err := newNotificationMessage(ctx, "send-notifications", entity.Notification{
		Key:        "referral:42",
		Subject:    "New referral",
		Message:    "Jane Doe was referred to you",
		Recipients: []string{"house@example.com"},
	})
	require.NoError(t, err)
	require.Equal(t, "send-notifications", msg.Topic)
	require.Equal(t, []byte("referral:42"), msg.Key)
	require.Equal(t, "req-1", header(msg, requestIDHeader))

	var event NotificationEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	require.Equal(t, NotificationEvent{
		Type:        "email",
		Subject:     "New referral",
		Message:     "Jane Doe was referred to you",
		Recipients:  []string{"house@example.com"},
		ContentType: "text/plain",
	}, event)

	msg, err = newNotificationMessage(context.Background(), "send-notifications", entity.Notification{})
	require.NoError(t, err)
	require.Empty(t, msg.Headers)
}

func TestConsumer_Dispatch(t *testing.T) {
	t.Parallel()

	var got []string

	c := &Consumer{
		l:        slog.Default(),
		handlers: make(map[string]HandlerFunc),
	}

	c.Handle("send-notifications", func(ctx context.Context, m kafka.Message) error {
		got = append(got, string(m.Key)+"/"+logger.RequestIDFromCtx(ctx))
		return nil
	})

	ctx := context.Background()

	c.dispatch(ctx, kafka.Message{
		Topic:   "send-notifications",
		Key:     []byte("a"),
		Headers: []kafka.Header{{Key: requestIDHeader, Value: []byte("req-7")}},
	})
	c.dispatch(ctx, kafka.Message{Topic: "send-notifications", Key: []byte("b")})
	c.dispatch(ctx, kafka.Message{Topic: "unknown", Key: []byte("c")})

	require.Equal(t, []string{"a/req-7", "b/"}, got)
}
