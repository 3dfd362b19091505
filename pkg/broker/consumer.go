package broker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/segmentio/kafka-go"

	"github.com/clinicemr/clinic/pkg/logger"
)

type HandlerFunc func(context.Context, kafka.Message) error

type Consumer struct {
	l        *slog.Logger
	r        *kafka.Reader
	wg       *sync.WaitGroup
	handlers map[string]HandlerFunc
}

func NewConsumer(brokers []string, groupID string, topics ...string) *Consumer {
	l := slog.Default().WithGroup("kafka").With("group_id", groupID)
	infoLogger, errorLogger := kafkaLoggers(l)

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		GroupTopics: topics,
		Logger:      infoLogger,
		ErrorLogger: errorLogger,
	})

	return &Consumer{
		l:        l,
		r:        r,
		wg:       &sync.WaitGroup{},
		handlers: make(map[string]HandlerFunc),
	}
}

func (c *Consumer) Handle(topic string, handler HandlerFunc) *Consumer {
	c.handlers[topic] = handler
	return c
}

// Consume reads messages until ctx is cancelled. Handler errors are logged and the offset is committed anyway.
func (c *Consumer) Consume(ctx context.Context) *Consumer {
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		for {
			m, err := c.r.ReadMessage(ctx)
			if err != nil {
				if errors.Is(err, io.EOF) || ctx.Err() != nil {
					c.l.InfoContext(ctx, "consumer stopped")
					return
				}

				c.l.ErrorContext(ctx, "read kafka message", "error", err)

				continue
			}

			c.dispatch(ctx, m)
		}
	}()

	return c
}

func (c *Consumer) dispatch(ctx context.Context, m kafka.Message) {
	handler, ok := c.handlers[m.Topic]
	if !ok {
		c.l.WarnContext(ctx, "kafka handler not found", "topic", m.Topic)
		return
	}

	if requestID := header(m, requestIDHeader); requestID != "" {
		ctx = logger.WithRequestID(ctx, requestID)
	}

	err := handler(ctx, m)
	if err != nil {
		c.l.ErrorContext(ctx, "handle kafka message", "error", err, "topic", m.Topic, "offset", m.Offset)
	}
}

func header(m kafka.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}

	return ""
}

func (c *Consumer) Close() {
	err := c.r.Close()
	if err != nil {
		c.l.Error("close kafka reader", "error", err)
	}

	c.wg.Wait()
}
