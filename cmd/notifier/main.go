package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/clinicemr/clinic/internal/notifier"
	"github.com/clinicemr/clinic/pkg/broker"
	"github.com/clinicemr/clinic/pkg/config"
	"github.com/clinicemr/clinic/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.NewNotifier(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	mailer := notifier.NewClient(cfg.Mailer)
	eventHandler := notifier.NewEventHandler(mailer)

	consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.NotificationTopic).
		Handle(cfg.Kafka.NotificationTopic, eventHandler.SendNotification).
		Consume(ctx)

	slog.InfoContext(ctx, "notifier started", "topic", cfg.Kafka.NotificationTopic)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

	cancel()
	consumer.Close()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
