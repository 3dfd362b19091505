package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/clinicemr/clinic/internal/api"
	"github.com/clinicemr/clinic/internal/repository"
	"github.com/clinicemr/clinic/internal/service"
	"github.com/clinicemr/clinic/pkg/broker"
	"github.com/clinicemr/clinic/pkg/config"
	"github.com/clinicemr/clinic/pkg/job"
	"github.com/clinicemr/clinic/pkg/logger"
	"github.com/clinicemr/clinic/pkg/postgres"
	"github.com/clinicemr/clinic/pkg/security"
)

const (
	ReadTimeout     = 3 * time.Second
	WriteTimeout    = 5 * time.Second
	ShutdownTimeout = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(pool)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.NotificationTopic)
	defer producer.Close()

	s := service.New(repo, producer)

	publicKey, err := security.ParsePublicKeyBase64(cfg.Auth.JWTPublicKey)
	panicOnErr("parse jwt public key", err)

	authService := service.NewAuth(publicKey)

	jobs := job.NewService().
		TryRegisterJob(cfg.Jobs.OverdueEnabled, "reconcile overdue invoices", cfg.Jobs.OverdueInterval, s.ReconcileOverdue)
	jobs.Start(ctx)

	handler := api.NewHandler(s, cfg.PublicBaseURL)
	mw := api.NewMiddleware(authService)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer shutdownCancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
		jobs.Stop()
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
