package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/altamar/portal/internal"
	"github.com/altamar/portal/internal/auth"
	"github.com/altamar/portal/internal/events"
	"github.com/altamar/portal/internal/handler"
	"github.com/altamar/portal/internal/handler/admin"
	"github.com/altamar/portal/internal/handler/portal"
	"github.com/altamar/portal/internal/middleware"
	"github.com/altamar/portal/internal/router"
	"github.com/altamar/portal/internal/service"
	"github.com/altamar/portal/internal/store"
)

func run() error {
	ctx := context.Background()

	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// database/sql connection only for migrations
	logger.Info().Msg("connecting to database")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	logger.Info().Msg("running database migrations")
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	st := store.NewStore(pool)

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NATSURL != "" {
		natsPub, err := events.NewNATSPublisher(cfg.NATSURL, logger)
		if err != nil {
			return fmt.Errorf("failed to connect event publisher: %w", err)
		}
		defer natsPub.Close()
		publisher = natsPub
		logger.Info().Str("url", cfg.NATSURL).Msg("event publisher connected")
	}

	tokens := auth.NewTokenIssuer(cfg.SessionSecret, cfg.SessionTTL)

	announcementService := service.NewAnnouncementService(st, publisher, logger)
	invoiceService := service.NewInvoiceService(st, announcementService, publisher, logger)
	paymentService := service.NewPaymentService(st, announcementService, publisher, logger)
	accountService := service.NewAccountService(st, tokens, logger)
	alertService := service.NewAlertService(st)
	serverService := service.NewServerService(st)
	eulaService := service.NewEulaService(st, logger)

	e := router.New(router.Deps{
		Logger:  logger,
		Metrics: middleware.NewMetrics(cfg.MetricsNamespace),
		Tokens:  tokens,
		Auth:    handler.NewAuthHandler(accountService),
		Admin: admin.NewHandler(
			invoiceService,
			paymentService,
			announcementService,
			alertService,
			serverService,
			eulaService,
		),
		Portal: portal.NewHandler(invoiceService, paymentService, announcementService, accountService),
	})

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info().Str("addr", addr).Msg("server listening")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
