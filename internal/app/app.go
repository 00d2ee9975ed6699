package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/EventCheckIn/internal/config"
	"github.com/stpnv0/EventCheckIn/internal/handler"
	"github.com/stpnv0/EventCheckIn/internal/middleware"
	"github.com/stpnv0/EventCheckIn/internal/notification"
	"github.com/stpnv0/EventCheckIn/internal/repository"
	"github.com/stpnv0/EventCheckIn/internal/router"
	"github.com/stpnv0/EventCheckIn/internal/scheduler"
	"github.com/stpnv0/EventCheckIn/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	delivery   *service.DeliveryService
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventCheckIn",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	a.cfg.Postgres.ConfigurePool(db.Master)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	rsvpRepo := repository.NewRSVPRepo(a.db)
	checkInEventRepo := repository.NewCheckInEventRepo(a.db)
	attendeeRepo := repository.NewAttendeeRepo(a.db)
	scanLogRepo := repository.NewScanLogRepo(a.db)

	alerter, err := notification.NewTelegramAlerter(a.cfg.Telegram.BotToken, a.cfg.Telegram.OpsChatID, a.log)
	if err != nil {
		return fmt.Errorf("init alerter: %w", err)
	}
	mailer := notification.NewSMTPTransport(notification.SMTPConfig{
		Host:     a.cfg.SMTP.Host,
		Port:     a.cfg.SMTP.Port,
		Username: a.cfg.SMTP.Username,
		Password: a.cfg.SMTP.Password,
		From:     a.cfg.SMTP.From,
		FromName: a.cfg.SMTP.FromName,
	}, a.log)

	issuer := service.NewIssuerService(rsvpRepo, attendeeRepo, rsvpRepo, a.log)
	a.delivery = service.NewDeliveryService(
		issuer,
		rsvpRepo,
		attendeeRepo,
		checkInEventRepo,
		attendeeRepo,
		mailer,
		alerter,
		service.DeliveryConfig{
			Policy:    a.cfg.Delivery.Policy(),
			Workers:   a.cfg.Delivery.Workers,
			BatchSize: a.cfg.Delivery.BatchSize,
		},
		a.log,
	)

	eventService := service.NewEventService(eventRepo)
	userService := service.NewUserService(userRepo)
	rsvpService := service.NewRSVPService(rsvpRepo, eventRepo, userRepo, a.delivery, a.log)
	registryService := service.NewRegistryService(
		checkInEventRepo, attendeeRepo, eventRepo, rsvpRepo, a.delivery, alerter, a.log,
	)
	checkInService := service.NewCheckInService(
		rsvpRepo,
		attendeeRepo,
		scanLogRepo,
		service.ExpiryPolicy{
			RSVPGrace:        a.cfg.CheckIn.RSVPGrace,
			StandaloneExpiry: a.cfg.CheckIn.StandaloneExpiry,
			StandaloneGrace:  a.cfg.CheckIn.StandaloneGrace,
		},
		a.log,
	)

	a.scheduler = scheduler.New(
		a.delivery,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(eventService, rsvpService, userService, registryService, a.delivery, checkInService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.delivery.Wait()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "pending deliveries finished")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
