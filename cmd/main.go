package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-BookingWizard/internal/api"
	"github.com/m04kA/SMC-BookingWizard/internal/catalog"
	"github.com/m04kA/SMC-BookingWizard/internal/config"
	"github.com/m04kA/SMC-BookingWizard/internal/infra/storage/submission"
	"github.com/m04kA/SMC-BookingWizard/internal/integrations/logsink"
	"github.com/m04kA/SMC-BookingWizard/internal/integrations/sendgrid"
	"github.com/m04kA/SMC-BookingWizard/internal/integrations/webhook"
	"github.com/m04kA/SMC-BookingWizard/internal/service/sessions"
	"github.com/m04kA/SMC-BookingWizard/internal/wizard"
	"github.com/m04kA/SMC-BookingWizard/pkg/logger"
	"github.com/m04kA/SMC-BookingWizard/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-BookingWizard...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		routerMetrics    api.Metrics
		sessionMetrics   sessions.Metrics
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		routerMetrics = metricsCollector
		sessionMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог слотов
	slots, err := catalog.New(cfg.Catalog.TimeSlots())
	if err != nil {
		log.Fatal("Invalid slot catalog: %v", err)
	}

	// Шлюз отправки бронирований
	gateway, closeGateway, err := newGateway(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize %s gateway: %v", cfg.Gateway.Kind, err)
	}
	defer closeGateway()
	log.Info("Submission gateway: %s (timeout=%ds)", cfg.Gateway.Kind, cfg.Gateway.Timeout)

	// "Сегодня" считается в часовом поясе заведения
	loc, err := cfg.Wizard.Location()
	if err != nil {
		log.Fatal("Invalid timezone: %v", err)
	}

	// Сервис сессий
	sessionService := sessions.NewService(
		sessions.Dependencies{
			Catalog:      slots,
			Gateway:      gateway,
			TimeProvider: &wizard.ZonedTimeProvider{Location: loc},
			Metrics:      sessionMetrics,
			Logger:       log,
		},
		cfg.Wizard.SessionTTL(),
		time.Duration(cfg.Gateway.Timeout)*time.Second,
	)

	sweeper, err := sessionService.StartSweeper(cfg.Wizard.SweepSchedule)
	if err != nil {
		log.Fatal("Failed to start session sweeper: %v", err)
	}

	// Настраиваем роутер
	router := api.NewRouter(sessionService, routerMetrics, api.Config{
		MetricsPath:     cfg.Metrics.Path,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		SubmitPerSecond: cfg.RateLimit.SubmitPerSecond,
		SubmitBurst:     cfg.RateLimit.SubmitBurst,
	}, log)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем очистку сессий и дожидаемся текущего прохода
	<-sweeper.Stop().Done()
	log.Info("Session sweeper stopped")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully (active sessions dropped: %d)", sessionService.Count())
}

// newGateway создает шлюз по gateway.kind. Возвращаемая функция освобождает ресурсы шлюза.
func newGateway(cfg *config.Config, log *logger.Logger) (wizard.SubmissionGateway, func(), error) {
	noop := func() {}
	timeout := time.Duration(cfg.Gateway.Timeout) * time.Second

	switch cfg.Gateway.Kind {
	case config.GatewayWebhook:
		return webhook.NewClient(cfg.Webhook.URL, cfg.Webhook.Secret, timeout, log), noop, nil

	case config.GatewaySendGrid:
		return sendgrid.NewGateway(cfg.SendGrid.APIKey, sendgrid.Config{
			FromEmail:   cfg.SendGrid.FromEmail,
			FromName:    cfg.SendGrid.FromName,
			NotifyEmail: cfg.SendGrid.NotifyEmail,
		}, log), noop, nil

	case config.GatewayPostgres:
		// Подключаемся к базе данных
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, noop, fmt.Errorf("open database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("ping database: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		return submission.NewRepository(db), func() { db.Close() }, nil

	default:
		return logsink.NewGateway(log), noop, nil
	}
}
