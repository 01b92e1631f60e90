package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lockers/cmd"
	_ "lockers/docs"
	"lockers/internal/adapters/out/events"
	"lockers/internal/adapters/out/notify"
	"lockers/internal/adapters/out/payments"
	"lockers/internal/adapters/out/postgres"
	"lockers/internal/core/ports"
	"lockers/internal/pkg/metrics"
	"lockers/internal/pkg/obs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const (
	version         = "1.0.0"
	shutdownTimeout = 15 * time.Second
)

type publisher interface {
	ports.EventPublisher
	Close() error
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := obs.InitTracer(ctx, configs.ServiceName, version, configs.OTLPEndpoint)
	if err != nil {
		log.Fatalf("Error initializing tracer: %v", err)
	}

	gormDB, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	m := metrics.New()

	notifier := notify.NewAsync(
		buildNotifier(ctx, configs, logger),
		configs.NotifyWorkers,
		configs.NotifyQueueSize,
		m.DeliveryFailures.WithLabelValues("notify"),
		logger,
	)

	eventPublisher, err := buildPublisher(configs)
	if err != nil {
		log.Fatalf("Error connecting to event broker: %v", err)
	}

	gateway, err := buildGateway(configs)
	if err != nil {
		log.Fatalf("Error configuring payment gateway: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, cmd.Dependencies{
		Notifier: notifier,
		Events:   eventPublisher,
		Gateway:  gateway,
		Metrics:  m,
		Logger:   logger,
	})
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	if configs.BootstrapAdminEnabled() {
		_, err := app.CreateBootstrapAdmin().Run(ctx,
			configs.BootstrapAdminName,
			configs.BootstrapAdminEmail,
			configs.BootstrapAdminPhone,
			configs.BootstrapAdminPassword,
		)
		if err != nil {
			log.Fatalf("Error creating bootstrap admin: %v", err)
		}
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	app.CreateServer().Register(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
	jobManager.StopAll()
	if err := notifier.Close(shutdownCtx); err != nil {
		logger.Error("Notification queue not drained", "error", err)
	}
	if err := eventPublisher.Close(); err != nil {
		logger.Error("Event publisher close failed", "error", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("Tracer shutdown failed", "error", err)
	}
}

// buildNotifier fans out to every configured channel and falls back to logging.
func buildNotifier(ctx context.Context, configs cmd.Config, logger *slog.Logger) ports.Notifier {
	var channels notify.Fanout

	if configs.TwilioAccountSID != "" {
		sms, err := notify.NewTwilioSMS(configs.TwilioAccountSID, configs.TwilioAuthToken, configs.TwilioFromNumber)
		if err != nil {
			log.Fatalf("Error configuring Twilio: %v", err)
		}
		channels = append(channels, sms)
	}

	if configs.SESSender != "" {
		client, err := notify.NewSESClient(ctx, configs.AWSRegion, configs.AWSAccessKeyID, configs.AWSSecretAccessKey)
		if err != nil {
			log.Fatalf("Error configuring SES: %v", err)
		}
		email, err := notify.NewEmail(client, configs.SESSender)
		if err != nil {
			log.Fatalf("Error configuring SES: %v", err)
		}
		channels = append(channels, email)
	}

	if len(channels) == 0 {
		return notify.NewLog(logger)
	}
	return channels
}

func buildPublisher(configs cmd.Config) (publisher, error) {
	switch configs.EventBroker {
	case "rabbitmq":
		return events.DialRabbit(configs.RabbitURL, configs.RabbitExchange)
	case "kafka":
		writer, err := events.NewKafkaWriter(configs.KafkaBrokers, configs.KafkaTopic)
		if err != nil {
			return nil, err
		}
		return events.NewKafka(writer)
	default:
		return events.Noop{}, nil
	}
}

// buildGateway returns nil without a secret key; captures then fail as Unavailable.
func buildGateway(configs cmd.Config) (ports.PaymentGateway, error) {
	if configs.OmiseSecretKey == "" {
		return nil, nil
	}

	charger, err := payments.NewOmiseCharger(configs.OmisePublicKey, configs.OmiseSecretKey)
	if err != nil {
		return nil, err
	}
	return payments.NewGateway(charger)
}
