package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/spec-kit/support-desk/internal/cli"
	"github.com/spec-kit/support-desk/internal/config"
	"github.com/spec-kit/support-desk/internal/events"
	"github.com/spec-kit/support-desk/internal/notify"
	"github.com/spec-kit/support-desk/internal/observability"
	"github.com/spec-kit/support-desk/internal/repository"
	"github.com/spec-kit/support-desk/internal/service"
)

func main() {
	envFile := pflag.String("env-file", "", "load environment variables from this file before reading config")
	logLevel := pflag.String("log-level", "", "override LOG_LEVEL (debug, info, warn, error)")
	pflag.Parse()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			log.Fatalf("failed to load env file %s: %v", *envFile, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *logLevel != "" {
		cfg.Logger.Level = *logLevel
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", cfg.App.Version))

	customerRepo := repository.NewMemoryCustomerRepository()
	ticketRepo := repository.NewMemoryTicketRepository()

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	metrics.Register(dispatcher)

	broadcaster := notify.NewBroadcaster(logger)
	registerChannels(broadcaster, cfg.Notification, logger)

	customerService := service.NewCustomerService(service.CustomerDependencies{
		CustomerRepo: customerRepo,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:   ticketRepo,
		CustomerRepo: customerRepo,
		Broadcaster:  broadcaster,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})

	menu := cli.NewMenu(cli.Dependencies{
		CustomerService: customerService,
		TicketService:   ticketService,
		Metrics:         metrics,
		Out:             os.Stdout,
	})

	if err := menu.Run(context.Background()); err != nil {
		logger.Fatal("menu loop failed", zap.Error(err))
	}
	logger.Info("shutting down")
}

func registerChannels(broadcaster *notify.Broadcaster, cfg config.NotificationConfig, logger *zap.Logger) {
	for _, name := range cfg.Channels {
		switch name {
		case "console":
			broadcaster.AddChannel(notify.NewConsoleChannel(os.Stdout))
		case "email":
			broadcaster.AddChannel(notify.NewEmailChannel(os.Stdout))
		case "sms":
			broadcaster.AddChannel(notify.NewSMSChannel(os.Stdout))
		case "push":
			broadcaster.AddChannel(notify.NewPushChannel(os.Stdout))
		default:
			logger.Warn("unknown notification channel in config", zap.String("channel", name))
		}
	}
}
