package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/support-portal/internal/api/http"
	"github.com/spec-kit/support-portal/internal/api/http/handlers"
	"github.com/spec-kit/support-portal/internal/audit"
	"github.com/spec-kit/support-portal/internal/config"
	"github.com/spec-kit/support-portal/internal/domain"
	"github.com/spec-kit/support-portal/internal/events"
	"github.com/spec-kit/support-portal/internal/hubspot"
	"github.com/spec-kit/support-portal/internal/observability"
	"github.com/spec-kit/support-portal/internal/persistence"
	"github.com/spec-kit/support-portal/internal/resolve"
	"github.com/spec-kit/support-portal/internal/service"
	"github.com/spec-kit/support-portal/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	auditStore, err := audit.NewStore(cfg.Audit.LogPath, logger)
	if err != nil {
		logger.Fatal("failed to open audit log", zap.Error(err))
	}
	defer auditStore.Close()

	ownerCache := persistence.NewOwnerNameCache(cfg.Redis, logger)
	defer ownerCache.Close()

	crm := hubspot.NewClient(cfg.HubSpot, logger)

	staticOwners := resolve.NewStaticResolver(cfg.Portal.OwnerDirectory)
	var owners resolve.OwnerResolver = staticOwners
	if cfg.Portal.OwnerResolution == config.OwnerResolutionLive {
		owners = resolve.NewLiveResolver(crm, ownerCache, staticOwners, logger)
	}

	dispatcher := events.NewInMemoryDispatcher()
	recorder := service.NewAuditRecorder(auditStore, dispatcher, logger)
	worker.StartAuditRecorder(recorder)

	gateway := service.NewTicketGateway(service.GatewayDependencies{
		Client:     crm,
		Dispatcher: dispatcher,
		Portal:     cfg.Portal,
		Logger:     logger,
	})
	statusService := service.NewStatusService(service.StatusDependencies{
		Client:     crm,
		Owners:     owners,
		Stages:     domain.DefaultStageMap(),
		Categories: domain.DefaultCategoryMap(),
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version),
		Tickets: handlers.NewTicketsHandler(gateway),
		Status:  handlers.NewStatusHandler(statusService),
		Audit:   handlers.NewAuditHandler(auditStore),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
