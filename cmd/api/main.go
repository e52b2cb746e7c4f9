package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"aid-gap-analyzer/internal/config"
	dashboardHttp "aid-gap-analyzer/internal/dashboard/adapters/http/fiber"
	dashboardRepoMem "aid-gap-analyzer/internal/dashboard/adapters/memory"
	dashboardUsecase "aid-gap-analyzer/internal/dashboard/core/usecase"
	"aid-gap-analyzer/internal/telemetry"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "aid-gap-analyzer/docs"
)

// @title Aid Gap Analyzer API
// @version 1.0
// @description Session-scoped aggregation over synthetic aid delivery data.
// @BasePath /
func main() {
	// Config
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Session store
	sessionRepository := dashboardRepoMem.NewSessionRepository(cfg.Sessions.Capacity, cfg.Sessions.TTL)

	// Telemetry
	collector := telemetry.New(prometheus.DefaultRegisterer, sessionRepository.Len)

	// Usecases
	settings := cfg.DatasetSettings()
	handler := dashboardHttp.NewDashboardHandler(dashboardHttp.UseCases{
		Open:   dashboardUsecase.NewOpenSessionUseCase(sessionRepository, settings, collector),
		Get:    dashboardUsecase.NewGetDashboardUseCase(sessionRepository),
		Change: dashboardUsecase.NewChangeSelectionUseCase(sessionRepository, settings.RecentLimit, collector),
		Rank:   dashboardUsecase.NewRankOrganizationsUseCase(sessionRepository),
		List:   dashboardUsecase.NewListRecordsUseCase(sessionRepository, settings.RecentLimit),
		Close:  dashboardUsecase.NewCloseSessionUseCase(sessionRepository),
	})

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{AppName: "aid-gap-analyzer"})
	app.Use(recover.New())
	app.Use(requestid.New())
	if cfg.Server.RequestLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		}))
	}

	dashboardHttp.RegisterRoutes(app, handler)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Server.Addr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s (seed=%d, records=%d)", cfg.Server.Addr, settings.Seed, settings.RecordCount)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
