package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/iamgoncalo/ecoplanta2/pkg/config"
	"github.com/iamgoncalo/ecoplanta2/pkg/handlers"
	"github.com/iamgoncalo/ecoplanta2/pkg/middleware"
	"github.com/iamgoncalo/ecoplanta2/pkg/repositories"
	"github.com/iamgoncalo/ecoplanta2/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("addr", cfg.Addr()),
		zap.Int64("seed", cfg.Seed),
	)

	// Generate the dataset up front: a build-invariant violation must stop
	// the process, not surface as 500s later.
	datasets := services.NewDatasetService(cfg.Seed)
	ds, err := datasets.Dataset()
	if err != nil {
		logger.Fatal("Dataset generation failed", zap.Error(err))
	}
	logger.Info("Dataset generated",
		zap.Int64("seed", datasets.Seed()),
		zap.Int("leads", len(ds.Leads)),
		zap.Int("materials", len(ds.Materials)),
		zap.Int("partners", len(ds.Partners)),
		zap.Int("work_orders", len(ds.WorkOrders)),
	)

	leadRepo := repositories.NewLeadRepository(datasets)
	workOrderRepo := repositories.NewWorkOrderRepository(datasets)
	deliveryRepo := repositories.NewDeliveryRepository(datasets)

	mux := http.NewServeMux()

	// Register handlers
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewMaterialsHandler(datasets, logger).RegisterRoutes(mux)
	handlers.NewSalesHandler(datasets, leadRepo, logger).RegisterRoutes(mux)
	handlers.NewFactoryHandler(datasets, workOrderRepo, logger).RegisterRoutes(mux)
	handlers.NewDeployHandler(datasets, deliveryRepo, logger).RegisterRoutes(mux)
	handlers.NewPartnersHandler(datasets, logger).RegisterRoutes(mux)
	handlers.NewIntelligenceHandler(datasets, logger).RegisterRoutes(mux)
	handlers.NewFabricHandler(datasets, logger).RegisterRoutes(mux)

	handler := middleware.RequestLogger(logger)(mux)

	logger.Info("Starting ecoplanta2", zap.String("addr", cfg.Addr()), zap.String("version", cfg.Version))
	if err := http.ListenAndServe(cfg.Addr(), handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
