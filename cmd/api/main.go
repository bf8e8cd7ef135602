package main

import (
	"context"
	"log"
	"time"

	"ctenvios-tracker/internal/core/cache"
	"ctenvios-tracker/internal/core/config"
	"ctenvios-tracker/internal/core/logger"
	"ctenvios-tracker/internal/core/server"
	receivingadapter "ctenvios-tracker/internal/features/receiving/adapters"
	receivinghandler "ctenvios-tracker/internal/features/receiving/handler"
	receivingservice "ctenvios-tracker/internal/features/receiving/service"
	trackingadapter "ctenvios-tracker/internal/features/tracking/adapters"
	trackinghandler "ctenvios-tracker/internal/features/tracking/handler"
	trackingports "ctenvios-tracker/internal/features/tracking/ports"
	trackingservice "ctenvios-tracker/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title CTEnvios Tracker API
// @version 1.0
// @description Back-office tracking and receiving API: derives effective shipment statuses and warehouses from CTEnvios manifest histories and runs barcode receiving sessions.
// @contact.name API Support
// @contact.email support@ctenvios.com
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize the shipment provider, with a Redis read-through cache when
	// Redis is reachable. The cache only holds raw upstream payloads, so
	// running without it is safe, just slower.
	ctenviosAdapter := trackingadapter.NewCTEnviosAdapter(cfg.CTEnvios)
	var provider trackingports.ShipmentProvider = ctenviosAdapter

	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Invalid Redis configuration", zap.Error(err))
	}
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisCache.Ping(pingCtx); err != nil {
		l.Warn("Redis unreachable, continuing without tracking cache", zap.Error(err))
	} else {
		ttl := time.Duration(cfg.CTEnvios.TrackingCacheTTLSeconds) * time.Second
		provider = trackingadapter.NewCachedShipmentProvider(ctenviosAdapter, redisCache, ttl)
		l.Info("Tracking cache enabled", zap.Duration("ttl", ttl))
		defer redisCache.Close()
	}
	cancel()

	// Initialize Tracking Service & Handler
	trackingSvc := trackingservice.NewTrackingService(provider)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	// Initialize Receiving Service & Handler
	dispatchAdapter := receivingadapter.NewCTEnviosDispatchAdapter(cfg.CTEnvios)
	receivingSvc := receivingservice.NewReceivingService(dispatchAdapter)
	receivingHdl := receivinghandler.NewReceivingHandler(receivingSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/manifests/:id/shipments", trackingHdl.GetManifestShipments)
	srv.App.Post("/receiving/sessions", receivingHdl.StartSession)
	srv.App.Get("/receiving/sessions/:id", receivingHdl.GetSession)
	srv.App.Delete("/receiving/sessions/:id", receivingHdl.ClearSession)
	srv.App.Post("/receiving/sessions/:id/scans", receivingHdl.Scan)
	srv.App.Post("/receiving/sessions/:id/complete", receivingHdl.Complete)
	srv.App.Post("/receiving/sessions/:id/dispatch", receivingHdl.CreateDispatch)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
