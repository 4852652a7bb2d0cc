// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal service
// packages.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	assethandler "tessera/internal/asset/handler"
	assetservice "tessera/internal/asset/service"
	assetstore "tessera/internal/asset/store"
	"tessera/internal/assignment"
	assignmenthandler "tessera/internal/assignment/handler"
	"tessera/internal/assignment/ports"
	"tessera/internal/assignment/randomness"
	"tessera/internal/platform/config"
	"tessera/internal/platform/httpserver"
	"tessera/internal/platform/logger"
	platformpg "tessera/internal/platform/postgres"
	platformredis "tessera/internal/platform/redis"
	riskcache "tessera/internal/risk/cache"
	riskengine "tessera/internal/risk/engine"
	riskhandler "tessera/internal/risk/handler"
	riskmetrics "tessera/internal/risk/metrics"
	riskservice "tessera/internal/risk/service"
	risksources "tessera/internal/risk/sources"
	httptransport "tessera/internal/transport/http"
	verificationengine "tessera/internal/verification/engine"
	verificationhandler "tessera/internal/verification/handler"
	verificationmetrics "tessera/internal/verification/metrics"
	verificationservice "tessera/internal/verification/service"
	"tessera/internal/verification/store/record"
	"tessera/pkg/events"
	eventskafka "tessera/pkg/events/kafka"
	eventsmemory "tessera/pkg/events/memory"
)

func main() {
	log := logger.New()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Storage: postgres when configured, memory otherwise.
	var (
		assets  assetstore.Store
		records verificationservice.RecordStore
		health  []httptransport.HealthCheck
	)
	pool, err := platformpg.New(ctx, cfg.Postgres)
	if err != nil {
		log.Error("postgres unavailable", "error", err)
		os.Exit(1)
	}
	if pool != nil {
		if err := pool.EnsureSchema(ctx); err != nil {
			log.Error("schema setup failed", "error", err)
			os.Exit(1)
		}
		assets = assetstore.NewPostgres(pool.Pool)
		records = record.NewPostgres(pool.Pool)
		health = append(health, httptransport.HealthCheck{Name: "postgres", Check: pool.Health})
		defer pool.Close()
	} else {
		log.Info("postgres not configured, using in-memory stores")
		assets = assetstore.NewInMemory()
		records = record.NewInMemory()
	}

	// Events: kafka when configured, memory otherwise.
	var publisher events.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPub, err := eventskafka.New(ctx, eventskafka.Config{
			Brokers:         cfg.Kafka.Brokers,
			Topic:           cfg.Kafka.Topic,
			TopicPartitions: cfg.Kafka.TopicPartitions,
		}, eventskafka.WithLogger(log))
		if err != nil {
			log.Error("kafka unavailable", "error", err)
			os.Exit(1)
		}
		publisher = kafkaPub
	} else {
		log.Info("kafka not configured, using in-memory event publisher")
		publisher = eventsmemory.New()
	}
	defer publisher.Close()

	// Verification.
	verifySvc, err := verificationservice.New(
		verificationengine.New(verificationengine.DefaultConfig()),
		assets, records,
		verificationservice.WithLogger(log),
		verificationservice.WithPublisher(publisher),
		verificationservice.WithMetrics(verificationmetrics.New()),
	)
	if err != nil {
		log.Error("failed to build verification service", "error", err)
		os.Exit(1)
	}

	// Risk.
	var market riskservice.MarketDataSource
	if cfg.Sources.MarketDataURL != "" || cfg.Sources.WeatherURL != "" {
		market = risksources.NewHTTP(cfg.Sources.MarketDataURL, cfg.Sources.WeatherURL, cfg.Sources.Timeout)
	} else {
		market = risksources.NewStatic()
	}
	riskOpts := []riskservice.Option{
		riskservice.WithLogger(log),
		riskservice.WithPublisher(publisher),
		riskservice.WithMetrics(riskmetrics.New()),
	}
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis unavailable", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		riskOpts = append(riskOpts, riskservice.WithCache(riskcache.NewRedis(redisClient.Client, 0)))
		health = append(health, httptransport.HealthCheck{Name: "redis", Check: redisClient.Health})
		defer redisClient.Close()
	}
	riskSvc, err := riskservice.New(riskengine.New(riskengine.DefaultTables()), assets, market, riskOpts...)
	if err != nil {
		log.Error("failed to build risk service", "error", err)
		os.Exit(1)
	}

	// Assignment.
	var source ports.RandomnessSource
	if cfg.Sources.RandomnessURL != "" {
		source = randomness.NewBeacon(cfg.Sources.RandomnessURL, cfg.Sources.Timeout)
	} else {
		source = randomness.Local{}
	}
	assignSvc, err := assignment.New(source,
		assignment.WithLogger(log),
		assignment.WithPublisher(publisher),
	)
	if err != nil {
		log.Error("failed to build assignment service", "error", err)
		os.Exit(1)
	}

	// Assets.
	assetSvc, err := assetservice.New(assets, assetservice.WithLogger(log))
	if err != nil {
		log.Error("failed to build asset service", "error", err)
		os.Exit(1)
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Assets:       assethandler.New(assetSvc, log),
		Verification: verificationhandler.New(verifySvc, log),
		Risk:         riskhandler.New(riskSvc, log),
		Assignment:   assignmenthandler.New(assignSvc, log),
		AdminToken:   cfg.Server.AdminToken,
		Logger:       log,
		Health:       health,
	})

	srv := httpserver.New(cfg.Server.Addr, router)
	log.Info("starting tessera", "addr", cfg.Server.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
