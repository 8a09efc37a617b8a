package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/wearlytic/catalog/internal/api"
	"github.com/wearlytic/catalog/internal/config"
	"github.com/wearlytic/catalog/internal/logger"
	"github.com/wearlytic/catalog/internal/metrics"
	"github.com/wearlytic/catalog/internal/mongodb"
	"github.com/wearlytic/catalog/internal/pagecache"
	"github.com/wearlytic/catalog/internal/service"
)

const indexTimeout = 30 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(config.Path("config.yml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	log = log.With(logger.String("service", cfg.Service.Name))

	log.Info("Starting catalog service",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug),
	)

	log.Info("Connecting to MongoDB", logger.String("database", cfg.Mongo.Database))
	mongoClient, err := mongodb.NewClient(&cfg.Mongo)
	if err != nil {
		log.Error("Failed to connect to MongoDB", logger.Error(err))
		return 1
	}
	defer func() { _ = mongoClient.Close(context.Background()) }()

	indexCtx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()
	if indexErr := mongoClient.EnsureIndexes(indexCtx); indexErr != nil {
		// Search still works without the index for regex-only queries, so
		// a failure here is not fatal at startup.
		log.Warn("Failed to ensure product indexes", logger.Error(indexErr))
	}

	var cache *pagecache.Cache
	if cfg.Cache.Enabled {
		cache, err = pagecache.New(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.TTL, log)
		if err != nil {
			log.Warn("Page cache unavailable, continuing without it", logger.Error(err))
			cache = nil
		} else {
			log.Info("Page cache enabled", logger.String("addr", cfg.Cache.Addr))
		}
	}

	catalog := service.NewCatalogService(
		mongodb.NewProductStore(mongoClient),
		cache,
		cfg,
		log,
		metrics.New(),
	)

	handler := api.NewHandler(catalog, log)
	server := api.NewServer(handler, cfg, log)

	if runErr := server.Run(); runErr != nil {
		log.Error("Server error", logger.Error(runErr))
		return 1
	}

	log.Info("Catalog service exited cleanly")
	return 0
}
