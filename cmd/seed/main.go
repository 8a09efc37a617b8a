// Command seed loads a JSON array of product documents into the catalog
// collection and ensures the search indexes exist. It stands in for the
// scraper pipeline during local development.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wearlytic/catalog/internal/config"
	"github.com/wearlytic/catalog/internal/domain"
	"github.com/wearlytic/catalog/internal/logger"
	"github.com/wearlytic/catalog/internal/mongodb"
)

const seedTimeout = 60 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	var (
		file       = flag.String("file", "testdata/products.json", "path to a JSON array of products")
		configPath = flag.String("config", config.Path("config.yml"), "path to the service config file")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	log, err := logger.New(logger.Config{Level: cfg.Logging.Level})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Error("Failed to read products file", logger.Error(err), logger.String("file", *file))
		return 1
	}

	var products []domain.Product
	if unmarshalErr := json.Unmarshal(data, &products); unmarshalErr != nil {
		log.Error("Failed to parse products file", logger.Error(unmarshalErr), logger.String("file", *file))
		return 1
	}
	if len(products) == 0 {
		log.Warn("No products in file, nothing to do", logger.String("file", *file))
		return 0
	}

	client, err := mongodb.NewClient(&cfg.Mongo)
	if err != nil {
		log.Error("Failed to connect to MongoDB", logger.Error(err))
		return 1
	}
	defer func() { _ = client.Close(context.Background()) }()

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	docs := make([]any, len(products))
	for i := range products {
		docs[i] = products[i]
	}

	if _, insertErr := client.Collection().InsertMany(ctx, docs); insertErr != nil {
		log.Error("Failed to insert products", logger.Error(insertErr))
		return 1
	}

	if indexErr := client.EnsureIndexes(ctx); indexErr != nil {
		log.Error("Failed to ensure product indexes", logger.Error(indexErr))
		return 1
	}

	log.Info("Seed complete",
		logger.Int("products", len(products)),
		logger.String("collection", cfg.Mongo.Collection),
	)
	return 0
}
