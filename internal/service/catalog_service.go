package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wearlytic/catalog/internal/config"
	"github.com/wearlytic/catalog/internal/domain"
	"github.com/wearlytic/catalog/internal/logger"
	"github.com/wearlytic/catalog/internal/metrics"
	"github.com/wearlytic/catalog/internal/pagecache"
)

// ProductStore is the retrieval layer the query engine reads from. The
// implementation owns connection pooling; the engine only issues
// request-scoped reads.
type ProductStore interface {
	FindProducts(ctx context.Context, q *domain.ProductQuery) ([]domain.Product, error)
}

// HealthChecker is implemented by dependencies that can report their own
// reachability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthStatus reports service and dependency health.
type HealthStatus struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Timestamp    time.Time         `json:"timestamp"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// CatalogService is the product query engine: it normalizes parameters,
// retrieves candidates, applies the price post-filter, and paginates. It
// holds no mutable state between calls.
type CatalogService struct {
	store   ProductStore
	cache   *pagecache.Cache // nil when caching is disabled
	config  *config.Config
	logger  logger.Logger
	metrics *metrics.Metrics // nil in tests
}

// NewCatalogService creates a catalog service. cache and m may be nil.
func NewCatalogService(
	store ProductStore,
	cache *pagecache.Cache,
	cfg *config.Config,
	log logger.Logger,
	m *metrics.Metrics,
) *CatalogService {
	return &CatalogService{
		store:   store,
		cache:   cache,
		config:  cfg,
		logger:  log,
		metrics: m,
	}
}

// Query executes a product listing query and returns one page of results.
// baseURL is the absolute URL of the listing endpoint, used for pagination
// links. Any retrieval failure surfaces as a single wrapped error; no
// partial results are returned.
func (s *CatalogService) Query(ctx context.Context, q *domain.ProductQuery, baseURL string) (*domain.ProductPage, error) {
	startTime := time.Now()

	q.Normalize(s.config.Service.DefaultPageSize, s.config.Service.MaxPageSize)

	cacheKey := baseURL + "?" + q.Values(q.Page).Encode()
	if s.cache != nil {
		if page, ok := s.cache.Get(ctx, cacheKey); ok {
			s.observe("cache_hit", startTime, len(page.Products))
			return page, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Service.QueryTimeout)
	defer cancel()

	candidates, err := s.store.FindProducts(ctx, q)
	if err != nil {
		s.observe("error", startTime, 0)
		s.logger.Error("Product query failed",
			logger.Error(err),
			logger.String("search", q.Search),
			logger.String("category", q.Category),
			logger.String("brand", q.Brand),
		)
		return nil, fmt.Errorf("query products: %w", err)
	}

	filtered := filterByPrice(candidates, q)
	page := s.buildPage(filtered, q, baseURL)

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, page)
	}

	s.observe("ok", startTime, len(filtered))
	s.logger.Info("Product query completed",
		logger.String("search", q.Search),
		logger.Int("total", page.Pagination.Total),
		logger.Int("page", q.Page),
		logger.Int64("took_ms", time.Since(startTime).Milliseconds()),
	)

	return page, nil
}

// filterByPrice applies the price-range post-filter. It runs after
// retrieval because stored prices are display strings; products with an
// unparseable price normalize to zero and only survive when no lower
// bound is set.
func filterByPrice(products []domain.Product, q *domain.ProductQuery) []domain.Product {
	minPrice, maxPrice, hasMin, hasMax := q.PriceBounds()
	if !hasMin && !hasMax {
		return products
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		price := p.PriceMinor()
		if hasMin && price < minPrice {
			continue
		}
		if hasMax && price > maxPrice {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func (s *CatalogService) buildPage(filtered []domain.Product, q *domain.ProductQuery, baseURL string) *domain.ProductPage {
	start, end, totalPages := Paginate(len(filtered), q.Page, q.PerPage)

	slice := filtered[start:end]
	products := make([]domain.Product, len(slice))
	copy(products, slice)
	for i := range products {
		if products[i].Colors == nil {
			products[i].Colors = []string{}
		}
	}

	return &domain.ProductPage{
		Products: products,
		Pagination: domain.Pagination{
			Total:      len(filtered),
			Page:       q.Page,
			PerPage:    q.PerPage,
			TotalPages: totalPages,
			Links:      BuildLinks(baseURL, q.Values(q.Page), q.Page, totalPages),
		},
	}
}

func (s *CatalogService) observe(status string, startTime time.Time, results int) {
	if s.metrics == nil {
		return
	}
	s.metrics.QueriesTotal.WithLabelValues(status).Inc()
	s.metrics.QueryDuration.Observe(time.Since(startTime).Seconds())
	if status == "ok" {
		s.metrics.ResultsPerQuery.Observe(float64(results))
	}
}

// HealthCheck reports the health of the service and its dependencies.
func (s *CatalogService) HealthCheck(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:       "ok",
		Version:      s.config.Service.Version,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]string),
	}

	if checker, ok := s.store.(HealthChecker); ok {
		if err := checker.HealthCheck(ctx); err != nil {
			status.Status = "degraded"
			status.Dependencies["mongodb"] = "unhealthy: " + err.Error()
		} else {
			status.Dependencies["mongodb"] = "healthy"
		}
	}

	if s.cache != nil {
		if err := s.cache.HealthCheck(ctx); err != nil {
			// The cache is best-effort; an unreachable cache does not
			// degrade the service.
			status.Dependencies["redis"] = "unhealthy: " + err.Error()
		} else {
			status.Dependencies["redis"] = "healthy"
		}
	}

	return status
}
