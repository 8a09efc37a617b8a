package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wearlytic/catalog/internal/domain"
	"github.com/wearlytic/catalog/internal/logger"
	"github.com/wearlytic/catalog/internal/service"
)

// Handler holds HTTP request handlers.
type Handler struct {
	catalog *service.CatalogService
	logger  logger.Logger
}

// NewHandler creates a new handler instance.
func NewHandler(catalog *service.CatalogService, log logger.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  log,
	}
}

// ErrorResponse is the JSON body returned on request failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListProducts handles GET /api/products: a filterable, paginated product
// listing. Invalid paging or price parameters fall back to defaults and
// never fail the request; any engine failure is a 500.
func (h *Handler) ListProducts(c *gin.Context) {
	query := parseProductQuery(c)

	page, err := h.catalog.Query(c.Request.Context(), query, requestBaseURL(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

// parseProductQuery reads listing parameters from the query string.
// Unparseable page/per_page values become zero and are defaulted by the
// engine.
func parseProductQuery(c *gin.Context) *domain.ProductQuery {
	q := &domain.ProductQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		MinPrice: c.Query("min_price"),
		MaxPrice: c.Query("max_price"),
	}

	if page := c.Query("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil {
			q.Page = p
		}
	}
	if perPage := c.Query("per_page"); perPage != "" {
		if pp, err := strconv.Atoi(perPage); err == nil {
			q.PerPage = pp
		}
	}

	return q
}

// requestBaseURL reconstructs the absolute URL of the request path for
// pagination links.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.Path
}

// Health handles health check requests.
func (h *Handler) Health(c *gin.Context) {
	status := h.catalog.HealthCheck(c.Request.Context())

	if status.Status != "ok" {
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}

	c.JSON(http.StatusOK, status)
}
