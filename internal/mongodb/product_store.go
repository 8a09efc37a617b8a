package mongodb

import (
	"context"
	"fmt"

	"github.com/wearlytic/catalog/internal/domain"
)

// ProductStore retrieves product documents from the collection. It
// implements the service layer's ProductStore interface.
type ProductStore struct {
	client       *Client
	queryBuilder *QueryBuilder
}

// NewProductStore creates a product store backed by the given client.
func NewProductStore(client *Client) *ProductStore {
	return &ProductStore{
		client:       client,
		queryBuilder: NewQueryBuilder(),
	}
}

// FindProducts returns all candidates matching the query's retrieval
// predicate, in relevance order when searching and newest-first otherwise.
// Price bounds are not applied here; the service post-filters them.
func (s *ProductStore) FindProducts(ctx context.Context, q *domain.ProductQuery) ([]domain.Product, error) {
	filter := s.queryBuilder.Build(q)
	opts := s.queryBuilder.FindOptions(q)

	cursor, err := s.client.Collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var products []domain.Product
	if decodeErr := cursor.All(ctx, &products); decodeErr != nil {
		return nil, fmt.Errorf("decode products: %w", decodeErr)
	}

	return products, nil
}

// HealthCheck reports document store reachability for the health endpoint.
func (s *ProductStore) HealthCheck(ctx context.Context) error {
	return s.client.HealthCheck(ctx)
}
