package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/wearlytic/catalog/internal/domain"
)

// QueryBuilder translates listing query parameters into a MongoDB filter
// plus find options. Price bounds are deliberately never part of the
// filter: stored prices are display strings, so range filtering happens as
// a post-filter in the service after normalization.
type QueryBuilder struct{}

// NewQueryBuilder creates a new query builder.
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

// Build constructs the retrieval filter. A non-empty search term uses the
// weighted text index; category and brand are case-insensitive substring
// matches. The result is deterministic for identical inputs.
func (qb *QueryBuilder) Build(q *domain.ProductQuery) bson.D {
	filter := bson.D{}

	if q.Search != "" {
		filter = append(filter, bson.E{
			Key:   "$text",
			Value: bson.D{{Key: "$search", Value: q.Search}},
		})
	}
	if q.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: substringRegex(q.Category)})
	}
	if q.Brand != "" {
		filter = append(filter, bson.E{Key: "brand", Value: substringRegex(q.Brand)})
	}

	return filter
}

// FindOptions returns projection and sort for the query: relevance order
// when a search term is present, newest-first otherwise. The internal _id
// is always excluded from results.
func (qb *QueryBuilder) FindOptions(q *domain.ProductQuery) *options.FindOptionsBuilder {
	projection := bson.D{{Key: "_id", Value: 0}}

	opts := options.Find()
	if q.Search != "" {
		projection = append(projection, bson.E{
			Key:   "score",
			Value: bson.D{{Key: "$meta", Value: "textScore"}},
		})
		opts.SetSort(bson.D{{Key: "score", Value: bson.D{{Key: "$meta", Value: "textScore"}}}})
	} else {
		opts.SetSort(bson.D{{Key: "timestamp", Value: -1}})
	}

	return opts.SetProjection(projection)
}

// substringRegex builds a case-insensitive substring matcher. The user
// value is quoted so filter input can never inject regex syntax.
func substringRegex(value string) bson.Regex {
	return bson.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}
