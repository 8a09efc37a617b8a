package mongodb_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/wearlytic/catalog/internal/domain"
	"github.com/wearlytic/catalog/internal/mongodb"
)

func TestQueryBuilder_Build_Empty(t *testing.T) {
	qb := mongodb.NewQueryBuilder()

	filter := qb.Build(&domain.ProductQuery{})
	if len(filter) != 0 {
		t.Errorf("Build() on empty query = %v, want empty filter", filter)
	}
}

func TestQueryBuilder_Build_Search(t *testing.T) {
	qb := mongodb.NewQueryBuilder()

	filter := qb.Build(&domain.ProductQuery{Search: "denim jacket"})
	if len(filter) != 1 {
		t.Fatalf("Build() = %v, want single $text clause", filter)
	}
	if filter[0].Key != "$text" {
		t.Errorf("Build() clause key = %q, want $text", filter[0].Key)
	}

	text, ok := filter[0].Value.(bson.D)
	if !ok || len(text) != 1 || text[0].Key != "$search" || text[0].Value != "denim jacket" {
		t.Errorf("Build() $text value = %v, want {$search: denim jacket}", filter[0].Value)
	}
}

func TestQueryBuilder_Build_CategoryAndBrand(t *testing.T) {
	qb := mongodb.NewQueryBuilder()

	filter := qb.Build(&domain.ProductQuery{Category: "Tshirts", Brand: "H&M"})
	if len(filter) != 2 {
		t.Fatalf("Build() = %v, want category and brand clauses", filter)
	}

	category, ok := filter[0].Value.(bson.Regex)
	if !ok {
		t.Fatalf("Build() category clause = %T, want bson.Regex", filter[0].Value)
	}
	if category.Options != "i" {
		t.Errorf("category regex options = %q, want case-insensitive", category.Options)
	}
	if category.Pattern != "Tshirts" {
		t.Errorf("category regex pattern = %q, want Tshirts", category.Pattern)
	}
}

func TestQueryBuilder_Build_QuotesRegexMeta(t *testing.T) {
	qb := mongodb.NewQueryBuilder()

	filter := qb.Build(&domain.ProductQuery{Brand: "A.B+C"})
	brand, ok := filter[0].Value.(bson.Regex)
	if !ok {
		t.Fatalf("Build() brand clause = %T, want bson.Regex", filter[0].Value)
	}
	if brand.Pattern != `A\.B\+C` {
		t.Errorf("brand regex pattern = %q, want metacharacters quoted", brand.Pattern)
	}
}

func TestQueryBuilder_Build_PriceNeverInFilter(t *testing.T) {
	qb := mongodb.NewQueryBuilder()

	// Stored prices are display strings, so bounds must stay out of the
	// retrieval predicate.
	filter := qb.Build(&domain.ProductQuery{MinPrice: "1000", MaxPrice: "1500"})
	if len(filter) != 0 {
		t.Errorf("Build() = %v, price bounds must not appear in the filter", filter)
	}
}

func TestQueryBuilder_Build_Deterministic(t *testing.T) {
	qb := mongodb.NewQueryBuilder()
	q := &domain.ProductQuery{Search: "kurta", Category: "Ethnic", Brand: "FabIndia"}

	first, err := bson.Marshal(qb.Build(q))
	if err != nil {
		t.Fatalf("marshal filter: %v", err)
	}
	second, err := bson.Marshal(qb.Build(q))
	if err != nil {
		t.Fatalf("marshal filter: %v", err)
	}
	if string(first) != string(second) {
		t.Error("Build() is not deterministic for identical inputs")
	}
}
