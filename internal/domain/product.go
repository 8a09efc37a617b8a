package domain

// Product represents a single catalog document as produced by the
// ingestion pipeline. The collection is schema-less; every field except
// product_name may be absent in older documents.
type Product struct {
	Description string   `bson:"description,omitempty" json:"description"`
	ProductURL  string   `bson:"product_url,omitempty" json:"product_url"`
	Source      string   `bson:"source,omitempty" json:"source"`
	ProductName string   `bson:"product_name,omitempty" json:"product_name"`
	ImageURL    string   `bson:"image_url,omitempty" json:"image_url"`
	Category    string   `bson:"category,omitempty" json:"category"`
	Price       string   `bson:"price,omitempty" json:"price"`
	Colors      []string `bson:"colors,omitempty" json:"colors"`
	Brand       string   `bson:"brand,omitempty" json:"brand"`
	Material    string   `bson:"material,omitempty" json:"material"`
	Timestamp   float64  `bson:"timestamp,omitempty" json:"timestamp"`
}

// PriceMinor returns the product's price in paise. Unparseable or missing
// prices are zero.
func (p *Product) PriceMinor() Money {
	return ParseMoney(p.Price)
}

// Text search field weights used by the product search index. product_name
// dominates, material barely registers.
const (
	WeightProductName = 10
	WeightBrand       = 5
	WeightDescription = 3
	WeightCategory    = 2
	WeightMaterial    = 1
)

// SearchIndexName is the name of the weighted text index on the products
// collection.
const SearchIndexName = "product_search_index"
