package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// ProductQuery holds the parsed listing query parameters. Zero values mean
// "no constraint"; Normalize applies paging defaults.
type ProductQuery struct {
	Search   string
	Category string
	Brand    string
	MinPrice string // raw as received; parsed lazily, malformed == absent
	MaxPrice string
	Page     int
	PerPage  int
}

// Normalize clamps paging values into a valid range. Page is 1-indexed and
// clamps to 1; an unset or non-positive PerPage falls back to
// defaultPerPage, and values above maxPerPage are capped.
func (q *ProductQuery) Normalize(defaultPerPage, maxPerPage int) {
	q.Search = strings.TrimSpace(q.Search)
	q.Category = strings.TrimSpace(q.Category)
	q.Brand = strings.TrimSpace(q.Brand)

	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = defaultPerPage
	}
	if maxPerPage > 0 && q.PerPage > maxPerPage {
		q.PerPage = maxPerPage
	}
}

// PriceBounds parses the raw min/max price parameters. A bound is absent
// when its parameter is empty or unparseable; that is never an error.
func (q *ProductQuery) PriceBounds() (minPrice, maxPrice Money, hasMin, hasMax bool) {
	if s := strings.TrimSpace(q.MinPrice); s != "" {
		minPrice, hasMin = MoneyFromString(s)
	}
	if s := strings.TrimSpace(q.MaxPrice); s != "" {
		maxPrice, hasMax = MoneyFromString(s)
	}
	return minPrice, maxPrice, hasMin, hasMax
}

// Values returns the canonical query-parameter set for this query at the
// given page. Used both for pagination links and as the cache key, so the
// parameter order is fixed by url.Values encoding.
func (q *ProductQuery) Values(page int) url.Values {
	v := url.Values{}
	v.Set("search", q.Search)
	v.Set("category", q.Category)
	v.Set("brand", q.Brand)
	v.Set("min_price", q.MinPrice)
	v.Set("max_price", q.MaxPrice)
	v.Set("per_page", strconv.Itoa(q.PerPage))
	v.Set("page", strconv.Itoa(page))
	return v
}

// ProductPage is one bounded slice of the filtered product set plus its
// position among all slices.
type ProductPage struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// Pagination describes a page's position within the full filtered set.
type Pagination struct {
	Total      int   `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
	Links      Links `json:"links"`
}

// Links holds navigation URLs for a page. Prev and Next are null at the
// respective boundary.
type Links struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
	Self  string  `json:"self"`
}
