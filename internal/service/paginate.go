package service

import (
	"net/url"
	"strconv"

	"github.com/wearlytic/catalog/internal/domain"
)

// Paginate computes slice bounds and the page count for a filtered set of
// total items. page is 1-indexed and assumed normalized (>= 1); perPage
// must be positive. A page past the end yields start == end, never an
// error, and an empty set has zero pages.
func Paginate(total, page, perPage int) (start, end, totalPages int) {
	if total <= 0 {
		return 0, 0, 0
	}

	totalPages = (total + perPage - 1) / perPage

	start = (page - 1) * perPage
	if start > total {
		start = total
	}
	end = start + perPage
	if end > total {
		end = total
	}

	return start, end, totalPages
}

// BuildLinks synthesizes navigation URLs from the base URL and the current
// query-parameter set, substituting only the page parameter. Prev and Next
// are nil at the respective boundary.
func BuildLinks(baseURL string, values url.Values, page, totalPages int) domain.Links {
	lastPage := totalPages
	if lastPage < 1 {
		lastPage = 1
	}

	links := domain.Links{
		First: pageURL(baseURL, values, 1),
		Last:  pageURL(baseURL, values, lastPage),
		Self:  pageURL(baseURL, values, page),
	}

	if page > 1 {
		prev := pageURL(baseURL, values, page-1)
		links.Prev = &prev
	}
	if page < totalPages {
		next := pageURL(baseURL, values, page+1)
		links.Next = &next
	}

	return links
}

func pageURL(baseURL string, values url.Values, page int) string {
	v := url.Values{}
	for key, vals := range values {
		v[key] = append([]string(nil), vals...)
	}
	v.Set("page", strconv.Itoa(page))
	return baseURL + "?" + v.Encode()
}
