package service_test

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wearlytic/catalog/internal/service"
)

func TestPaginate(t *testing.T) {
	testCases := []struct {
		name           string
		total          int
		page           int
		perPage        int
		wantStart      int
		wantEnd        int
		wantTotalPages int
	}{
		{"first page", 42, 1, 5, 0, 5, 9},
		{"middle page", 42, 3, 5, 10, 15, 9},
		{"last partial page", 42, 9, 5, 40, 42, 9},
		{"beyond last page", 42, 10, 5, 42, 42, 9},
		{"far beyond last page", 42, 100, 5, 42, 42, 9},
		{"empty set", 0, 1, 5, 0, 0, 0},
		{"exact multiple", 10, 2, 5, 5, 10, 2},
		{"single item", 1, 1, 5, 0, 1, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, totalPages := service.Paginate(tc.total, tc.page, tc.perPage)
			assert.Equal(t, tc.wantStart, start, "start")
			assert.Equal(t, tc.wantEnd, end, "end")
			assert.Equal(t, tc.wantTotalPages, totalPages, "total pages")
		})
	}
}

// Walking every page in order must reproduce the full set exactly once.
func TestPaginate_PagesCoverSetExactlyOnce(t *testing.T) {
	for _, total := range []int{0, 1, 4, 5, 6, 42, 100} {
		for _, perPage := range []int{1, 3, 5, 10} {
			_, _, totalPages := service.Paginate(total, 1, perPage)

			seen := 0
			prevEnd := 0
			for page := 1; page <= totalPages; page++ {
				start, end, _ := service.Paginate(total, page, perPage)
				require.Equal(t, prevEnd, start,
					"total=%d perPage=%d page=%d: slices must be contiguous", total, perPage, page)
				require.LessOrEqual(t, end-start, perPage)
				seen += end - start
				prevEnd = end
			}
			require.Equal(t, total, seen,
				"total=%d perPage=%d: concatenated pages must cover the set", total, perPage)
		}
	}
}

func TestBuildLinks(t *testing.T) {
	base := "http://localhost:3001/api/products"
	values := url.Values{}
	values.Set("category", "Jackets")
	values.Set("per_page", "5")

	t.Run("middle page", func(t *testing.T) {
		links := service.BuildLinks(base, values, 3, 9)

		assert.Contains(t, links.First, "page=1")
		assert.Contains(t, links.Last, "page=9")
		assert.Contains(t, links.Self, "page=3")
		require.NotNil(t, links.Prev)
		assert.Contains(t, *links.Prev, "page=2")
		require.NotNil(t, links.Next)
		assert.Contains(t, *links.Next, "page=4")

		// Only the page parameter changes.
		assert.Contains(t, links.Self, "category=Jackets")
		assert.Contains(t, links.Self, "per_page=5")
	})

	t.Run("first page has no prev", func(t *testing.T) {
		links := service.BuildLinks(base, values, 1, 9)
		assert.Nil(t, links.Prev)
		require.NotNil(t, links.Next)
	})

	t.Run("last page has no next", func(t *testing.T) {
		links := service.BuildLinks(base, values, 9, 9)
		require.NotNil(t, links.Prev)
		assert.Nil(t, links.Next)
	})

	t.Run("empty set has neither", func(t *testing.T) {
		links := service.BuildLinks(base, values, 1, 0)
		assert.Nil(t, links.Prev)
		assert.Nil(t, links.Next)
		assert.Contains(t, links.Last, "page=1")
	})

	t.Run("input values untouched", func(t *testing.T) {
		values.Set("page", "3")
		service.BuildLinks(base, values, 3, 9)
		assert.Equal(t, "3", values.Get("page"))
	})
}

func ExamplePaginate() {
	start, end, totalPages := service.Paginate(42, 1, 5)
	fmt.Println(start, end, totalPages)
	// Output: 0 5 9
}
