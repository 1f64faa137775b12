package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDefaults(t *testing.T) {
	page, limit, offset, sortBy, sortOrder := Options{}.Normalize()
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultLimit, limit)
	assert.Equal(t, 0, offset)
	assert.Equal(t, "created_at", sortBy)
	assert.Equal(t, "desc", sortOrder)
}

func TestNormalizeOffset(t *testing.T) {
	page, limit, offset, _, _ := Options{Page: 2, Limit: 10}.Normalize()
	assert.Equal(t, 2, page)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 10, offset)

	_, limit, _, _, _ = Options{Limit: 1000}.Normalize()
	assert.Equal(t, DefaultLimit, limit)
}

func TestNormalizeSortPairing(t *testing.T) {
	// A lone sortBy or sortOrder falls back to the default pair.
	_, _, _, sortBy, sortOrder := Options{SortBy: "title"}.Normalize()
	assert.Equal(t, "created_at", sortBy)
	assert.Equal(t, "desc", sortOrder)

	_, _, _, sortBy, sortOrder = Options{SortBy: "title", SortOrder: "asc"}.Normalize()
	assert.Equal(t, "title", sortBy)
	assert.Equal(t, "asc", sortOrder)

	_, _, _, _, sortOrder = Options{SortBy: "title", SortOrder: "sideways"}.Normalize()
	assert.Equal(t, "desc", sortOrder)
}

func TestFromQuery(t *testing.T) {
	opts := FromQuery("3", "20", "title", "asc")
	assert.Equal(t, Options{Page: 3, Limit: 20, SortBy: "title", SortOrder: "asc"}, opts)

	opts = FromQuery("not-a-number", "", "", "")
	assert.Equal(t, Options{}, opts)
}
