package sitemap

import (
	"strings"
	"testing"
	"time"

	"github.com/emberwick/storefront-api/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	products := []catalog.Product{
		{ID: "p1", CreatedAt: "2026-02-01T09:00:00Z"},
		{ID: "p2", CreatedAt: "garbage"},
	}

	set := Build("https://emberwick.test/", products, []string{"Floral", "Fresh & Clean", catalog.AllCategories}, now)

	var locs []string
	for _, u := range set.URLs {
		locs = append(locs, u.Loc)
	}
	assert.Equal(t, []string{
		"https://emberwick.test/",
		"https://emberwick.test/shop",
		"https://emberwick.test/shop?category=Floral",
		"https://emberwick.test/shop?category=Fresh+%26+Clean",
		"https://emberwick.test/products/p1",
		"https://emberwick.test/products/p2",
		"https://emberwick.test/quiz",
	}, locs)
	assert.Equal(t, "2026-02-01", set.URLs[4].LastMod)
	assert.Equal(t, "2026-03-05", set.URLs[5].LastMod)
}

func TestMarshal(t *testing.T) {
	body, err := Marshal(Build("https://emberwick.test", nil, nil, time.Now()))
	require.NoError(t, err)

	doc := string(body)
	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.Contains(t, doc, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, doc, "<loc>https://emberwick.test/quiz</loc>")
}
