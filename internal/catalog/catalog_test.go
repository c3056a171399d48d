package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoopworks/creamery-backend/internal/domain/entities"
	apperrors "github.com/scoopworks/creamery-backend/pkg/errors"
)

func TestProductCatalog_GetByID_RoundTrip(t *testing.T) {
	c := NewProductCatalog()

	for _, p := range c.List() {
		got, err := c.GetByID(p.ID)
		require.NoError(t, err)
		assert.Equal(t, p, *got)
	}
}

func TestProductCatalog_GetByID_Miss(t *testing.T) {
	c := NewProductCatalog()

	got, err := c.GetByID("rocky-road")
	assert.Nil(t, got)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestProductCatalog_Search_CaseInsensitiveSubstring(t *testing.T) {
	c := NewProductCatalog()

	results := c.Search("VaNiLLa")
	require.NotEmpty(t, results)

	ids := make([]string, 0, len(results))
	for _, p := range results {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, "vanilla")
	// chocolate matches only through its vanilla extract ingredient
	assert.Contains(t, ids, "chocolate")
}

func TestProductCatalog_Search_EmptyQueryMatchesEverything(t *testing.T) {
	c := NewProductCatalog()

	// The raw helper does not guard empty queries; the unified search does.
	assert.Len(t, c.Search(""), len(c.List()))
	assert.Len(t, c.Search("   "), len(c.List()))
}

func TestProductCatalog_Search_NoMatchesIsEmptyNotError(t *testing.T) {
	c := NewProductCatalog()
	assert.Empty(t, c.Search("pistachio swirl supreme"))
}

func TestProductCatalog_ListByCategory(t *testing.T) {
	c := NewProductCatalog()

	bars := c.ListByCategory(entities.CategoryBars)
	require.NotEmpty(t, bars)
	for _, p := range bars {
		assert.Equal(t, entities.CategoryBars, p.Category)
	}
}

func TestProductCatalog_ListAvailableExcludesRetired(t *testing.T) {
	c := NewProductCatalog()

	for _, p := range c.ListAvailable() {
		assert.True(t, p.Available)
		assert.NotEqual(t, "green-tea", p.ID)
	}
}

func TestStoreCatalog_TypeAndCityFixture(t *testing.T) {
	c := NewStoreCatalog()

	var matches []entities.Store
	for _, s := range c.ListByType(entities.StoreTypeGrocery) {
		if containsFold(s.Address.City, "austin") {
			matches = append(matches, s)
		}
	}

	require.Len(t, matches, 1)
	assert.Equal(t, "heb-austin-mueller", matches[0].ID)
	assert.Equal(t, "HEB Austin Mueller", matches[0].Name)
}

func TestStoreCatalog_Search_MatchesCityAndProducts(t *testing.T) {
	c := NewStoreCatalog()

	byCity := c.Search("austin")
	require.NotEmpty(t, byCity)
	for _, s := range byCity {
		assert.Equal(t, "Austin", s.Address.City)
	}

	// "celebration" only appears in carried product names
	byProduct := c.Search("celebration")
	require.NotEmpty(t, byProduct)
}

func TestStoreCatalog_HoursOn(t *testing.T) {
	c := NewStoreCatalog()

	s, err := c.GetByID("heb-austin-mueller")
	require.NoError(t, err)

	h, ok := s.HoursOn("sunday")
	assert.True(t, ok)
	assert.Equal(t, "11:00-20:00", h)

	_, ok = s.HoursOn("someday")
	assert.False(t, ok)
}

func TestRecipeCatalog_Search_DietaryTag(t *testing.T) {
	c := NewRecipeCatalog()

	results := c.Search("vegan")
	require.NotEmpty(t, results)

	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	assert.Contains(t, ids, "vegan-chocolate-shake")
	assert.NotContains(t, ids, "classic-vanilla-milkshake")
}

func TestRecipeCatalog_ListByFlavor_DanglingRefIsFine(t *testing.T) {
	c := NewRecipeCatalog()

	// green-tea is retired from the product catalog but still referenced
	byRetired := c.ListByFlavor("green-tea")
	require.Len(t, byRetired, 1)
	assert.Equal(t, "matcha-affogato", byRetired[0].ID)

	assert.Empty(t, c.ListByFlavor("no-such-flavor"))
}

func TestRecipeCatalog_ListFeatured(t *testing.T) {
	c := NewRecipeCatalog()

	featured := c.ListFeatured()
	require.NotEmpty(t, featured)
	for _, r := range featured {
		assert.True(t, r.Featured)
	}
}

func TestPageCatalog_ListIsCopy(t *testing.T) {
	c := NewPageCatalog()

	first := c.List()
	require.NotEmpty(t, first)
	first[0].Title = "mutated"

	again := c.List()
	assert.NotEqual(t, "mutated", again[0].Title)
}

func TestCatalog_IDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range NewProductCatalog().List() {
		assert.False(t, seen[p.ID], p.ID)
		seen[p.ID] = true
	}
	seen = map[string]bool{}
	for _, s := range NewStoreCatalog().List() {
		assert.False(t, seen[s.ID], s.ID)
		seen[s.ID] = true
	}
	seen = map[string]bool{}
	for _, r := range NewRecipeCatalog().List() {
		assert.False(t, seen[r.ID], r.ID)
		seen[r.ID] = true
	}
}
