package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoopworks/creamery-backend/internal/catalog"
	"github.com/scoopworks/creamery-backend/internal/domain/entities"
	"github.com/scoopworks/creamery-backend/internal/pipeline"
)

func newListingService() *ListingService {
	return NewListingService(
		catalog.NewProductCatalog(),
		catalog.NewStoreCatalog(),
		catalog.NewRecipeCatalog(),
		12,
	)
}

func TestStores_GroceryInAustinIsExactlyHEBMueller(t *testing.T) {
	svc := newListingService()

	result := svc.Stores(StoreParams{
		Types: []entities.StoreType{entities.StoreTypeGrocery},
		City:  "Austin",
		Page:  1,
	})

	require.Len(t, result.Items, 1)
	assert.Equal(t, "heb-austin-mueller", result.Items[0].ID)
	assert.Equal(t, pipeline.StateOK, result.State)
}

func TestStores_TypeDimensionIsOR(t *testing.T) {
	svc := newListingService()

	result := svc.Stores(StoreParams{
		Types: []entities.StoreType{entities.StoreTypeGrocery, entities.StoreTypeConvenience},
		Page:  1,
	})

	require.NotEmpty(t, result.Items)
	for _, s := range result.Items {
		assert.Contains(t,
			[]entities.StoreType{entities.StoreTypeGrocery, entities.StoreTypeConvenience},
			s.Type)
	}
}

func TestStores_NoMatchesStateDiffersFromNoSource(t *testing.T) {
	svc := newListingService()

	noMatches := svc.Stores(StoreParams{City: "Reykjavik", Page: 1})
	assert.Equal(t, pipeline.StateNoMatches, noMatches.State)
	assert.Empty(t, noMatches.Items)

	empty := NewListingService(
		catalog.NewProductCatalogWith(nil),
		catalog.NewStoreCatalogWith(nil),
		catalog.NewRecipeCatalogWith(nil),
		12,
	)
	noSource := empty.Stores(StoreParams{Page: 1})
	assert.Equal(t, pipeline.StateNoSource, noSource.State)
}

func TestProducts_CategoryFacetAndSort(t *testing.T) {
	svc := newListingService()

	result := svc.Products(ProductParams{
		Categories: []entities.ProductCategory{entities.CategoryBars},
		SortKey:    "name",
		Page:       1,
	})

	require.Len(t, result.Items, 2)
	assert.Equal(t, "Coffee Almond Crunch Bar", result.Items[0].Name)
	assert.Equal(t, "Vanilla Milk Chocolate Almond Bar", result.Items[1].Name)
}

func TestProducts_PageBeyondLastIsEmpty(t *testing.T) {
	svc := newListingService()

	result := svc.Products(ProductParams{Page: 99, PageSize: 5})
	assert.Empty(t, result.Items)
	assert.Equal(t, pipeline.StateOK, result.State)
}

func TestRecipes_DietaryTagFacet(t *testing.T) {
	svc := newListingService()

	result := svc.Recipes(RecipeParams{DietaryTags: []string{"vegan"}, Page: 1})

	require.Len(t, result.Items, 1)
	assert.Equal(t, "vegan-chocolate-shake", result.Items[0].ID)
}

func TestRecipes_CombinedFacetsAreAND(t *testing.T) {
	svc := newListingService()

	result := svc.Recipes(RecipeParams{
		Categories:   []entities.RecipeCategory{entities.RecipeCategorySundaes},
		Difficulties: []entities.Difficulty{entities.DifficultyEasy},
		Page:         1,
	})

	require.Len(t, result.Items, 1)
	assert.Equal(t, "mango-coconut-sundae", result.Items[0].ID)
}

func TestRecipes_SortByPrepTimeIsStable(t *testing.T) {
	svc := newListingService()

	result := svc.Recipes(RecipeParams{SortKey: "prep-time", Page: 1, PageSize: 50})
	require.NotEmpty(t, result.Items)

	for i := 1; i < len(result.Items); i++ {
		assert.GreaterOrEqual(t, result.Items[i].PrepTimeMinutes, result.Items[i-1].PrepTimeMinutes)
	}

	// 5-minute recipes keep catalog order
	var fives []string
	for _, r := range result.Items {
		if r.PrepTimeMinutes == 5 {
			fives = append(fives, r.ID)
		}
	}
	assert.Equal(t, []string{"classic-vanilla-milkshake", "vegan-chocolate-shake", "dulce-affogato"}, fives)
}

func TestSearchResults_TypeFacetKeepsScoreOrder(t *testing.T) {
	svc := newListingService()
	search := newCatalogSearchService()

	all := search.SearchAll("vanilla")
	result := svc.SearchResults(all, SearchResultParams{
		Types: []entities.ResultType{entities.ResultTypeProduct},
		Page:  1,
	})

	require.NotEmpty(t, result.Items)
	for i, r := range result.Items {
		assert.Equal(t, entities.ResultTypeProduct, r.Type)
		if i > 0 {
			assert.LessOrEqual(t, r.Score, result.Items[i-1].Score)
		}
	}
}

func TestFlavorNames_SkipsDanglingReferences(t *testing.T) {
	svc := newListingService()

	recipe, err := catalog.NewRecipeCatalog().GetByID("matcha-affogato")
	require.NoError(t, err)

	names := svc.FlavorNames(*recipe)
	// green-tea resolves; black-sesame is dangling and silently skipped
	assert.Equal(t, []string{"Green Tea"}, names)
}
