package services

import (
	"strings"

	"github.com/scoopworks/creamery-backend/internal/domain/entities"
	"github.com/scoopworks/creamery-backend/internal/domain/repositories"
	"github.com/scoopworks/creamery-backend/internal/pipeline"
)

// ListingService instantiates the shared filter/sort/paginate pipeline for
// the three listing surfaces: search results, store locator, recipe listing.
// Each surface differs only in its facet definitions and sort keys.
type ListingService struct {
	products    repositories.ProductRepository
	stores      repositories.StoreRepository
	recipes     repositories.RecipeRepository
	pageSize    int
	maxPageSize int
}

// NewListingService creates a listing service with a default page size.
// Requested page sizes above maxPageSize are clamped to it.
func NewListingService(
	products repositories.ProductRepository,
	stores repositories.StoreRepository,
	recipes repositories.RecipeRepository,
	pageSize int,
) *ListingService {
	if pageSize <= 0 {
		pageSize = 12
	}
	return &ListingService{
		products:    products,
		stores:      stores,
		recipes:     recipes,
		pageSize:    pageSize,
		maxPageSize: 60,
	}
}

// WithMaxPageSize overrides the page size ceiling.
func (l *ListingService) WithMaxPageSize(max int) *ListingService {
	if max > 0 {
		l.maxPageSize = max
	}
	return l
}

func (l *ListingService) pageSizeOr(size int) int {
	if size <= 0 {
		return l.pageSize
	}
	if size > l.maxPageSize {
		return l.maxPageSize
	}
	return size
}

// SearchResultParams are the facets for the search results surface.
type SearchResultParams struct {
	Types    []entities.ResultType
	Page     int
	PageSize int
}

// SearchResults filters an already-ranked result list by result type and
// paginates it. The score ordering produced by the search engine is the sort;
// filtering must not disturb it, so no comparator is applied here.
func (l *ListingService) SearchResults(results []entities.SearchResult, params SearchResultParams) pipeline.Result[entities.SearchResult] {
	var preds []pipeline.Predicate[entities.SearchResult]
	if len(params.Types) > 0 {
		preds = append(preds, pipeline.AnyValue(params.Types, func(r entities.SearchResult) entities.ResultType { return r.Type }))
	}
	return pipeline.Run(results, preds, nil, params.Page, l.pageSizeOr(params.PageSize))
}

// ProductParams are the facets and sort keys for the product listing surface.
type ProductParams struct {
	Categories    []entities.ProductCategory
	AvailableOnly bool
	SortKey       string // "name" | "calories"; empty keeps catalog order
	Page          int
	PageSize      int
}

// Products derives one page of the product listing.
func (l *ListingService) Products(params ProductParams) pipeline.Result[entities.Product] {
	var preds []pipeline.Predicate[entities.Product]
	if len(params.Categories) > 0 {
		preds = append(preds, pipeline.AnyValue(params.Categories, func(p entities.Product) entities.ProductCategory { return p.Category }))
	}
	if params.AvailableOnly {
		preds = append(preds, func(p entities.Product) bool { return p.Available })
	}

	var less func(a, b entities.Product) bool
	switch params.SortKey {
	case "name":
		less = func(a, b entities.Product) bool { return a.Name < b.Name }
	case "calories":
		less = func(a, b entities.Product) bool { return a.Nutrition.Calories < b.Nutrition.Calories }
	}

	return pipeline.Run(l.products.List(), preds, less, params.Page, l.pageSizeOr(params.PageSize))
}

// StoreParams are the facets and sort keys for the store locator surface.
// City is a substring facet: "Austin" matches any store whose city contains
// it, case-insensitively.
type StoreParams struct {
	Types    []entities.StoreType
	City     string
	SortKey  string // "name" | "city"; empty keeps catalog order
	Page     int
	PageSize int
}

// Stores derives one page of the store locator listing.
func (l *ListingService) Stores(params StoreParams) pipeline.Result[entities.Store] {
	var preds []pipeline.Predicate[entities.Store]
	if len(params.Types) > 0 {
		preds = append(preds, pipeline.AnyValue(params.Types, func(s entities.Store) entities.StoreType { return s.Type }))
	}
	if city := strings.ToLower(strings.TrimSpace(params.City)); city != "" {
		preds = append(preds, func(s entities.Store) bool {
			return strings.Contains(strings.ToLower(s.Address.City), city)
		})
	}

	var less func(a, b entities.Store) bool
	switch params.SortKey {
	case "name":
		less = func(a, b entities.Store) bool { return a.Name < b.Name }
	case "city":
		less = func(a, b entities.Store) bool { return a.Address.City < b.Address.City }
	}

	return pipeline.Run(l.stores.List(), preds, less, params.Page, l.pageSizeOr(params.PageSize))
}

// RecipeParams are the facets and sort keys for the recipe listing surface.
// DietaryTags is OR within the dimension: a recipe passes when it carries any
// selected tag.
type RecipeParams struct {
	Categories   []entities.RecipeCategory
	Difficulties []entities.Difficulty
	DietaryTags  []string
	FeaturedOnly bool
	SortKey      string // "prep-time" | "title" | "difficulty"; empty keeps catalog order
	Page         int
	PageSize     int
}

// Recipes derives one page of the recipe listing.
func (l *ListingService) Recipes(params RecipeParams) pipeline.Result[entities.Recipe] {
	var preds []pipeline.Predicate[entities.Recipe]
	if len(params.Categories) > 0 {
		preds = append(preds, pipeline.AnyValue(params.Categories, func(r entities.Recipe) entities.RecipeCategory { return r.Category }))
	}
	if len(params.Difficulties) > 0 {
		preds = append(preds, pipeline.AnyValue(params.Difficulties, func(r entities.Recipe) entities.Difficulty { return r.Difficulty }))
	}
	if len(params.DietaryTags) > 0 {
		wanted := make([]string, 0, len(params.DietaryTags))
		for _, tag := range params.DietaryTags {
			wanted = append(wanted, strings.ToLower(tag))
		}
		preds = append(preds, func(r entities.Recipe) bool {
			for _, have := range r.DietaryTags {
				for _, want := range wanted {
					if strings.ToLower(have) == want {
						return true
					}
				}
			}
			return false
		})
	}
	if params.FeaturedOnly {
		preds = append(preds, func(r entities.Recipe) bool { return r.Featured })
	}

	var less func(a, b entities.Recipe) bool
	switch params.SortKey {
	case "prep-time":
		less = func(a, b entities.Recipe) bool { return a.PrepTimeMinutes < b.PrepTimeMinutes }
	case "title":
		less = func(a, b entities.Recipe) bool { return a.Title < b.Title }
	case "difficulty":
		less = func(a, b entities.Recipe) bool {
			return entities.DifficultyRank(a.Difficulty) < entities.DifficultyRank(b.Difficulty)
		}
	}

	return pipeline.Run(l.recipes.List(), preds, less, params.Page, l.pageSizeOr(params.PageSize))
}

// FlavorNames resolves a recipe's flavor references to product names for
// display. Dangling ids are skipped; a recipe that references only retired
// products simply yields an empty list.
func (l *ListingService) FlavorNames(recipe entities.Recipe) []string {
	var names []string
	for _, id := range recipe.FlavorIDs {
		if p, err := l.products.GetByID(id); err == nil {
			names = append(names, p.Name)
		}
	}
	return names
}
