package services

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/scoopworks/creamery-backend/internal/domain/entities"
	"github.com/scoopworks/creamery-backend/internal/domain/repositories"
)

// MinQueryLength is the unified search's own guard: queries shorter than this
// after trimming return no results. The per-entity Search helpers stay
// permissive, so this guard is the only thing standing between an empty query
// and the entire catalog.
const MinQueryLength = 2

// SearchService fans a free-text query out across the product, store, recipe
// and page catalogs, scores every hit with a per-type weighted heuristic, and
// merges them into one ranked list. It performs no I/O and is deterministic
// for a fixed catalog and query.
type SearchService struct {
	products repositories.ProductRepository
	stores   repositories.StoreRepository
	recipes  repositories.RecipeRepository
	pages    repositories.PageRepository
}

// NewSearchService creates a unified search service over the four catalogs.
func NewSearchService(
	products repositories.ProductRepository,
	stores repositories.StoreRepository,
	recipes repositories.RecipeRepository,
	pages repositories.PageRepository,
) *SearchService {
	return &SearchService{
		products: products,
		stores:   stores,
		recipes:  recipes,
		pages:    pages,
	}
}

// SearchAll runs the unified search. Results come back sorted descending by
// score; ties keep the fan-out order (products, then stores, then recipes,
// then pages, each in catalog order). An unknown query yields an empty list,
// never an error.
func (s *SearchService) SearchAll(query string) []entities.SearchResult {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < MinQueryLength {
		return []entities.SearchResult{}
	}
	q := strings.ToLower(trimmed)

	var hits []scorer
	for _, p := range s.products.Search(query) {
		hits = append(hits, productHit{p})
	}
	for _, st := range s.stores.Search(query) {
		hits = append(hits, storeHit{st})
	}
	for _, r := range s.recipes.Search(query) {
		hits = append(hits, recipeHit{r})
	}
	// Pages have no entity-level search filter; they join the result set only
	// when their accumulated score is positive.
	for _, pg := range s.pages.List() {
		hit := pageHit{pg}
		if hit.score(q) > 0 {
			hits = append(hits, hit)
		}
	}

	results := make([]entities.SearchResult, 0, len(hits))
	for _, h := range hits {
		r := h.result()
		r.Score = h.score(q)
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// scorer is the closed variant behind the fan-out: each entity type scores
// itself against a normalized query and projects into a SearchResult, so the
// weighting lives next to the type instead of being duplicated per call site.
type scorer interface {
	score(q string) int
	result() entities.SearchResult
}

type productHit struct {
	p entities.Product
}

func (h productHit) score(q string) int {
	score := 0
	if containsFold(h.p.Name, q) {
		score += 10
	}
	if anyContainsFold(h.p.Tags, q) {
		score += 5
	}
	if containsFold(h.p.Description, q) {
		score += 3
	}
	if anyContainsFold(h.p.Ingredients, q) {
		score += 2
	}
	return score
}

func (h productHit) result() entities.SearchResult {
	return entities.SearchResult{
		ID:          h.p.ID,
		Type:        entities.ResultTypeProduct,
		Title:       h.p.Name,
		Description: h.p.Description,
		URL:         "/products/" + h.p.ID,
		Image:       h.p.Image,
		Category:    string(h.p.Category),
	}
}

type storeHit struct {
	s entities.Store
}

func (h storeHit) score(q string) int {
	score := 0
	if containsFold(h.s.Name, q) {
		score += 8
	}
	if containsFold(h.s.Address.City, q) {
		score += 6
	}
	if containsFold(h.s.Address.State, q) {
		score += 4
	}
	if anyContainsFold(h.s.Products, q) {
		score += 2
	}
	return score
}

func (h storeHit) result() entities.SearchResult {
	return entities.SearchResult{
		ID:          h.s.ID,
		Type:        entities.ResultTypeStore,
		Title:       h.s.Name,
		Description: h.s.Address.Street + ", " + h.s.Address.City + ", " + h.s.Address.State,
		URL:         "/stores/" + h.s.ID,
		Category:    string(h.s.Type),
	}
}

type recipeHit struct {
	r entities.Recipe
}

func (h recipeHit) score(q string) int {
	score := 0
	if containsFold(h.r.Title, q) {
		score += 10
	}
	if containsFold(string(h.r.Category), q) {
		score += 5
	}
	if containsFold(h.r.Description, q) {
		score += 3
	}
	if anyContainsFold(h.r.DietaryTags, q) {
		score += 4
	}
	// Difficulty is full-string equality, not substring.
	if strings.EqualFold(string(h.r.Difficulty), q) {
		score += 2
	}
	return score
}

func (h recipeHit) result() entities.SearchResult {
	return entities.SearchResult{
		ID:          h.r.ID,
		Type:        entities.ResultTypeRecipe,
		Title:       h.r.Title,
		Description: h.r.Description,
		URL:         "/recipes/" + h.r.ID,
		Image:       h.r.Image,
		Category:    string(h.r.Category),
	}
}

type pageHit struct {
	p entities.Page
}

func (h pageHit) score(q string) int {
	score := 0
	if containsFold(h.p.Title, q) {
		score += 8
	}
	if anyContainsFold(h.p.Keywords, q) {
		score += 5
	}
	if containsFold(h.p.Description, q) {
		score += 3
	}
	if containsFold(h.p.Content, q) {
		score += 2
	}
	return score
}

func (h pageHit) result() entities.SearchResult {
	return entities.SearchResult{
		ID:          h.p.ID,
		Type:        entities.ResultTypePage,
		Title:       h.p.Title,
		Description: h.p.Description,
		URL:         h.p.URL,
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

func anyContainsFold(list []string, substr string) bool {
	for _, s := range list {
		if containsFold(s, substr) {
			return true
		}
	}
	return false
}
