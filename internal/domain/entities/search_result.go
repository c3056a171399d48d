package entities

// ResultType identifies which catalog an aggregated search hit came from.
type ResultType string

const (
	ResultTypeProduct ResultType = "product"
	ResultTypeStore   ResultType = "store"
	ResultTypePage    ResultType = "page"
	ResultTypeRecipe  ResultType = "recipe"
)

// SearchResult is the aggregated search payload returned to the UI. It is
// derived per query and never cached; the producer returns results sorted
// descending by Score, the type itself carries no ordering guarantee.
type SearchResult struct {
	ID          string     `json:"id"`
	Type        ResultType `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Image       string     `json:"image,omitempty"`
	Category    string     `json:"category,omitempty"`
	Score       int        `json:"score"`
}
