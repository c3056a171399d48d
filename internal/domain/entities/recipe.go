package entities

// RecipeCategory is the closed set of dessert recipe categories.
type RecipeCategory string

const (
	RecipeCategoryMilkshakes RecipeCategory = "milkshakes"
	RecipeCategorySundaes    RecipeCategory = "sundaes"
	RecipeCategoryCakes      RecipeCategory = "cakes"
	RecipeCategoryAffogato   RecipeCategory = "affogato"
	RecipeCategorySandwiches RecipeCategory = "sandwiches"
)

// Difficulty is an ordinal recipe difficulty.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Recipe represents an editorial dessert recipe. FlavorIDs are weak references
// into the product catalog: they are resolved lazily for display and may point
// at retired products without that being an error.
type Recipe struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Category        RecipeCategory `json:"category"`
	Image           string         `json:"image"`
	PrepTimeMinutes int            `json:"prep_time_minutes"`
	Difficulty      Difficulty     `json:"difficulty"`
	Servings        int            `json:"servings"`
	FlavorIDs       []string       `json:"flavor_ids,omitempty"`
	DietaryTags     []string       `json:"dietary_tags,omitempty"`
	Featured        bool           `json:"featured"`
}

// DifficultyRank orders difficulties for sorting (easy < medium < hard).
// Unknown values sort last.
func DifficultyRank(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	}
	return 3
}
