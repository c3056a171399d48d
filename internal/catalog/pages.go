package catalog

import (
	"github.com/scoopworks/creamery-backend/internal/domain/entities"
	"github.com/scoopworks/creamery-backend/internal/domain/repositories"
)

// PageCatalog implements PageRepository over the static page descriptors.
type PageCatalog struct {
	pages []entities.Page
}

// NewPageCatalog creates a page catalog backed by the built-in descriptors.
func NewPageCatalog() repositories.PageRepository {
	return &PageCatalog{pages: pages}
}

// NewPageCatalogWith creates a page catalog over an explicit list.
func NewPageCatalogWith(list []entities.Page) repositories.PageRepository {
	return &PageCatalog{pages: list}
}

// List returns all page descriptors in canonical order
func (c *PageCatalog) List() []entities.Page {
	out := make([]entities.Page, len(c.pages))
	copy(out, c.pages)
	return out
}

var pages = []entities.Page{
	{
		ID:          "our-story",
		Title:       "Our Story",
		Description: "How a small Bronx shop grew into a premium ice cream brand.",
		URL:         "/about/our-story",
		Keywords:    []string{"about", "history", "heritage", "craft"},
		Content:     "From the first batch of vanilla in 1960, our founders set out to make the richest ice cream possible from the finest ingredients.",
	},
	{
		ID:          "nutrition",
		Title:       "Nutrition Information",
		Description: "Per-serving nutrition facts and allergen information for every product.",
		URL:         "/nutrition",
		Keywords:    []string{"nutrition", "calories", "allergens", "ingredients"},
		Content:     "Full nutrition tables covering calories, fat, sugar and protein, plus allergen statements for milk, egg, nuts and wheat.",
	},
	{
		ID:          "store-locator",
		Title:       "Store Locator",
		Description: "Find shops and retailers carrying our products near you.",
		URL:         "/stores",
		Keywords:    []string{"stores", "locations", "near me", "shops"},
		Content:     "Search by city or share your location to find the nearest scoop shop, grocery or convenience store.",
	},
	{
		ID:          "recipes",
		Title:       "Recipes",
		Description: "Milkshakes, sundaes, affogato and more, built on our flavors.",
		URL:         "/recipes",
		Keywords:    []string{"recipes", "milkshake", "sundae", "dessert"},
		Content:     "Editorial dessert recipes from our test kitchen, from five-minute shakes to layered ice cream cakes.",
	},
	{
		ID:          "accessibility",
		Title:       "Accessibility",
		Description: "Our commitment to an accessible website for all visitors.",
		URL:         "/accessibility",
		Keywords:    []string{"accessibility", "a11y", "screen reader"},
		Content:     "Display preferences, keyboard navigation and screen reader support across the site.",
	},
	{
		ID:          "contact",
		Title:       "Contact Us",
		Description: "Questions, feedback or wholesale inquiries.",
		URL:         "/contact",
		Keywords:    []string{"contact", "support", "feedback"},
		Content:     "Reach our consumer care team by form or phone, Monday through Friday.",
	},
}
