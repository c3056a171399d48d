package catalog

import (
	"github.com/scoopworks/creamery-backend/internal/domain/entities"
	"github.com/scoopworks/creamery-backend/internal/domain/repositories"
	apperrors "github.com/scoopworks/creamery-backend/pkg/errors"
)

// ProductCatalog implements ProductRepository over the constant product list.
type ProductCatalog struct {
	products []entities.Product
}

// NewProductCatalog creates a product catalog backed by the built-in fixtures.
func NewProductCatalog() repositories.ProductRepository {
	return &ProductCatalog{products: products}
}

// NewProductCatalogWith creates a product catalog over an explicit list.
func NewProductCatalogWith(list []entities.Product) repositories.ProductRepository {
	return &ProductCatalog{products: list}
}

// GetByID retrieves a product by ID
func (c *ProductCatalog) GetByID(id string) (*entities.Product, error) {
	for i := range c.products {
		if c.products[i].ID == id {
			p := c.products[i]
			return &p, nil
		}
	}
	return nil, apperrors.NewNotFoundError("product not found: " + id)
}

// List returns the full catalog in canonical order
func (c *ProductCatalog) List() []entities.Product {
	out := make([]entities.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ListByCategory returns products in one category, in catalog order
func (c *ProductCatalog) ListByCategory(category entities.ProductCategory) []entities.Product {
	var out []entities.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ListAvailable returns products currently flagged available
func (c *ProductCatalog) ListAvailable() []entities.Product {
	var out []entities.Product
	for _, p := range c.products {
		if p.Available {
			out = append(out, p)
		}
	}
	return out
}

// Search returns products matching the query as a case-insensitive substring
// of name, description, category, any tag, or any ingredient. An empty query
// matches every product; the unified search guards query length.
func (c *ProductCatalog) Search(query string) []entities.Product {
	q := normalizeQuery(query)
	var out []entities.Product
	for _, p := range c.products {
		if containsFold(p.Name, q) ||
			containsFold(p.Description, q) ||
			containsFold(string(p.Category), q) ||
			anyContainsFold(p.Tags, q) ||
			anyContainsFold(p.Ingredients, q) {
			out = append(out, p)
		}
	}
	return out
}

var products = []entities.Product{
	{
		ID:          "vanilla",
		Name:        "Vanilla",
		Category:    entities.CategoryIceCream,
		Description: "Sweet cream and pure vanilla extract churned into our signature dense, velvety ice cream.",
		Image:       "/images/products/vanilla.jpg",
		Ingredients: []string{"cream", "skim milk", "cane sugar", "egg yolks", "vanilla extract"},
		Nutrition:   entities.Nutrition{Calories: 250, Fat: 17, Sugar: 19, Protein: 4},
		Tags:        []string{"classic", "bestseller", "gluten-free"},
		Available:   true,
	},
	{
		ID:          "chocolate",
		Name:        "Chocolate",
		Category:    entities.CategoryIceCream,
		Description: "Rich Belgian cocoa blended with sweet cream for a deep, satisfying chocolate experience.",
		Image:       "/images/products/chocolate.jpg",
		Ingredients: []string{"cream", "skim milk", "cane sugar", "cocoa processed with alkali", "egg yolks", "vanilla extract"},
		Nutrition:   entities.Nutrition{Calories: 260, Fat: 17, Sugar: 21, Protein: 5},
		Tags:        []string{"classic", "gluten-free"},
		Available:   true,
	},
	{
		ID:          "strawberry",
		Name:        "Strawberry",
		Category:    entities.CategoryIceCream,
		Description: "Sun-ripened strawberries folded into sweet cream, with real fruit pieces in every scoop.",
		Image:       "/images/products/strawberry.jpg",
		Ingredients: []string{"cream", "skim milk", "strawberries", "cane sugar", "egg yolks"},
		Nutrition:   entities.Nutrition{Calories: 230, Fat: 15, Sugar: 20, Protein: 4},
		Tags:        []string{"classic", "fruit", "gluten-free"},
		Available:   true,
	},
	{
		ID:          "coffee",
		Name:        "Coffee",
		Category:    entities.CategoryIceCream,
		Description: "Brewed Brazilian coffee swirled into sweet cream for a smooth, roasted finish.",
		Image:       "/images/products/coffee.jpg",
		Ingredients: []string{"cream", "skim milk", "cane sugar", "coffee", "egg yolks"},
		Nutrition:   entities.Nutrition{Calories: 250, Fat: 17, Sugar: 19, Protein: 4},
		Tags:        []string{"classic", "gluten-free"},
		Available:   true,
	},
	{
		ID:          "dulce-de-leche",
		Name:        "Dulce de Leche",
		Category:    entities.CategoryIceCream,
		Description: "Caramel ice cream laced with thick ribbons of golden dulce de leche.",
		Image:       "/images/products/dulce-de-leche.jpg",
		Ingredients: []string{"cream", "skim milk", "sweetened condensed milk", "cane sugar", "egg yolks"},
		Nutrition:   entities.Nutrition{Calories: 280, Fat: 16, Sugar: 26, Protein: 5},
		Tags:        []string{"caramel", "bestseller"},
		Available:   true,
	},
	{
		ID:          "mango",
		Name:        "Mango",
		Category:    entities.CategoryIceCream,
		Description: "Alphonso mango puree swirled through sweet cream for a bright tropical scoop.",
		Image:       "/images/products/mango.jpg",
		Ingredients: []string{"cream", "skim milk", "mango", "cane sugar", "egg yolks"},
		Nutrition:   entities.Nutrition{Calories: 220, Fat: 13, Sugar: 24, Protein: 3},
		Tags:        []string{"fruit", "seasonal", "gluten-free"},
		Available:   true,
	},
	{
		ID:          "cookies-and-cream",
		Name:        "Cookies & Cream",
		Category:    entities.CategoryIceCream,
		Description: "Chocolate cookie pieces folded into our vanilla bean sweet cream base.",
		Image:       "/images/products/cookies-and-cream.jpg",
		Ingredients: []string{"cream", "skim milk", "cane sugar", "chocolate cookies", "egg yolks", "vanilla extract"},
		Nutrition:   entities.Nutrition{Calories: 270, Fat: 16, Sugar: 22, Protein: 5},
		Tags:        []string{"bestseller"},
		Available:   true,
	},
	{
		ID:          "vanilla-milk-chocolate-almond-bar",
		Name:        "Vanilla Milk Chocolate Almond Bar",
		Category:    entities.CategoryBars,
		Description: "Vanilla ice cream dipped in milk chocolate and roasted almonds on a stick.",
		Image:       "/images/products/vanilla-almond-bar.jpg",
		Ingredients: []string{"cream", "skim milk", "milk chocolate", "almonds", "cane sugar", "egg yolks", "vanilla extract"},
		Nutrition:   entities.Nutrition{Calories: 300, Fat: 21, Sugar: 22, Protein: 5},
		Tags:        []string{"bar", "on-the-go"},
		Available:   true,
	},
	{
		ID:          "coffee-almond-crunch-bar",
		Name:        "Coffee Almond Crunch Bar",
		Category:    entities.CategoryBars,
		Description: "Coffee ice cream coated in dark chocolate, toffee crunch and almond pieces.",
		Image:       "/images/products/coffee-almond-bar.jpg",
		Ingredients: []string{"cream", "skim milk", "coffee", "dark chocolate", "almonds", "toffee", "cane sugar"},
		Nutrition:   entities.Nutrition{Calories: 310, Fat: 22, Sugar: 23, Protein: 5},
		Tags:        []string{"bar", "on-the-go"},
		Available:   true,
	},
	{
		ID:          "vanilla-mini-cup",
		Name:        "Vanilla Mini Cup",
		Category:    entities.CategoryMiniCups,
		Description: "Our signature vanilla in a perfectly portioned mini cup with its own spoon.",
		Image:       "/images/products/vanilla-mini-cup.jpg",
		Ingredients: []string{"cream", "skim milk", "cane sugar", "egg yolks", "vanilla extract"},
		Nutrition:   entities.Nutrition{Calories: 120, Fat: 8, Sugar: 9, Protein: 2},
		Tags:        []string{"mini", "portion-control", "gluten-free"},
		Available:   true,
	},
	{
		ID:          "non-dairy-chocolate-fudge",
		Name:        "Non-Dairy Chocolate Fudge",
		Category:    entities.CategoryNonDairy,
		Description: "A plant-based take on chocolate fudge, churned from oat milk and Belgian cocoa.",
		Image:       "/images/products/non-dairy-chocolate-fudge.jpg",
		Ingredients: []string{"oat milk", "cane sugar", "cocoa processed with alkali", "coconut oil", "fudge swirl"},
		Nutrition:   entities.Nutrition{Calories: 230, Fat: 12, Sugar: 25, Protein: 2},
		Tags:        []string{"vegan", "dairy-free", "plant-based"},
		Available:   true,
	},
	{
		ID:          "non-dairy-mocha-fudge",
		Name:        "Non-Dairy Mocha Fudge",
		Category:    entities.CategoryNonDairy,
		Description: "Plant-based coffee and chocolate fudge swirl, no dairy and all indulgence.",
		Image:       "/images/products/non-dairy-mocha-fudge.jpg",
		Ingredients: []string{"oat milk", "cane sugar", "coffee", "cocoa processed with alkali", "coconut oil"},
		Nutrition:   entities.Nutrition{Calories: 240, Fat: 12, Sugar: 26, Protein: 2},
		Tags:        []string{"vegan", "dairy-free", "plant-based"},
		Available:   true,
	},
	{
		ID:          "vanilla-ice-cream-cake",
		Name:        "Vanilla Celebration Cake",
		Category:    entities.CategoryCakes,
		Description: "Layers of vanilla ice cream and chocolate crunch, finished with whipped frosting.",
		Image:       "/images/products/vanilla-cake.jpg",
		Ingredients: []string{"cream", "skim milk", "cane sugar", "chocolate crunch", "egg yolks", "vanilla extract", "wheat flour"},
		Nutrition:   entities.Nutrition{Calories: 330, Fat: 19, Sugar: 31, Protein: 5},
		Tags:        []string{"celebration", "sharing"},
		Available:   true,
	},
	{
		ID:          "green-tea",
		Name:        "Green Tea",
		Category:    entities.CategoryIceCream,
		Description: "Earthy matcha green tea balanced with sweet cream for a delicate finish.",
		Image:       "/images/products/green-tea.jpg",
		Ingredients: []string{"cream", "skim milk", "cane sugar", "green tea", "egg yolks"},
		Nutrition:   entities.Nutrition{Calories: 240, Fat: 16, Sugar: 20, Protein: 4},
		Tags:        []string{"matcha", "gluten-free"},
		Available:   false,
	},
}
