package repositories

import (
	"github.com/scoopworks/creamery-backend/internal/domain/entities"
)

// ProductRepository defines read access to the product catalog. The catalog is
// a constant in-memory list, so every method is synchronous and side-effect free.
type ProductRepository interface {
	// GetByID retrieves a product by ID. A miss is a NotFound error, never a panic.
	GetByID(id string) (*entities.Product, error)

	// List returns the full catalog in its canonical order.
	List() []entities.Product

	// ListByCategory returns products in one category, in catalog order.
	ListByCategory(category entities.ProductCategory) []entities.Product

	// ListAvailable returns products currently flagged available.
	ListAvailable() []entities.Product

	// Search returns products whose name, description, category, tags or
	// ingredients contain the query as a case-insensitive substring. An empty
	// query matches every product; callers that need a minimum query length
	// must enforce it themselves.
	Search(query string) []entities.Product
}
