package repositories

import (
	"github.com/scoopworks/creamery-backend/internal/domain/entities"
)

// StoreRepository defines read access to the retail store catalog.
type StoreRepository interface {
	// GetByID retrieves a store by ID. A miss is a NotFound error.
	GetByID(id string) (*entities.Store, error)

	// List returns the full store catalog in its canonical order.
	List() []entities.Store

	// ListByType returns stores of one type, in catalog order.
	ListByType(storeType entities.StoreType) []entities.Store

	// Search returns stores whose name, type, city, state, features or
	// available-product names contain the query as a case-insensitive
	// substring. An empty query matches every store.
	Search(query string) []entities.Store
}
