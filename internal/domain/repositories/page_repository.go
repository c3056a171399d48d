package repositories

import (
	"github.com/scoopworks/creamery-backend/internal/domain/entities"
)

// PageRepository defines read access to the static site-page descriptors used
// by the unified search.
type PageRepository interface {
	// List returns all page descriptors in their canonical order.
	List() []entities.Page
}
