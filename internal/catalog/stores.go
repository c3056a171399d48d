package catalog

import (
	"github.com/scoopworks/creamery-backend/internal/domain/entities"
	"github.com/scoopworks/creamery-backend/internal/domain/repositories"
	apperrors "github.com/scoopworks/creamery-backend/pkg/errors"
)

// StoreCatalog implements StoreRepository over the constant store list.
type StoreCatalog struct {
	stores []entities.Store
}

// NewStoreCatalog creates a store catalog backed by the built-in fixtures.
func NewStoreCatalog() repositories.StoreRepository {
	return &StoreCatalog{stores: stores}
}

// NewStoreCatalogWith creates a store catalog over an explicit list.
func NewStoreCatalogWith(list []entities.Store) repositories.StoreRepository {
	return &StoreCatalog{stores: list}
}

// GetByID retrieves a store by ID
func (c *StoreCatalog) GetByID(id string) (*entities.Store, error) {
	for i := range c.stores {
		if c.stores[i].ID == id {
			s := c.stores[i]
			return &s, nil
		}
	}
	return nil, apperrors.NewNotFoundError("store not found: " + id)
}

// List returns the full store catalog in canonical order
func (c *StoreCatalog) List() []entities.Store {
	out := make([]entities.Store, len(c.stores))
	copy(out, c.stores)
	return out
}

// ListByType returns stores of one type, in catalog order
func (c *StoreCatalog) ListByType(storeType entities.StoreType) []entities.Store {
	var out []entities.Store
	for _, s := range c.stores {
		if s.Type == storeType {
			out = append(out, s)
		}
	}
	return out
}

// Search returns stores matching the query as a case-insensitive substring of
// name, type, city, state, any feature, or any carried product name. An empty
// query matches every store.
func (c *StoreCatalog) Search(query string) []entities.Store {
	q := normalizeQuery(query)
	var out []entities.Store
	for _, s := range c.stores {
		if containsFold(s.Name, q) ||
			containsFold(string(s.Type), q) ||
			containsFold(s.Address.City, q) ||
			containsFold(s.Address.State, q) ||
			anyContainsFold(s.Features, q) ||
			anyContainsFold(s.Products, q) {
			out = append(out, s)
		}
	}
	return out
}

var weekHours = map[string]string{
	"monday":    "10:00-21:00",
	"tuesday":   "10:00-21:00",
	"wednesday": "10:00-21:00",
	"thursday":  "10:00-21:00",
	"friday":    "10:00-22:00",
	"saturday":  "10:00-22:00",
	"sunday":    "11:00-20:00",
}

var stores = []entities.Store{
	{
		ID:   "heb-austin-mueller",
		Name: "HEB Austin Mueller",
		Type: entities.StoreTypeGrocery,
		Address: entities.Address{
			Street: "1801 E 51st St", City: "Austin", State: "TX", ZipCode: "78723", Country: "USA",
		},
		Location:    entities.Location{Latitude: 30.2993, Longitude: -97.7049},
		PhoneNumber: "+1-512-479-4600",
		Hours:       weekHours,
		Features:    []string{"parking", "curbside-pickup", "full-freezer-aisle"},
		Products:    []string{"Vanilla", "Chocolate", "Dulce de Leche", "Cookies & Cream", "Vanilla Milk Chocolate Almond Bar"},
	},
	{
		ID:   "haagen-dazs-shop-the-domain",
		Name: "Häagen-Dazs Shop The Domain",
		Type: entities.StoreTypeBrandShop,
		Address: entities.Address{
			Street: "11410 Century Oaks Terrace", City: "Austin", State: "TX", ZipCode: "78758", Country: "USA",
		},
		Location:    entities.Location{Latitude: 30.4019, Longitude: -97.7235},
		PhoneNumber: "+1-512-832-0063",
		Hours:       weekHours,
		Features:    []string{"scoop-counter", "cakes-to-order", "outdoor-seating"},
		Products:    []string{"Vanilla", "Chocolate", "Strawberry", "Coffee", "Mango", "Vanilla Celebration Cake"},
	},
	{
		ID:   "7-eleven-south-congress",
		Name: "7-Eleven South Congress",
		Type: entities.StoreTypeConvenience,
		Address: entities.Address{
			Street: "1600 S Congress Ave", City: "Austin", State: "TX", ZipCode: "78704", Country: "USA",
		},
		Location:    entities.Location{Latitude: 30.2496, Longitude: -97.7495},
		PhoneNumber: "+1-512-444-0712",
		Hours:       allDayHours,
		Features:    []string{"open-24-hours"},
		Products:    []string{"Vanilla Mini Cup", "Vanilla Milk Chocolate Almond Bar", "Coffee Almond Crunch Bar"},
	},
	{
		ID:   "whole-foods-midtown-houston",
		Name: "Whole Foods Market Midtown Houston",
		Type: entities.StoreTypeGrocery,
		Address: entities.Address{
			Street: "2929 Smith St", City: "Houston", State: "TX", ZipCode: "77006", Country: "USA",
		},
		Location:    entities.Location{Latitude: 29.7408, Longitude: -95.3902},
		PhoneNumber: "+1-713-285-0707",
		Hours:       weekHours,
		Features:    []string{"parking", "full-freezer-aisle"},
		Products:    []string{"Vanilla", "Strawberry", "Non-Dairy Chocolate Fudge", "Non-Dairy Mocha Fudge"},
	},
	{
		ID:   "central-market-dallas",
		Name: "Central Market Lovers Lane",
		Type: entities.StoreTypeGrocery,
		Address: entities.Address{
			Street: "5750 E Lovers Ln", City: "Dallas", State: "TX", ZipCode: "75206", Country: "USA",
		},
		Location:    entities.Location{Latitude: 32.8450, Longitude: -96.7693},
		PhoneNumber: "+1-214-234-7000",
		Hours:       weekHours,
		Features:    []string{"parking", "curbside-pickup"},
		Products:    []string{"Vanilla", "Chocolate", "Coffee", "Dulce de Leche"},
	},
	{
		ID:   "haagen-dazs-shop-times-square",
		Name: "Häagen-Dazs Shop Times Square",
		Type: entities.StoreTypeBrandShop,
		Address: entities.Address{
			Street: "1500 Broadway", City: "New York", State: "NY", ZipCode: "10036", Country: "USA",
		},
		Location:    entities.Location{Latitude: 40.7580, Longitude: -73.9855},
		PhoneNumber: "+1-212-398-0110",
		Hours:       weekHours,
		Features:    []string{"scoop-counter", "milkshake-bar"},
		Products:    []string{"Vanilla", "Chocolate", "Strawberry", "Dulce de Leche", "Cookies & Cream"},
	},
	{
		ID:   "macys-herald-square",
		Name: "Macy's Herald Square",
		Type: entities.StoreTypeDepartment,
		Address: entities.Address{
			Street: "151 W 34th St", City: "New York", State: "NY", ZipCode: "10001", Country: "USA",
		},
		Location:    entities.Location{Latitude: 40.7508, Longitude: -73.9887},
		PhoneNumber: "+1-212-695-4400",
		Hours:       weekHours,
		Features:    []string{"in-store-cafe"},
		Products:    []string{"Vanilla Mini Cup", "Vanilla Celebration Cake"},
	},
	{
		ID:   "erewhon-santa-monica",
		Name: "Erewhon Santa Monica",
		Type: entities.StoreTypeGrocery,
		Address: entities.Address{
			Street: "2800 Wilshire Blvd", City: "Santa Monica", State: "CA", ZipCode: "90403", Country: "USA",
		},
		Location:    entities.Location{Latitude: 34.0358, Longitude: -118.4792},
		PhoneNumber: "+1-310-586-4900",
		Hours:       weekHours,
		Features:    []string{"parking", "organic-focus"},
		Products:    []string{"Non-Dairy Chocolate Fudge", "Non-Dairy Mocha Fudge", "Mango"},
	},
}

var allDayHours = map[string]string{
	"monday":    "00:00-24:00",
	"tuesday":   "00:00-24:00",
	"wednesday": "00:00-24:00",
	"thursday":  "00:00-24:00",
	"friday":    "00:00-24:00",
	"saturday":  "00:00-24:00",
	"sunday":    "00:00-24:00",
}
