package entities

// StoreType is the closed set of retail store types.
type StoreType string

const (
	StoreTypeGrocery     StoreType = "grocery"
	StoreTypeBrandShop   StoreType = "haagen-dazs-shop"
	StoreTypeConvenience StoreType = "convenience"
	StoreTypeDepartment  StoreType = "department"
)

// Store represents a retail location carrying the brand. The canonical record
// never carries a per-query distance; see NearbyStore.
type Store struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Type        StoreType         `json:"type"`
	Address     Address           `json:"address"`
	Location    Location          `json:"location"`
	PhoneNumber string            `json:"phone_number"`
	Hours       map[string]string `json:"hours"`
	Features    []string          `json:"features,omitempty"`
	Products    []string          `json:"products"`
}

// Address represents a physical address
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// Location represents geographical coordinates
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearbyStore wraps a store with the distance from a query point. The wrapper
// keeps the derived field off the canonical Store record.
type NearbyStore struct {
	Store         Store   `json:"store"`
	DistanceMiles float64 `json:"distance_miles"`
}

// HoursOn returns the opening hours for a day ("monday".."sunday"), or false
// when no hours are recorded for that day.
func (s Store) HoursOn(day string) (string, bool) {
	h, ok := s.Hours[day]
	return h, ok
}
