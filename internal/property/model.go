// Package property provides the property sample model and generator.
package property

// Type is the usage class of a property.
type Type string

const (
	TypeResidential Type = "RESIDENTIAL"
	TypeCommercial  Type = "COMMERCIAL"
	TypeIndustrial  Type = "INDUSTRIAL"
	TypeLand        Type = "LAND"
)

// ValidTypes is the set of allowed property types.
var ValidTypes = []Type{TypeResidential, TypeCommercial, TypeIndustrial, TypeLand}

// IsValid checks if a property type is recognized.
func (t Type) IsValid() bool {
	for _, v := range ValidTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Status is the operational state of a property.
type Status string

const (
	StatusActive        Status = "ACTIVE"
	StatusInactive      Status = "INACTIVE"
	StatusMaintenance   Status = "MAINTENANCE"
	StatusListedForSale Status = "LISTED_FOR_SALE"
	StatusListedForRent Status = "LISTED_FOR_RENT"
)

// ValidStatuses is the set of allowed property statuses.
var ValidStatuses = []Status{
	StatusActive, StatusInactive, StatusMaintenance, StatusListedForSale, StatusListedForRent,
}

// IsValid checks if a property status is recognized.
func (s Status) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Label returns a human-readable label for the status.
func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusInactive:
		return "Inactive"
	case StatusMaintenance:
		return "Maintenance"
	case StatusListedForSale:
		return "Listed for sale"
	case StatusListedForRent:
		return "Listed for rent"
	default:
		return string(s)
	}
}

// Property is a sample building or plot in the portfolio.
type Property struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Type      Type   `json:"type"`
	Status    Status `json:"status"`
	Size      int    `json:"size"` // square feet
	YearBuilt int    `json:"yearBuilt"`
	Value     int    `json:"value"` // dollars
}
