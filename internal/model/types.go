package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertyType categorizes a listing into one of the tracked categories.
type PropertyType string

const (
	TypeOffice    PropertyType = "Office"
	TypeShop      PropertyType = "Shop"
	TypeRetail    PropertyType = "Retail"
	TypeFactory   PropertyType = "Factory"
	TypeWarehouse PropertyType = "Warehouse"

	// TypeUnknown marks listings whose category could not be determined.
	TypeUnknown PropertyType = "Unknown"
)

// TrackedTypes is the set of categories the monitor recognizes.
var TrackedTypes = []PropertyType{TypeOffice, TypeShop, TypeRetail, TypeFactory, TypeWarehouse}

// IsValid reports whether the type is one of the tracked categories.
func (t PropertyType) IsValid() bool {
	for _, v := range TrackedTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Label returns a human-readable label for the type.
func (t PropertyType) Label() string {
	return string(t)
}

// Listing represents a single auction property entry as scraped from the source.
type Listing struct {
	ID           string       `json:"id"`            // Derived, see DeriveID
	Title        string       `json:"title"`         // Display title
	Price        string       `json:"price"`         // Raw reserve price (e.g. "RM351,000")
	PriceValue   float64      `json:"price_value"`   // Parsed price in RM, 0 if unparseable
	Location     string       `json:"location"`      // Area / state
	Size         string       `json:"size"`          // Raw size (e.g. "1,755 sq.ft")
	SizeSqft     float64      `json:"size_sqft"`     // Parsed size in sqft, 0 if unparseable
	AuctionDate  string       `json:"auction_date"`  // Raw auction date (e.g. "18 Sep 2025 (Thu)")
	PropertyType PropertyType `json:"property_type"` // Category
	URL          string       `json:"url"`           // Detail page URL
	FirstSeen    time.Time    `json:"first_seen"`    // First scan that saw this listing
	LastUpdated  time.Time    `json:"last_updated"`  // Most recent scan that saw it
}

// PricePoint is one entry in a listing's price history.
type PricePoint struct {
	Price string    `json:"price"`
	Date  time.Time `json:"date"`
}

// DatePoint is one entry in a listing's auction date history.
type DatePoint struct {
	AuctionDate string    `json:"auction_date"`
	Date        time.Time `json:"date"`
}

// StoredListing is the persisted form of a listing: the latest known state
// plus append-only per-field histories.
type StoredListing struct {
	Listing
	PriceHistory       []PricePoint `json:"price_history"`
	AuctionDateHistory []DatePoint  `json:"auction_date_history"`
}

// ChangeField identifies which listing field a change event records.
type ChangeField string

const (
	FieldPrice       ChangeField = "price"
	FieldAuctionDate ChangeField = "auction_date"
)

// Label returns a human-readable label for the field.
func (f ChangeField) Label() string {
	switch f {
	case FieldPrice:
		return "Auction Price"
	case FieldAuctionDate:
		return "Auction Date"
	default:
		return string(f)
	}
}

// ChangeEvent is a recorded delta for a previously seen listing.
// Events are append-only: never mutated or deleted once written.
type ChangeEvent struct {
	ID         uuid.UUID   `json:"id"`
	PropertyID string      `json:"property_id"`
	Title      string      `json:"title"`
	Field      ChangeField `json:"field"`
	OldValue   string      `json:"old_value"`
	NewValue   string      `json:"new_value"`
	ChangedAt  time.Time   `json:"changed_at"`
}

// ScanStats summarizes one monitor run.
type ScanStats struct {
	Date              time.Time `json:"date"`
	TotalListings     int       `json:"total_listings"`     // Listings available this scan
	TotalTracked      int       `json:"total_tracked"`      // Properties in the database
	NewListings       int       `json:"new_listings"`       // First seen this scan
	ChangedProperties int       `json:"changed_properties"` // Properties with >=1 change
	NewListingIDs     []string  `json:"new_listing_ids"`    // IDs of listings first seen this scan
}

// ScanProgress records how the fetch itself went.
type ScanProgress struct {
	PagesCompleted      int     `json:"pages_completed"`
	TotalPages          int     `json:"total_pages"`
	PropertiesExtracted int     `json:"properties_extracted"`
	DuplicatesSkipped   int     `json:"duplicates_skipped"`
	SuccessRate         float64 `json:"success_rate"`        // extracted / (extracted + skipped cards), percent
	CoveragePercentage  float64 `json:"coverage_percentage"` // pages completed / total pages, percent
}
