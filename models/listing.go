package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction types determine required import fields, the price field and
// the listing ID prefix.
const (
	TransactionSale     = "Sale"
	TransactionLease    = "Lease"
	TransactionHomeStay = "Home Stay"
)

// Listing is a persisted property listing. Inside this service listings are
// created by the bulk importer; they are never mutated by it afterwards.
type Listing struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ListingID       string    `gorm:"not null;uniqueIndex" json:"listing_id"` // e.g. SAL-VN-0001
	TransactionType string    `gorm:"not null;index" json:"transaction_type"`

	Title       LocalizedText `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	PropertyNo  LocalizedText `gorm:"embedded;embeddedPrefix:property_no_" json:"property_no"`
	Description LocalizedText `gorm:"embedded;embeddedPrefix:description_" json:"description"`

	ProjectID      *uuid.UUID `gorm:"type:uuid" json:"project_id"`
	ZoneID         *uuid.UUID `gorm:"type:uuid" json:"zone_id"`
	BlockID        *uuid.UUID `gorm:"type:uuid" json:"block_id"`
	PropertyTypeID *uuid.UUID `gorm:"type:uuid" json:"property_type_id"`
	CurrencyID     *uuid.UUID `gorm:"type:uuid" json:"currency_id"`
	FurnishingID   *uuid.UUID `gorm:"type:uuid" json:"furnishing_id"`
	FloorRangeID   *uuid.UUID `gorm:"type:uuid" json:"floor_range_id"`
	UnitID         *uuid.UUID `gorm:"type:uuid" json:"unit_id"`

	UnitSize  float64 `gorm:"default:0" json:"unit_size"`
	Bedrooms  int     `gorm:"default:0" json:"bedrooms"`
	Bathrooms int     `gorm:"default:0" json:"bathrooms"`

	SalePrice     float64 `gorm:"default:0" json:"sale_price"`
	LeasePrice    float64 `gorm:"default:0" json:"lease_price"`
	PricePerNight float64 `gorm:"default:0" json:"price_per_night"`

	AvailableFrom *time.Time `json:"available_from"`

	Status    string         `gorm:"default:'active'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
