package models

// ListingCounter holds the last issued sequence number per listing ID
// prefix (SAL-VN-, LSE-VN-, ...). Incrementing the counter inside the same
// transaction that inserts the listing replaces the old scan-all-listings
// allocation and its read-then-write race; the unique index on
// listings.listing_id backstops any residual collision.
type ListingCounter struct {
	Prefix string `gorm:"primary_key" json:"prefix"`
	Seq    int64  `gorm:"not null;default:0" json:"seq"`
}
