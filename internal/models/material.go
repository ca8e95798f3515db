package models

import "time"

// Material is a dealer listing. The dealer_* columns are a snapshot of the
// owning user taken at creation time; later profile or user edits do not
// rewrite them.
type Material struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	DealerEmail string `gorm:"size:100;index" json:"dealer_email"`
	DealerName  string `gorm:"size:100" json:"dealer_name"`
	DealerPhone string `gorm:"size:20" json:"dealer_phone"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `gorm:"size:20" json:"unit"`
	Description string  `gorm:"size:255" json:"description"`
	ImageURL    string  `gorm:"type:text" json:"image_url,omitempty"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	PriceUpdatedAt  time.Time  `json:"price_updated_at"`
	PriceValidUntil *time.Time `json:"price_valid_until,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
