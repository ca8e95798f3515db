package models

import "time"

type Address struct {
	Street  string `gorm:"size:255" json:"street"`
	Area    string `gorm:"size:100" json:"area"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:100" json:"state"`
	Pincode string `gorm:"size:10" json:"pincode"`
}

// Profile is the supplementary record behind the profile-setup flow.
// UserID is the owning user's email; at most one profile exists per user.
type Profile struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"size:100;index;not null" json:"user_id"`

	FullName string `gorm:"size:100" json:"full_name"`
	Role     string `gorm:"size:20;not null" json:"role"`

	ShopName    string `gorm:"size:100" json:"shop_name,omitempty"`
	CompanyName string `gorm:"size:100" json:"company_name,omitempty"`

	Phone    string `gorm:"size:20" json:"phone"`
	Whatsapp string `gorm:"size:20" json:"whatsapp,omitempty"`

	Address Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	ProfilePhoto string `gorm:"type:text" json:"profile_photo,omitempty"`

	// Recomputed on every save; responses recompute it from the
	// stored fields so it can never drift from them.
	IsComplete bool `json:"is_complete"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
