package models

import "time"

const (
	RoleDealer     = "dealer"
	RoleContractor = "contractor"
)

// User is append-only: created at registration, never updated or deleted.
// Email uniqueness is checked at registration time, not by the schema.
type User struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	Email string `gorm:"size:100;index;not null" json:"email"`

	// Stored and compared in clear text. Production deployments must
	// switch to a salted hash (see DESIGN.md).
	Password string `gorm:"size:100;not null" json:"-"`

	Phone string `gorm:"size:20" json:"phone"`
	Role  string `gorm:"size:20;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
}
