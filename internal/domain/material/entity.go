package material

import (
	"time"

	"github.com/matlynx/matlynx-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ToggleActive flips the listing's visibility and stamps the update.
func ToggleActive(m *models.Material, now time.Time) {
	m.IsActive = !m.IsActive
	m.UpdatedAt = now
}

// SetPrice records a new price and refreshes the price freshness stamp.
func SetPrice(m *models.Material, price float64, now time.Time) {
	m.Price = price
	m.PriceUpdatedAt = now
}
