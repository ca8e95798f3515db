package profile

import (
	"github.com/matlynx/matlynx-api/internal/models"
	"github.com/matlynx/matlynx-api/internal/validators"
)

// ===============================
// Completeness
// ===============================

// IsComplete derives the completeness flag from the record's own fields.
// Dealers additionally need a shop name; contractors do not.
func IsComplete(p *models.Profile) bool {
	if p == nil {
		return false
	}

	hasBasicInfo := p.FullName != "" && p.Phone != "" && validators.IsValidPhone(p.Phone)

	hasAddress := p.Address.Area != "" &&
		p.Address.City != "" &&
		p.Address.State != "" &&
		p.Address.Pincode != ""

	hasDealerInfo := p.Role == models.RoleContractor || p.ShopName != ""

	return hasBasicInfo && hasAddress && hasDealerInfo
}
