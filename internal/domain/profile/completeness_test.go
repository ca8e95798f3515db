package profile

import (
	"math/rand"
	"testing"

	"github.com/matlynx/matlynx-api/internal/models"
	"github.com/matlynx/matlynx-api/internal/validators"
)

func TestIsCompleteNilProfile(t *testing.T) {
	if IsComplete(nil) {
		t.Fatal("nil profile must never be complete")
	}
}

func TestIsCompleteDealerNeedsShopName(t *testing.T) {
	p := fullProfile(models.RoleDealer)
	if !IsComplete(p) {
		t.Fatal("fully filled dealer profile must be complete")
	}

	p.ShopName = ""
	if IsComplete(p) {
		t.Fatal("dealer profile without shop name must be incomplete")
	}
}

func TestIsCompleteContractorExemptFromShopName(t *testing.T) {
	p := fullProfile(models.RoleContractor)
	p.ShopName = ""
	if !IsComplete(p) {
		t.Fatal("contractor profile must not require a shop name")
	}
}

func TestIsCompleteRejectsBadPhone(t *testing.T) {
	p := fullProfile(models.RoleContractor)
	p.Phone = "12345"
	if IsComplete(p) {
		t.Fatal("profile with a 5-digit phone must be incomplete")
	}
}

// Randomized field presence against an independent restatement of the rule.
func TestIsCompleteFormula(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	pick := func(value string) string {
		if rng.Intn(2) == 0 {
			return ""
		}
		return value
	}

	for i := 0; i < 500; i++ {
		role := models.RoleDealer
		if rng.Intn(2) == 0 {
			role = models.RoleContractor
		}

		phone := ""
		switch rng.Intn(3) {
		case 0:
			phone = "9876543210"
		case 1:
			phone = "1234"
		}

		p := &models.Profile{
			Role:     role,
			FullName: pick("Asha Kumar"),
			ShopName: pick("Kumar Traders"),
			Phone:    phone,
			Address: models.Address{
				Area:    pick("Whitefield"),
				City:    pick("Bengaluru"),
				State:   pick("Karnataka"),
				Pincode: pick("560066"),
			},
		}

		want := p.FullName != "" && p.Phone != "" && validators.IsValidPhone(p.Phone) &&
			p.Address.Area != "" && p.Address.City != "" &&
			p.Address.State != "" && p.Address.Pincode != "" &&
			(p.Role == models.RoleContractor || p.ShopName != "")

		if got := IsComplete(p); got != want {
			t.Fatalf("iteration %d: IsComplete = %v, want %v (profile %+v)", i, got, want, p)
		}
	}
}

func fullProfile(role string) *models.Profile {
	return &models.Profile{
		Role:     role,
		FullName: "Asha Kumar",
		ShopName: "Kumar Traders",
		Phone:    "9876543210",
		Address: models.Address{
			Street:  "12 MG Road",
			Area:    "Whitefield",
			City:    "Bengaluru",
			State:   "Karnataka",
			Pincode: "560066",
		},
	}
}
