package dto

import (
	"strings"
	"time"

	"github.com/matlynx/matlynx-api/internal/models"
)

// MaterialListingDTO is the contractor-facing shape of a listing, with the
// dealer contact links the cards render.
type MaterialListingDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url,omitempty"`

	DealerName  string `json:"dealer_name"`
	DealerPhone string `json:"dealer_phone"`
	CallLink    string `json:"call_link"`
	WhatsappURL string `json:"whatsapp_url"`

	PriceUpdatedAt  time.Time  `json:"price_updated_at"`
	PriceValidUntil *time.Time `json:"price_valid_until,omitempty"`
}

func NewMaterialListingDTO(m models.Material) MaterialListingDTO {
	return MaterialListingDTO{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Quantity:    m.Quantity,
		Unit:        m.Unit,
		Description: m.Description,
		ImageURL:    m.ImageURL,

		DealerName:  m.DealerName,
		DealerPhone: m.DealerPhone,
		CallLink:    "tel:" + m.DealerPhone,
		WhatsappURL: "https://wa.me/" + digitsOnly(m.DealerPhone),

		PriceUpdatedAt:  m.PriceUpdatedAt,
		PriceValidUntil: m.PriceValidUntil,
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
