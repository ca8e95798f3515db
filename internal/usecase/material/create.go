package material

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matlynx/matlynx-api/internal/audit"
	domain "github.com/matlynx/matlynx-api/internal/domain/material"
	"github.com/matlynx/matlynx-api/internal/httperr"
	"github.com/matlynx/matlynx-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateMaterialInput struct {
	DealerEmail string
	DealerName  string
	DealerPhone string

	Name        string
	Price       float64
	Quantity    float64
	Unit        string
	Description string
	ImageURL    string

	PriceValidUntil *time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateMaterial struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateMaterial(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateMaterial {
	return &CreateMaterial{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateMaterial) Execute(
	ctx context.Context,
	in CreateMaterialInput,
) (*models.Material, error) {

	if !domain.IsValidUnit(in.Unit) {
		return nil, httperr.ErrBusiness("invalid_unit")
	}
	if in.Price <= 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}
	if in.Quantity <= 0 {
		return nil, httperr.ErrBusiness("invalid_quantity")
	}

	now := time.Now().UTC()

	// The dealer_* fields freeze the owner's contact data at creation time.
	m := &models.Material{
		ID: uuid.NewString(),

		DealerEmail: in.DealerEmail,
		DealerName:  in.DealerName,
		DealerPhone: in.DealerPhone,

		Name:        in.Name,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		Description: in.Description,
		ImageURL:    in.ImageURL,

		IsActive: true,

		PriceUpdatedAt:  now,
		PriceValidUntil: in.PriceValidUntil,

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserEmail: in.DealerEmail,
		Action:    "material_created",
		Entity:    "material",
		EntityID:  m.ID,
	})

	return m, nil
}
