package material

import (
	"context"
	"time"

	"github.com/matlynx/matlynx-api/internal/audit"
	domain "github.com/matlynx/matlynx-api/internal/domain/material"
	"github.com/matlynx/matlynx-api/internal/httperr"
	"github.com/matlynx/matlynx-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateMaterialInput struct {
	ID          string
	DealerEmail string

	Name        *string
	Price       *float64
	Quantity    *float64
	Unit        *string
	Description *string
	ImageURL    *string

	PriceValidUntil *time.Time
}

// ======================================================
// USE CASE
// ======================================================

type UpdateMaterial struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateMaterial(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateMaterial {
	return &UpdateMaterial{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateMaterial) Execute(
	ctx context.Context,
	in UpdateMaterialInput,
) (*models.Material, error) {

	m, err := fetchOwned(ctx, uc.repo, in.ID, in.DealerEmail)
	if err != nil {
		return nil, err
	}
	if m == nil {
		// Unknown id: nothing to merge.
		return nil, nil
	}

	now := time.Now().UTC()

	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, httperr.ErrBusiness("invalid_price")
		}
		domain.SetPrice(m, *in.Price, now)
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, httperr.ErrBusiness("invalid_quantity")
		}
		m.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		if !domain.IsValidUnit(*in.Unit) {
			return nil, httperr.ErrBusiness("invalid_unit")
		}
		m.Unit = *in.Unit
	}
	if in.Description != nil {
		m.Description = *in.Description
	}
	if in.ImageURL != nil {
		m.ImageURL = *in.ImageURL
	}
	if in.PriceValidUntil != nil {
		m.PriceValidUntil = in.PriceValidUntil
	}

	m.UpdatedAt = now

	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserEmail: in.DealerEmail,
		Action:    "material_updated",
		Entity:    "material",
		EntityID:  m.ID,
	})

	return m, nil
}
