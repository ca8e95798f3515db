package material

import (
	"context"
	"time"

	"github.com/matlynx/matlynx-api/internal/audit"
	domain "github.com/matlynx/matlynx-api/internal/domain/material"
	"github.com/matlynx/matlynx-api/internal/models"
)

type ToggleMaterialActive struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewToggleMaterialActive(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ToggleMaterialActive {
	return &ToggleMaterialActive{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ToggleMaterialActive) Execute(
	ctx context.Context,
	id string,
	dealerEmail string,
) (*models.Material, error) {

	m, err := fetchOwned(ctx, uc.repo, id, dealerEmail)
	if err != nil {
		return nil, err
	}
	if m == nil {
		// Unknown id: nothing to flip.
		return nil, nil
	}

	domain.ToggleActive(m, time.Now().UTC())

	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserEmail: dealerEmail,
		Action:    "material_toggled",
		Entity:    "material",
		EntityID:  m.ID,
	})

	return m, nil
}
