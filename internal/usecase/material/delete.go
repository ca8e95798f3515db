package material

import (
	"context"

	"github.com/matlynx/matlynx-api/internal/audit"
	domain "github.com/matlynx/matlynx-api/internal/domain/material"
)

type DeleteMaterial struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteMaterial(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteMaterial {
	return &DeleteMaterial{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteMaterial) Execute(
	ctx context.Context,
	id string,
	dealerEmail string,
) error {

	m, err := fetchOwned(ctx, uc.repo, id, dealerEmail)
	if err != nil {
		return err
	}
	if m == nil {
		// Unknown id: nothing to remove, no audit event.
		return nil
	}

	if err := uc.repo.Delete(ctx, id, dealerEmail); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserEmail: dealerEmail,
		Action:    "material_deleted",
		Entity:    "material",
		EntityID:  id,
	})

	return nil
}
