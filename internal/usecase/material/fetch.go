package material

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/matlynx/matlynx-api/internal/domain/material"
	"github.com/matlynx/matlynx-api/internal/httperr"
	"github.com/matlynx/matlynx-api/internal/models"
)

// fetchOwned resolves an id for mutation. An id that exists nowhere is a
// silent no-op, reported as (nil, nil); an id owned by another dealer comes
// back as material_not_found.
func fetchOwned(
	ctx context.Context,
	repo domain.Repository,
	id string,
	dealerEmail string,
) (*models.Material, error) {

	m, err := repo.GetForDealer(ctx, id, dealerEmail)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("material_not_found")
	}
	return nil, nil
}
