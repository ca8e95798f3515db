package material

import (
	"context"

	domain "github.com/matlynx/matlynx-api/internal/domain/material"
	"github.com/matlynx/matlynx-api/internal/models"
)

// ListDealerMaterials returns a dealer's own listings, active or not.
type ListDealerMaterials struct {
	repo domain.Repository
}

func NewListDealerMaterials(repo domain.Repository) *ListDealerMaterials {
	return &ListDealerMaterials{repo: repo}
}

func (uc *ListDealerMaterials) Execute(
	ctx context.Context,
	dealerEmail string,
) ([]models.Material, error) {
	return uc.repo.ListByDealer(ctx, dealerEmail)
}

// BrowseMaterials is the contractor-facing view: active listings across all
// dealers, optionally filtered by a free-text query.
type BrowseMaterials struct {
	repo domain.Repository
}

func NewBrowseMaterials(repo domain.Repository) *BrowseMaterials {
	return &BrowseMaterials{repo: repo}
}

func (uc *BrowseMaterials) Execute(
	ctx context.Context,
	query string,
) ([]models.Material, error) {
	return uc.repo.ListActive(ctx, query)
}
