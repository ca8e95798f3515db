package material

import (
	"context"

	"github.com/matlynx/matlynx-api/internal/models"
)

type Repository interface {
	// -------- Listing --------
	ListByDealer(
		ctx context.Context,
		dealerEmail string,
	) ([]models.Material, error)

	ListActive(
		ctx context.Context,
		query string,
	) ([]models.Material, error)

	// -------- Lookup --------
	GetForDealer(
		ctx context.Context,
		id string,
		dealerEmail string,
	) (*models.Material, error)

	// Exists reports whether any dealer owns a listing with this id.
	Exists(
		ctx context.Context,
		id string,
	) (bool, error)

	// -------- Mutation --------
	Create(
		ctx context.Context,
		m *models.Material,
	) error

	Update(
		ctx context.Context,
		m *models.Material,
	) error

	Delete(
		ctx context.Context,
		id string,
		dealerEmail string,
	) error
}
