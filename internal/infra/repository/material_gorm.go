package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/matlynx/matlynx-api/internal/models"
)

type MaterialGormRepository struct {
	db *gorm.DB
}

func NewMaterialGormRepository(db *gorm.DB) *MaterialGormRepository {
	return &MaterialGormRepository{db: db}
}

// ListByDealer returns the dealer's own listings in insertion order.
func (r *MaterialGormRepository) ListByDealer(
	ctx context.Context,
	dealerEmail string,
) ([]models.Material, error) {

	var materials []models.Material
	err := r.db.WithContext(ctx).
		Where("dealer_email = ?", dealerEmail).
		Order("created_at ASC").
		Find(&materials).Error

	return materials, err
}

// ListActive returns active listings across all dealers, insertion order.
// A non-empty query filters name, description and dealer name with the same
// linear-scan semantics the marketplace search has always had.
func (r *MaterialGormRepository) ListActive(
	ctx context.Context,
	query string,
) ([]models.Material, error) {

	q := r.db.WithContext(ctx).
		Where("is_active = ?", true)

	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(dealer_name) LIKE ?",
			like, like, like,
		)
	}

	var materials []models.Material
	err := q.
		Order("created_at ASC").
		Find(&materials).Error

	return materials, err
}

func (r *MaterialGormRepository) GetForDealer(
	ctx context.Context,
	id string,
	dealerEmail string,
) (*models.Material, error) {

	var m models.Material
	err := r.db.WithContext(ctx).
		Where("id = ? AND dealer_email = ?", id, dealerEmail).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MaterialGormRepository) Exists(
	ctx context.Context,
	id string,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Material{}).
		Where("id = ?", id).
		Count(&count).Error

	return count > 0, err
}

func (r *MaterialGormRepository) Create(
	ctx context.Context,
	m *models.Material,
) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MaterialGormRepository) Update(
	ctx context.Context,
	m *models.Material,
) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// Delete is a silent no-op when the id does not exist.
func (r *MaterialGormRepository) Delete(
	ctx context.Context,
	id string,
	dealerEmail string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND dealer_email = ?", id, dealerEmail).
		Delete(&models.Material{}).Error
}
