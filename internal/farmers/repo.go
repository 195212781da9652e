package farmers

import (
	"context"

	"github.com/google/uuid"
	"github.com/mercie-ux/mkulima-cooperative/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes roster persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a farmers repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns the full roster, newest members first.
func (r *Repository) List(ctx context.Context) ([]models.Farmer, error) {
	var rows []models.Farmer
	if err := r.db.WithContext(ctx).
		Order("join_date DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads one roster entry.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Farmer, error) {
	var farmer models.Farmer
	if err := r.db.WithContext(ctx).First(&farmer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &farmer, nil
}

// FindByEmail retrieves a roster entry by email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Farmer, error) {
	var farmer models.Farmer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&farmer).Error; err != nil {
		return nil, err
	}
	return &farmer, nil
}

// Create inserts a roster entry.
func (r *Repository) Create(ctx context.Context, farmer *models.Farmer) error {
	return r.db.WithContext(ctx).Create(farmer).Error
}

// Updates applies column values to one roster row.
func (r *Repository) Updates(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Farmer{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// Delete removes the roster row and reports how many rows went away.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Farmer{})
	return res.RowsAffected, res.Error
}
