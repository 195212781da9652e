package farmers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mercie-ux/mkulima-cooperative/pkg/db/models"
)

// FarmerDTO is the roster entry shape returned to clients.
type FarmerDTO struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     *string         `json:"phone,omitempty"`
	Location  *string         `json:"location,omitempty"`
	JoinDate  time.Time       `json:"join_date"`
	FarmSize  decimal.Decimal `json:"farm_size"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateFarmerDTO carries the fields an admin submits for a new roster entry.
type CreateFarmerDTO struct {
	Name     string           `json:"name" validate:"required,min=2,max=120"`
	Email    string           `json:"email" validate:"required,email"`
	Phone    *string          `json:"phone,omitempty" validate:"omitempty,max=32"`
	Location *string          `json:"location,omitempty" validate:"omitempty,max=255"`
	FarmSize *decimal.Decimal `json:"farm_size,omitempty"`
}

// UpdateFarmerDTO carries a partial roster update. Nil fields stay untouched.
type UpdateFarmerDTO struct {
	Name     *string          `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Email    *string          `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string          `json:"phone,omitempty" validate:"omitempty,max=32"`
	Location *string          `json:"location,omitempty" validate:"omitempty,max=255"`
	FarmSize *decimal.Decimal `json:"farm_size,omitempty"`
}

// FromModel maps the persisted roster row into its transport shape.
func FromModel(f *models.Farmer) *FarmerDTO {
	if f == nil {
		return nil
	}
	return &FarmerDTO{
		ID:        f.ID,
		Name:      f.Name,
		Email:     f.Email,
		Phone:     f.Phone,
		Location:  f.Location,
		JoinDate:  f.JoinDate,
		FarmSize:  f.FarmSize,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
