package crops

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mercie-ux/mkulima-cooperative/pkg/db/models"
)

// CropDTO is the transport shape for a single crop.
type CropDTO struct {
	ID              uuid.UUID       `json:"id"`
	FarmerID        uuid.UUID       `json:"farmer_id"`
	CropType        string          `json:"crop_type"`
	Variety         *string         `json:"variety,omitempty"`
	Area            decimal.Decimal `json:"area"`
	Location        *string         `json:"location,omitempty"`
	PlantingDate    time.Time       `json:"planting_date"`
	ExpectedHarvest time.Time       `json:"expected_harvest"`
	Status          string          `json:"status"`
	HealthScore     int             `json:"health_score"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CropsPageDTO is one listing page plus the cursor for the next one.
type CropsPageDTO struct {
	Items      []CropDTO `json:"items"`
	NextCursor string    `json:"next_cursor,omitempty"`
}

// CreateCropDTO carries the fields accepted when planting a new crop.
// The owner always comes from the authenticated caller, never the body.
type CreateCropDTO struct {
	CropType        string          `json:"crop_type" validate:"required,min=2,max=120"`
	Variety         *string         `json:"variety,omitempty" validate:"omitempty,max=120"`
	Area            decimal.Decimal `json:"area" validate:"required"`
	Location        *string         `json:"location,omitempty" validate:"omitempty,max=255"`
	PlantingDate    time.Time       `json:"planting_date" validate:"required"`
	ExpectedHarvest time.Time       `json:"expected_harvest" validate:"required"`
	Status          *string         `json:"status,omitempty"`
	HealthScore     *int            `json:"health_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	Notes           *string         `json:"notes,omitempty"`
}

// UpdateCropDTO carries a partial update. Nil fields keep their stored value.
type UpdateCropDTO struct {
	CropType        *string          `json:"crop_type,omitempty" validate:"omitempty,min=2,max=120"`
	Variety         *string          `json:"variety,omitempty" validate:"omitempty,max=120"`
	Area            *decimal.Decimal `json:"area,omitempty"`
	Location        *string          `json:"location,omitempty" validate:"omitempty,max=255"`
	PlantingDate    *time.Time       `json:"planting_date,omitempty"`
	ExpectedHarvest *time.Time       `json:"expected_harvest,omitempty"`
	Status          *string          `json:"status,omitempty"`
	HealthScore     *int             `json:"health_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	Notes           *string          `json:"notes,omitempty"`
}

// FromModel maps the persisted crop into its transport shape.
func FromModel(c *models.Crop) *CropDTO {
	if c == nil {
		return nil
	}
	return &CropDTO{
		ID:              c.ID,
		FarmerID:        c.FarmerID,
		CropType:        c.CropType,
		Variety:         c.Variety,
		Area:            c.Area,
		Location:        c.Location,
		PlantingDate:    c.PlantingDate,
		ExpectedHarvest: c.ExpectedHarvest,
		Status:          c.Status.String(),
		HealthScore:     c.HealthScore,
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func pageFromModels(rows []models.Crop, next string) CropsPageDTO {
	items := make([]CropDTO, 0, len(rows))
	for i := range rows {
		items = append(items, *FromModel(&rows[i]))
	}
	return CropsPageDTO{Items: items, NextCursor: next}
}
