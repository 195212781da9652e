package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/mercie-ux/mkulima-cooperative/pkg/enums"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Crop is a plot owned by exactly one farmer identity. Rows cascade away
// with their owner.
type Crop struct {
	ID              uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	FarmerID        uuid.UUID        `gorm:"column:farmer_id;type:uuid;not null;index"`
	CropType        string           `gorm:"column:crop_type;not null"`
	Variety         *string          `gorm:"column:variety"`
	Area            decimal.Decimal  `gorm:"column:area;type:numeric;not null"`
	Location        *string          `gorm:"column:location"`
	PlantingDate    time.Time        `gorm:"column:planting_date;not null"`
	ExpectedHarvest time.Time        `gorm:"column:expected_harvest;not null"`
	Status          enums.CropStatus `gorm:"column:status;not null;default:'planted'"`
	HealthScore     int              `gorm:"column:health_score;not null;default:100"`
	Notes           *string          `gorm:"column:notes;type:text"`
	CreatedAt       time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// OwnerID satisfies the ownership contract used by resource scoping.
func (c Crop) OwnerID() uuid.UUID {
	return c.FarmerID
}

// CursorKey feeds keyset pagination.
func (c Crop) CursorKey() (time.Time, uuid.UUID) {
	return c.CreatedAt, c.ID
}

// BeforeCreate assigns the id; inserts never rely on a server-side default.
func (c *Crop) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
