package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Farmer is the cooperative's public roster entry. It is deliberately a
// separate table from User: roster rows are managed by admins and are not
// required to map onto login identities.
type Farmer struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Name      string          `gorm:"column:name;not null"`
	Email     string          `gorm:"column:email;type:text;not null;uniqueIndex"`
	Phone     *string         `gorm:"column:phone"`
	Location  *string         `gorm:"column:location"`
	JoinDate  time.Time       `gorm:"column:join_date;not null;autoCreateTime"`
	FarmSize  decimal.Decimal `gorm:"column:farm_size;type:numeric;not null;default:0"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns the id; inserts never rely on a server-side default.
func (f *Farmer) BeforeCreate(_ *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
