package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Equipment описывает оборудование зала (проектор, микрофоны и т.п.).
type Equipment struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Condition string `json:"condition"`
	Available bool   `json:"available"`
	Quantity  int    `json:"quantity"`
}

// halls
type Hall struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name     string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Capacity int    `gorm:"not null"`
	Details  string `gorm:"type:text"`

	Equipment datatypes.JSONSlice[Equipment] `gorm:"column:equipment"`

	// Зал можно временно закрыть для новых заявок (ремонт и т.п.).
	IsAvailable          bool   `gorm:"not null"`
	UnavailabilityReason string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (h *Hall) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
