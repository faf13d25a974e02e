package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// notifications
type Notification struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	RecipientID uuid.UUID `gorm:"type:uuid;not null;index"`
	// Без внешнего ключа: уведомление переживает отменённую заявку.
	BookingID uuid.UUID `gorm:"type:uuid;not null;index"`

	Message string `gorm:"type:text;not null"`
	Read    bool   `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null;index"`

	Recipient *User `gorm:"foreignKey:RecipientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
