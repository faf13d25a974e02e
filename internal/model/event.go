package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Тип события аудита.
type EventType string

const (
	EventTypeBookingCreated         EventType = "booking_created"
	EventTypeBookingUpdated         EventType = "booking_updated"
	EventTypeBookingManagerApproved EventType = "booking_manager_approved"
	EventTypeBookingManagerRejected EventType = "booking_manager_rejected"
	EventTypeBookingAdminApproved   EventType = "booking_admin_approved"
	EventTypeBookingAdminRejected   EventType = "booking_admin_rejected"
	EventTypeBookingCancelled       EventType = "booking_cancelled"
	EventTypeHallAvailability       EventType = "hall_availability_changed"
)

// events: журнал аудита. Пишется в той же транзакции, что и изменение заявки.
type Event struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	EventType EventType `gorm:"type:varchar(64);not null;index"`

	CreatedAt time.Time `gorm:"not null;index"`

	UserID *uuid.UUID `gorm:"type:uuid;index"`
	// Заявка может быть удалена (отмена), поэтому без FK.
	BookingID *uuid.UUID `gorm:"type:uuid;index"`

	Details string `gorm:"type:text"`

	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
