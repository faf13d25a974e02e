package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending           BookingStatus = "pending"
	BookingStatusApprovedByManager BookingStatus = "approved_by_manager"
	BookingStatusApprovedByAdmin   BookingStatus = "approved_by_admin"
	BookingStatusRejectedByManager BookingStatus = "rejected_by_manager"
	BookingStatusRejectedByAdmin   BookingStatus = "rejected_by_admin"
)

// ActiveBookingStatuses: статусы, занимающие слот зала.
var ActiveBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusApprovedByManager,
	BookingStatusApprovedByAdmin,
}

// RejectedBookingStatuses: оба варианта отказа.
var RejectedBookingStatuses = []BookingStatus{
	BookingStatusRejectedByManager,
	BookingStatusRejectedByAdmin,
}

// IsActive: заявка занимает слот зала.
func (s BookingStatus) IsActive() bool {
	switch s {
	case BookingStatusPending, BookingStatusApprovedByManager, BookingStatusApprovedByAdmin:
		return true
	default:
		return false
	}
}

// IsTerminal: из терминального статуса переходов нет.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusApprovedByAdmin, BookingStatusRejectedByManager, BookingStatusRejectedByAdmin:
		return true
	default:
		return false
	}
}

// DisplayStatus: то, что видят пользователи в дашбордах. Не хранится в БД.
type DisplayStatus string

const (
	DisplayStatusPending   DisplayStatus = "Pending"
	DisplayStatusConfirmed DisplayStatus = "Confirmed"
	DisplayStatusRejected  DisplayStatus = "Rejected"
	DisplayStatusUnknown   DisplayStatus = "Unknown"
)

func (s BookingStatus) Display() DisplayStatus {
	switch s {
	case BookingStatusPending, BookingStatusApprovedByManager:
		return DisplayStatusPending
	case BookingStatusApprovedByAdmin:
		return DisplayStatusConfirmed
	case BookingStatusRejectedByManager, BookingStatusRejectedByAdmin:
		return DisplayStatusRejected
	default:
		return DisplayStatusUnknown
	}
}

// Coordinator: контактное лицо мероприятия.
type Coordinator struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

// bookings
type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	HallID      uuid.UUID `gorm:"type:uuid;not null;index:idx_bookings_hall_date,priority:1"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;index"`

	// Дата в формате 2006-01-02, время 15:04. Интервал [StartTime, EndTime).
	BookingDate string `gorm:"type:varchar(10);not null;index:idx_bookings_hall_date,priority:2"`
	StartTime   string `gorm:"type:varchar(5);not null"`
	EndTime     string `gorm:"type:varchar(5);not null"`

	EventName    string                           `gorm:"type:varchar(255);not null"`
	EventDetails string                           `gorm:"type:text"`
	Coordinators datatypes.JSONSlice[Coordinator] `gorm:"column:coordinators"`

	Status          BookingStatus `gorm:"type:varchar(32);not null;index"`
	RejectionReason string        `gorm:"type:text"`

	ManagerID *uuid.UUID `gorm:"type:uuid;index"`
	AdminID   *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Hall      *Hall `gorm:"foreignKey:HallID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Requester *User `gorm:"foreignKey:RequesterID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
