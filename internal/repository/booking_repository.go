package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/seminar-hall-booking/internal/calendar"
	"github.com/Leganyst/seminar-hall-booking/internal/model"
)

var (
	// Интервал пересекается с активной заявкой того же зала на ту же дату.
	ErrOverlap = errors.New("booking interval overlaps an active booking")
	// Заявки нет или её статус уже не тот, что ожидался.
	ErrStatusChanged = errors.New("booking not found or not in expected status")
)

// StatusChange описывает CAS-переход: From -> To плюс поля, которые выставляются вместе со статусом.
type StatusChange struct {
	From model.BookingStatus
	To   model.BookingStatus

	ManagerID       *uuid.UUID
	AdminID         *uuid.UUID
	RejectionReason string
}

type BookingRepository interface {
	// Атомарно: проверить пересечения и создать заявку вместе с событием аудита.
	CreateWithNoOverlap(ctx context.Context, booking *model.Booking, event *model.Event) error
	// Атомарно: заявка в pending, нет пересечений (кроме неё самой), обновить окно и описание.
	UpdatePendingWithNoOverlap(ctx context.Context, booking *model.Booking, event *model.Event) error
	// Получить заявку по ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	// Активные заявки зала, пересекающие окно. excludeID исключается.
	Conflicts(ctx context.Context, hallID uuid.UUID, window calendar.Window, excludeID *uuid.UUID) ([]model.Booking, error)
	// Сменить статус, только если текущий равен change.From.
	TransitionStatus(ctx context.Context, id uuid.UUID, change StatusChange, event *model.Event) (*model.Booking, error)
	// Удалить заявку, только если её статус равен status.
	DeleteIfStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus, event *model.Event) error
	// Заявки с любым из статусов.
	ListByStatuses(ctx context.Context, statuses []model.BookingStatus) ([]model.Booking, error)
	// Все заявки пользователя.
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]model.Booking, error)
}

// Реализация на GORM.
type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// lockHall берёт блокировку строки зала: все проверки пересечений по залу идут друг за другом.
// sqlite FOR UPDATE не поддерживает, там транзакции сериализуются одной коннекцией.
func lockHall(tx *gorm.DB, hallID uuid.UUID) error {
	var hall model.Hall
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&hall, "id = ?", hallID).
		Error
}

func activeByHallAndDate(tx *gorm.DB, hallID uuid.UUID, date string, excludeID *uuid.UUID) ([]model.Booking, error) {
	var bookings []model.Booking
	q := tx.Model(&model.Booking{}).
		Where("hall_id = ? AND booking_date = ?", hallID, date).
		Where("status IN ?", model.ActiveBookingStatuses)

	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	if err := q.Order("start_time ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// overlaps возвращает активные заявки, пересекающие окно.
// Интервалы полуоткрытые, касание границ пересечением не считается.
func overlaps(window calendar.Window, bookings []model.Booking) ([]model.Booking, error) {
	active := make([]model.Booking, 0, len(bookings))
	existing := make([]calendar.TimeRange, 0, len(bookings))
	for _, b := range bookings {
		if !b.Status.IsActive() {
			continue
		}
		w, err := calendar.ParseWindow(b.BookingDate, b.StartTime, b.EndTime)
		if err != nil {
			return nil, fmt.Errorf("stored booking %s has bad window: %w", b.ID, err)
		}
		active = append(active, b)
		existing = append(existing, w.Range)
	}

	_, idx := calendar.HasOverlap(window.Range, existing)
	conflicts := make([]model.Booking, 0, len(idx))
	for _, i := range idx {
		conflicts = append(conflicts, active[i])
	}
	return conflicts, nil
}

func checkNoOverlap(tx *gorm.DB, booking *model.Booking, excludeID *uuid.UUID) error {
	window, err := calendar.ParseWindow(booking.BookingDate, booking.StartTime, booking.EndTime)
	if err != nil {
		return err
	}

	if err := lockHall(tx, booking.HallID); err != nil {
		return err
	}

	active, err := activeByHallAndDate(tx, booking.HallID, window.Date, excludeID)
	if err != nil {
		return err
	}

	conflicts, err := overlaps(window, active)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return ErrOverlap
	}
	return nil
}

func (r *GormBookingRepository) CreateWithNoOverlap(ctx context.Context, booking *model.Booking, event *model.Event) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkNoOverlap(tx, booking, nil); err != nil {
			return err
		}

		if err := tx.Create(booking).Error; err != nil {
			return err
		}

		if event != nil {
			event.BookingID = &booking.ID
			if err := tx.Create(event).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormBookingRepository) UpdatePendingWithNoOverlap(ctx context.Context, booking *model.Booking, event *model.Event) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.Booking
		err := tx.Where("id = ? AND status = ?", booking.ID, model.BookingStatusPending).First(&current).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStatusChanged
			}
			return err
		}

		// зал не меняется при редактировании
		booking.HallID = current.HallID

		if err := checkNoOverlap(tx, booking, &booking.ID); err != nil {
			return err
		}

		res := tx.Model(&model.Booking{}).
			Where("id = ? AND status = ?", booking.ID, model.BookingStatusPending).
			Updates(map[string]any{
				"booking_date":  booking.BookingDate,
				"start_time":    booking.StartTime,
				"end_time":      booking.EndTime,
				"event_name":    booking.EventName,
				"event_details": booking.EventDetails,
				"coordinators":  booking.Coordinators,
				"updated_at":    time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusChanged
		}

		if event != nil {
			event.BookingID = &booking.ID
			if err := tx.Create(event).Error; err != nil {
				return err
			}
		}

		return tx.First(booking, "id = ?", booking.ID).Error
	})
}

func (r *GormBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var b model.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) Conflicts(
	ctx context.Context,
	hallID uuid.UUID,
	window calendar.Window,
	excludeID *uuid.UUID,
) ([]model.Booking, error) {
	active, err := activeByHallAndDate(r.db.WithContext(ctx), hallID, window.Date, excludeID)
	if err != nil {
		return nil, err
	}
	return overlaps(window, active)
}

func (r *GormBookingRepository) TransitionStatus(
	ctx context.Context,
	id uuid.UUID,
	change StatusChange,
	event *model.Event,
) (*model.Booking, error) {
	var b model.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		update := map[string]any{
			"status":           change.To,
			"rejection_reason": change.RejectionReason,
			"updated_at":       time.Now().UTC(),
		}
		if change.ManagerID != nil {
			update["manager_id"] = *change.ManagerID
		}
		if change.AdminID != nil {
			update["admin_id"] = *change.AdminID
		}

		res := tx.Model(&model.Booking{}).
			Where("id = ? AND status = ?", id, change.From).
			Updates(update)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusChanged
		}

		if event != nil {
			event.BookingID = &id
			if err := tx.Create(event).Error; err != nil {
				return err
			}
		}

		return tx.First(&b, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) DeleteIfStatus(
	ctx context.Context,
	id uuid.UUID,
	status model.BookingStatus,
	event *model.Event,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND status = ?", id, status).Delete(&model.Booking{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusChanged
		}

		if event != nil {
			event.BookingID = &id
			return tx.Create(event).Error
		}
		return nil
	})
}

func (r *GormBookingRepository) ListByStatuses(ctx context.Context, statuses []model.BookingStatus) ([]model.Booking, error) {
	var bookings []model.Booking
	if len(statuses) == 0 {
		return bookings, nil
	}

	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("status IN ?", statuses).
		Order("booking_date ASC").
		Order("start_time ASC").
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormBookingRepository) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
