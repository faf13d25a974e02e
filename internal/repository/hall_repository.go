package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/seminar-hall-booking/internal/model"
)

type HallRepository interface {
	Create(ctx context.Context, hall *model.Hall) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Hall, error)
	// Все залы по имени.
	List(ctx context.Context) ([]model.Hall, error)
	// Открыть/закрыть зал для новых заявок, событие пишется в той же транзакции.
	SetAvailability(ctx context.Context, id uuid.UUID, available bool, reason string, event *model.Event) (*model.Hall, error)
}

type GormHallRepository struct {
	db *gorm.DB
}

func NewGormHallRepository(db *gorm.DB) *GormHallRepository {
	return &GormHallRepository{db: db}
}

func (r *GormHallRepository) Create(ctx context.Context, hall *model.Hall) error {
	return r.db.WithContext(ctx).Create(hall).Error
}

func (r *GormHallRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Hall, error) {
	var h model.Hall
	if err := r.db.WithContext(ctx).First(&h, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *GormHallRepository) List(ctx context.Context) ([]model.Hall, error) {
	var halls []model.Hall
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&halls).Error; err != nil {
		return nil, err
	}
	return halls, nil
}

func (r *GormHallRepository) SetAvailability(
	ctx context.Context,
	id uuid.UUID,
	available bool,
	reason string,
	event *model.Event,
) (*model.Hall, error) {
	if available {
		reason = ""
	}

	var h model.Hall
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Hall{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"is_available":          available,
				"unavailability_reason": reason,
				"updated_at":            time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if event != nil {
			if err := tx.Create(event).Error; err != nil {
				return err
			}
		}

		return tx.First(&h, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &h, nil
}
