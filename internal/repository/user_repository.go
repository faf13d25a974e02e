package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/seminar-hall-booking/internal/calendar"
	"github.com/Leganyst/seminar-hall-booking/internal/model"
)

type UserRepository interface {
	// Создать пользователя и сразу назначить роль.
	Create(ctx context.Context, user *model.User, roleCode string) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	SetRole(ctx context.Context, userID uuid.UUID, roleCode string) error
	GetRole(ctx context.Context, userID uuid.UUID) (string, error)
	// calendar.ActorStore
	FindActor(ctx context.Context, id uuid.UUID) (*calendar.Actor, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(ctx context.Context, user *model.User, roleCode string) error {
	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.TrimSpace(user.Email)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return setRole(tx, user.ID, roleCode)
	})
}

func (r *GormUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where("username = ?", strings.TrimSpace(username)).
		First(&u).
		Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) SetRole(ctx context.Context, userID uuid.UUID, roleCode string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u model.User
		if err := tx.Select("id").First(&u, "id = ?", userID).Error; err != nil {
			return err
		}
		return setRole(tx, userID, roleCode)
	})
}

func setRole(tx *gorm.DB, userID uuid.UUID, roleCode string) error {
	// роль заводится при первом использовании
	var role model.Role
	if err := tx.Where("code = ?", roleCode).First(&role).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		role.Code = roleCode
		role.Name = roleCode
		if err := tx.Create(&role).Error; err != nil {
			return err
		}
	}

	// одна роль на пользователя: старые снимаем
	if err := tx.Where("user_id = ?", userID).Delete(&model.UserRole{}).Error; err != nil {
		return err
	}

	ur := model.UserRole{RoleID: role.ID, UserID: userID}
	return tx.Create(&ur).Error
}

func (r *GormUserRepository) GetRole(ctx context.Context, userID uuid.UUID) (string, error) {
	var role model.Role
	err := r.db.WithContext(ctx).
		Model(&model.Role{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		First(&role).
		Error
	if err != nil {
		return "", err
	}
	return role.Code, nil
}

// FindActor возвращает nil без ошибки, если пользователя нет.
// Пользователь без роли считается обычным пользователем.
func (r *GormUserRepository) FindActor(ctx context.Context, id uuid.UUID) (*calendar.Actor, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	code, err := r.GetRole(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &calendar.Actor{ID: id, Role: calendar.UserRoleUser}, nil
		}
		return nil, err
	}

	role, ok := calendar.ParseUserRole(code)
	if !ok {
		role = calendar.UserRoleUnknown
	}
	return &calendar.Actor{ID: id, Role: role}, nil
}
