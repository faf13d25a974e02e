package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Leganyst/seminar-hall-booking/internal/calendar"
	"github.com/Leganyst/seminar-hall-booking/internal/model"
	"github.com/Leganyst/seminar-hall-booking/internal/repository"
)

// UserProfile: пользователь вместе с ролью.
type UserProfile struct {
	User *model.User
	Role calendar.UserRole
}

// HallInput: данные нового зала.
type HallInput struct {
	Name      string
	Capacity  int
	Details   string
	Equipment []model.Equipment
}

// DirectoryService ведёт справочники пользователей и залов.
type DirectoryService struct {
	users repository.UserRepository
	halls repository.HallRepository
	log   *zap.Logger
}

func NewDirectoryService(users repository.UserRepository, halls repository.HallRepository, log *zap.Logger) *DirectoryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &DirectoryService{users: users, halls: halls, log: log}
}

// RegisterUser создаёт пользователя с ролью user.
func (s *DirectoryService) RegisterUser(ctx context.Context, username, email string) (*UserProfile, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return nil, validationError("username is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, validationError("email %q is invalid", email)
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, newError(ErrConflict, "username %q is already taken", username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	u := &model.User{Username: username, Email: email}
	if err := s.users.Create(ctx, u, model.RoleCodeUser); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newError(ErrConflict, "username %q is already taken", username)
		}
		return nil, fmt.Errorf("register user: %w", err)
	}

	s.log.Info("user registered", zap.String("user_id", u.ID.String()), zap.String("username", username))

	return &UserProfile{User: u, Role: calendar.UserRoleUser}, nil
}

// SetRole назначает одну из ролей user, manager, admin. Только администратор.
func (s *DirectoryService) SetRole(ctx context.Context, actorID, userID, role string) (*UserProfile, error) {
	id, err := parseID("user_id", userID)
	if err != nil {
		return nil, err
	}
	r, ok := calendar.ParseUserRole(strings.TrimSpace(role))
	if !ok {
		return nil, validationError("role must be one of user, manager, admin")
	}

	actor, err := authorizeActor(ctx, s.users, actorID, calendar.UserRoleAdmin)
	if err != nil {
		return nil, err
	}

	if err := s.users.SetRole(ctx, id, string(r)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(ErrNotFound, "user not found")
		}
		return nil, fmt.Errorf("set role: %w", err)
	}

	s.log.Info("role assigned",
		zap.String("actor_id", actor.ID.String()),
		zap.String("user_id", id.String()),
		zap.String("role", string(r)),
	)

	return s.GetUser(ctx, id.String())
}

// EnsureAdmin заводит администратора при старте сервиса: регистрирует
// пользователя, если его нет, и выдаёт ему роль admin. Повторный вызов ничего не меняет.
func (s *DirectoryService) EnsureAdmin(ctx context.Context, username, email string) (*UserProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, validationError("username is required")
	}

	u, err := s.users.FindByUsername(ctx, username)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		p, err := s.RegisterUser(ctx, username, email)
		if err != nil {
			return nil, err
		}
		u = p.User
	default:
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := s.users.SetRole(ctx, u.ID, model.RoleCodeAdmin); err != nil {
		return nil, fmt.Errorf("grant admin: %w", err)
	}

	s.log.Info("bootstrap admin ready", zap.String("user_id", u.ID.String()), zap.String("username", username))

	return &UserProfile{User: u, Role: calendar.UserRoleAdmin}, nil
}

func (s *DirectoryService) GetUser(ctx context.Context, userID string) (*UserProfile, error) {
	id, err := parseID("user_id", userID)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(ErrNotFound, "user not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	actor, err := s.users.FindActor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get role: %w", err)
	}
	role := calendar.UserRoleUser
	if actor != nil {
		role = actor.Role
	}

	return &UserProfile{User: u, Role: role}, nil
}

// CreateHall: только администратор.
func (s *DirectoryService) CreateHall(ctx context.Context, actorID string, in HallInput) (*model.Hall, error) {
	if _, err := authorizeActor(ctx, s.users, actorID, calendar.UserRoleAdmin); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, validationError("hall name is required")
	}
	if in.Capacity <= 0 {
		return nil, validationError("hall capacity must be positive")
	}
	for i, e := range in.Equipment {
		if strings.TrimSpace(e.Name) == "" {
			return nil, validationError("equipment #%d: name is required", i+1)
		}
		if e.Quantity < 0 {
			return nil, validationError("equipment #%d: quantity must not be negative", i+1)
		}
	}

	h := &model.Hall{
		Name:        name,
		Capacity:    in.Capacity,
		Details:     strings.TrimSpace(in.Details),
		Equipment:   in.Equipment,
		IsAvailable: true,
	}
	if err := s.halls.Create(ctx, h); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newError(ErrConflict, "hall %q already exists", name)
		}
		return nil, fmt.Errorf("create hall: %w", err)
	}

	s.log.Info("hall created", zap.String("hall_id", h.ID.String()), zap.String("name", h.Name))

	return h, nil
}

func (s *DirectoryService) GetHall(ctx context.Context, hallID string) (*model.Hall, error) {
	id, err := parseID("hall_id", hallID)
	if err != nil {
		return nil, err
	}
	h, err := s.halls.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(ErrNotFound, "hall not found")
		}
		return nil, fmt.Errorf("get hall: %w", err)
	}
	return h, nil
}

func (s *DirectoryService) ListHalls(ctx context.Context) ([]model.Hall, error) {
	halls, err := s.halls.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list halls: %w", err)
	}
	return halls, nil
}

// SetHallAvailability закрывает или открывает зал для новых заявок.
// Уже поданные заявки не трогаются. При закрытии причина обязательна.
func (s *DirectoryService) SetHallAvailability(ctx context.Context, actorID, hallID string, available bool, reason string) (*model.Hall, error) {
	id, err := parseID("hall_id", hallID)
	if err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if !available && reason == "" {
		return nil, validationError("unavailability reason is required")
	}

	actor, err := authorizeActor(ctx, s.users, actorID, calendar.UserRoleAdmin)
	if err != nil {
		return nil, err
	}

	details := "available"
	if !available {
		details = "unavailable: " + reason
	}
	ev := &model.Event{
		EventType: model.EventTypeHallAvailability,
		UserID:    &actor.ID,
		Details:   fmt.Sprintf("hall=%s %s", id, details),
	}

	h, err := s.halls.SetAvailability(ctx, id, available, reason, ev)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(ErrNotFound, "hall not found")
		}
		return nil, fmt.Errorf("set hall availability: %w", err)
	}

	s.log.Info("hall availability changed",
		zap.String("hall_id", id.String()),
		zap.String("actor_id", actor.ID.String()),
		zap.Bool("available", available),
	)

	return h, nil
}
