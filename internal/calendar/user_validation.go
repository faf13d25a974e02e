package calendar

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Ошибки проверки действующего лица.
var (
	ErrInvalidActorID = errors.New("invalid actor id")
	ErrUserNotFound   = errors.New("user not found")
	ErrRoleNotAllowed = errors.New("actor role is not allowed for this operation")
)

// Роль пользователя в системе.
type UserRole string

const (
	UserRoleUser    UserRole = "user"
	UserRoleManager UserRole = "manager"
	UserRoleAdmin   UserRole = "admin"
	UserRoleUnknown UserRole = "unknown"
)

func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case UserRoleUser, UserRoleManager, UserRoleAdmin:
		return UserRole(s), true
	default:
		return UserRoleUnknown, false
	}
}

// Actor: пользователь, от имени которого выполняется операция.
type Actor struct {
	ID   uuid.UUID
	Role UserRole
}

// Источник данных о пользователях.
// В реале это обёртка над БД, в тестах мок.
type ActorStore interface {
	FindActor(ctx context.Context, id uuid.UUID) (*Actor, error)
}

// ValidateActor:
//   - проверяет корректность идентификатора;
//   - вытаскивает пользователя из хранилища;
//   - проверяет, что его роль входит в allowed (пустой allowed: любая роль).
func ValidateActor(
	ctx context.Context,
	store ActorStore,
	actorID string,
	allowed ...UserRole,
) (*Actor, error) {
	id, err := uuid.Parse(actorID)
	if err != nil || id == uuid.Nil {
		return nil, ErrInvalidActorID
	}

	a, err := store.FindActor(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrUserNotFound
	}

	if len(allowed) == 0 {
		return a, nil
	}
	for _, r := range allowed {
		if a.Role == r {
			return a, nil
		}
	}
	return nil, ErrRoleNotAllowed
}
